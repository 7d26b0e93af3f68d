package consts

// Query key roots. Components are joined into cache keys by the storage layer.
const (
	BoardsKey        = "boards"
	BoardKeyPrefix   = "board"
	CardsKeyPrefix   = "cards"
	TasksKeyPrefix   = "tasks"
	AssigneesPrefix  = "assignees"
	NotificationsKey = "notifications"
)

// Realtime channel event names.
const (
	EventRegister     = "register"
	EventTaskUpdated  = "taskUpdated"
	EventNotification = "notification"
)

// SessionCookieName matches the browser client's cookie so both front ends
// can share a server-side session record.
const SessionCookieName = "user"
