package domain

import "time"

// Notification types delivered by the server.
const (
	NotificationInvite     = "invite"
	NotificationTaskUpdate = "task_update"
	NotificationComment    = "comment"
)

// Invite resolution states.
const (
	InvitePending  = "pending"
	InviteAccepted = "accepted"
	InviteDenied   = "denied"
)

// Notification is delivered by the initial fetch or pushed over the realtime
// channel. Invite notifications carry the invite id and resolution status.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	BoardID   string    `json:"boardId,omitempty"`
	FromUser  string    `json:"fromUser,omitempty"`
	Read      bool      `json:"read"`
	InviteID  string    `json:"inviteId,omitempty"`
	Status    string    `json:"status,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
