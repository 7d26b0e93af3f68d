// Package query binds the API client and the query cache together: reads are
// read-through against tuple-addressed cache entries, writes go to the
// network first and on success either patch the cached value in place or
// invalidate it so the next read refetches.
package query

import (
	"context"

	"github.com/bytedance/sonic"

	"boardsync/api"
	"boardsync/domain"
	"boardsync/internal/consts"
	"boardsync/storage"
)

// API is the slice of the REST client the query layer drives.
type API interface {
	CreateBoard(ctx context.Context, payload api.BoardPayload) (domain.Board, error)
	Boards(ctx context.Context) ([]domain.Board, error)
	Board(ctx context.Context, id string) (domain.Board, error)
	UpdateBoard(ctx context.Context, id string, payload api.BoardPayload) (domain.Board, error)
	DeleteBoard(ctx context.Context, id string) error
	InviteMember(ctx context.Context, boardID, email string) (domain.Invite, error)
	RespondInvite(ctx context.Context, boardID, inviteID, status, notificationID string) error

	Cards(ctx context.Context, boardID string) ([]domain.Card, error)
	CreateCard(ctx context.Context, boardID string, title domain.CardTitle) (domain.Card, error)
	UpdateCard(ctx context.Context, boardID, cardID string, title domain.CardTitle) (domain.Card, error)
	DeleteCard(ctx context.Context, boardID, cardID string) error

	Tasks(ctx context.Context, boardID, cardID string) ([]domain.Task, error)
	CreateTask(ctx context.Context, boardID, cardID string, payload api.TaskPayload) (domain.Task, error)
	UpdateTask(ctx context.Context, boardID, cardID, taskID string, payload api.TaskPayload) (domain.Task, error)
	DeleteTask(ctx context.Context, boardID, cardID, taskID string) error

	AssignMember(ctx context.Context, boardID, cardID, taskID, memberID string) error
	Assignees(ctx context.Context, boardID, cardID, taskID string) ([]domain.Assignee, error)
	RemoveAssignee(ctx context.Context, boardID, cardID, taskID, memberID string) error

	Notifications(ctx context.Context, userID string) ([]domain.Notification, error)
	CreateNotification(ctx context.Context, userID string, payload api.NotificationPayload) (domain.Notification, error)
}

// Client is the data layer views render from.
type Client struct {
	api   API
	store storage.Store
}

// New creates a query client over the given API and cache store.
func New(a API, store storage.Store) *Client {
	return &Client{api: a, store: store}
}

// Query keys. Keys are ordered tuples; prefix invalidation relies on the
// component order here.
func boardsKey() storage.Key { return storage.NewKey(consts.BoardsKey) }

func boardKey(id string) storage.Key { return storage.NewKey(consts.BoardKeyPrefix, id) }

func cardsKey(boardID string) storage.Key { return storage.NewKey(consts.CardsKeyPrefix, boardID) }

func tasksKey(boardID, cardID string) storage.Key {
	return storage.NewKey(consts.TasksKeyPrefix, boardID, cardID)
}

func assigneesKey(taskID string) storage.Key { return storage.NewKey(consts.AssigneesPrefix, taskID) }

func notificationsKey(email string) storage.Key {
	return storage.NewKey(consts.NotificationsKey, email)
}

// Invalidate marks cached entries stale. Missing entries are a no-op.
func (c *Client) Invalidate(ctx context.Context, keys ...storage.Key) error {
	return c.store.Delete(ctx, keys...)
}

// InvalidateTasks drops the task list for one board/card pair. The realtime
// subscriber calls this when a matching taskUpdated event arrives.
func (c *Client) InvalidateTasks(ctx context.Context, boardID, cardID string) error {
	return c.store.Delete(ctx, tasksKey(boardID, cardID))
}

// readThrough returns the cached value for key, fetching and storing it on a
// miss. A cached value that fails to decode is dropped and refetched.
func readThrough[T any](ctx context.Context, c *Client, key storage.Key, fetch func(context.Context) (T, error)) (T, error) {
	var zero T
	if data, ok, err := c.store.Get(ctx, key); err == nil && ok {
		var out T
		if err := sonic.ConfigStd.Unmarshal(data, &out); err == nil {
			return out, nil
		}
		_ = c.store.Delete(ctx, key)
	}

	out, err := fetch(ctx)
	if err != nil {
		return zero, err
	}
	if data, err := sonic.ConfigStd.Marshal(out); err == nil {
		_ = c.store.Set(ctx, key, data)
	}
	return out, nil
}

// patch rewrites the cached value under key with fn. When nothing is cached
// the patch is skipped; the next read refetches.
func patch[T any](ctx context.Context, c *Client, key storage.Key, fn func(T) T) error {
	data, ok, err := c.store.Get(ctx, key)
	if err != nil || !ok {
		return err
	}
	var cur T
	if err := sonic.ConfigStd.Unmarshal(data, &cur); err != nil {
		return c.store.Delete(ctx, key)
	}
	next, err := sonic.ConfigStd.Marshal(fn(cur))
	if err != nil {
		return err
	}
	return c.store.Set(ctx, key, next)
}

// Boards returns the user's boards, newest first. The sort is recomputed on
// every read; the cache keeps server order.
func (c *Client) Boards(ctx context.Context) ([]domain.Board, error) {
	boards, err := readThrough(ctx, c, boardsKey(), c.api.Boards)
	if err != nil {
		return nil, err
	}
	return domain.SortBoards(boards), nil
}

// Board returns one board.
func (c *Client) Board(ctx context.Context, id string) (domain.Board, error) {
	return readThrough(ctx, c, boardKey(id), func(ctx context.Context) (domain.Board, error) {
		return c.api.Board(ctx, id)
	})
}

// Cards returns a board's cards in fixed enumeration order.
func (c *Client) Cards(ctx context.Context, boardID string) ([]domain.Card, error) {
	cards, err := readThrough(ctx, c, cardsKey(boardID), func(ctx context.Context) ([]domain.Card, error) {
		return c.api.Cards(ctx, boardID)
	})
	if err != nil {
		return nil, err
	}
	return domain.SortCards(cards), nil
}

// AvailableTitles returns the card titles the board does not have yet.
func (c *Client) AvailableTitles(ctx context.Context, boardID string) ([]domain.CardTitle, error) {
	cards, err := c.Cards(ctx, boardID)
	if err != nil {
		return nil, err
	}
	return domain.AvailableTitles(cards), nil
}

// Tasks returns the task list of one card.
func (c *Client) Tasks(ctx context.Context, boardID, cardID string) ([]domain.Task, error) {
	return readThrough(ctx, c, tasksKey(boardID, cardID), func(ctx context.Context) ([]domain.Task, error) {
		return c.api.Tasks(ctx, boardID, cardID)
	})
}

// Assignees returns the members assigned to a task.
func (c *Client) Assignees(ctx context.Context, boardID, cardID, taskID string) ([]domain.Assignee, error) {
	return readThrough(ctx, c, assigneesKey(taskID), func(ctx context.Context) ([]domain.Assignee, error) {
		return c.api.Assignees(ctx, boardID, cardID, taskID)
	})
}

// Notifications returns a user's notifications.
func (c *Client) Notifications(ctx context.Context, email string) ([]domain.Notification, error) {
	return readThrough(ctx, c, notificationsKey(email), func(ctx context.Context) ([]domain.Notification, error) {
		return c.api.Notifications(ctx, email)
	})
}
