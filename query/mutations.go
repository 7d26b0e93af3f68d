package query

import (
	"context"
	"errors"
	"strings"

	"boardsync/api"
	"boardsync/domain"
)

// Mutations go to the network first; the cache is only touched after a
// successful response. Board create/delete patch the cached collection
// directly (cheap, exact); everything else invalidates so the next read
// refetches state the server may have reshaped.

// CreateBoard creates a board and prepends it to the cached boards list.
func (c *Client) CreateBoard(ctx context.Context, name, description string) (domain.Board, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Board{}, errors.New("board name is required")
	}
	board, err := c.api.CreateBoard(ctx, api.BoardPayload{Name: name, Description: description})
	if err != nil {
		return domain.Board{}, err
	}
	err = patch(ctx, c, boardsKey(), func(old []domain.Board) []domain.Board {
		return append([]domain.Board{board}, old...)
	})
	return board, err
}

// UpdateBoard updates a board and invalidates both board queries.
func (c *Client) UpdateBoard(ctx context.Context, id, name, description string) (domain.Board, error) {
	board, err := c.api.UpdateBoard(ctx, id, api.BoardPayload{Name: name, Description: description})
	if err != nil {
		return domain.Board{}, err
	}
	return board, c.Invalidate(ctx, boardsKey(), boardKey(id))
}

// DeleteBoard deletes a board and filters it out of the cached boards list,
// leaving every other entry untouched.
func (c *Client) DeleteBoard(ctx context.Context, id string) error {
	if err := c.api.DeleteBoard(ctx, id); err != nil {
		return err
	}
	if err := patch(ctx, c, boardsKey(), func(old []domain.Board) []domain.Board {
		out := old[:0]
		for _, b := range old {
			if b.ID != id {
				out = append(out, b)
			}
		}
		return out
	}); err != nil {
		return err
	}
	return c.Invalidate(ctx, boardKey(id))
}

// CreateCard adds a fixed-title card to the board and invalidates the card
// list.
func (c *Client) CreateCard(ctx context.Context, boardID string, title domain.CardTitle) (domain.Card, error) {
	if _, err := domain.ParseCardTitle(string(title)); err != nil {
		return domain.Card{}, err
	}
	card, err := c.api.CreateCard(ctx, boardID, title)
	if err != nil {
		return domain.Card{}, err
	}
	return card, c.Invalidate(ctx, cardsKey(boardID))
}

// UpdateCard renames a card and invalidates the board's card list.
func (c *Client) UpdateCard(ctx context.Context, boardID, cardID string, title domain.CardTitle) (domain.Card, error) {
	card, err := c.api.UpdateCard(ctx, boardID, cardID, title)
	if err != nil {
		return domain.Card{}, err
	}
	return card, c.Invalidate(ctx, cardsKey(boardID))
}

// DeleteCard deletes a card and invalidates the board's card list.
func (c *Client) DeleteCard(ctx context.Context, boardID, cardID string) error {
	if err := c.api.DeleteCard(ctx, boardID, cardID); err != nil {
		return err
	}
	return c.Invalidate(ctx, cardsKey(boardID))
}

// CreateTask adds a task to a card and invalidates that card's task list.
func (c *Client) CreateTask(ctx context.Context, boardID, cardID, title, description string) (domain.Task, error) {
	if strings.TrimSpace(title) == "" {
		return domain.Task{}, errors.New("task title is required")
	}
	payload := api.TaskPayload{Title: &title}
	if description != "" {
		payload.Description = &description
	}
	task, err := c.api.CreateTask(ctx, boardID, cardID, payload)
	if err != nil {
		return domain.Task{}, err
	}
	return task, c.Invalidate(ctx, tasksKey(boardID, cardID))
}

// UpdateTask applies a partial update and invalidates the card's task list.
func (c *Client) UpdateTask(ctx context.Context, boardID, cardID, taskID string, payload api.TaskPayload) (domain.Task, error) {
	task, err := c.api.UpdateTask(ctx, boardID, cardID, taskID, payload)
	if err != nil {
		return domain.Task{}, err
	}
	return task, c.Invalidate(ctx, tasksKey(boardID, cardID))
}

// MoveTask relocates a task to another card by updating its status to the
// destination card's title. The card list and both affected task lists are
// invalidated so the task disappears from the source and appears at the
// destination on next read.
func (c *Client) MoveTask(ctx context.Context, boardID, fromCardID, taskID string, dest domain.Card) (domain.Task, error) {
	if fromCardID == dest.ID {
		return domain.Task{}, errors.New("task is already on that card")
	}
	status := string(dest.Title)
	task, err := c.api.UpdateTask(ctx, boardID, fromCardID, taskID, api.TaskPayload{Status: &status})
	if err != nil {
		return domain.Task{}, err
	}
	return task, c.Invalidate(ctx,
		cardsKey(boardID),
		tasksKey(boardID, fromCardID),
		tasksKey(boardID, dest.ID),
	)
}

// DeleteTask removes a task and invalidates the card's task list.
func (c *Client) DeleteTask(ctx context.Context, boardID, cardID, taskID string) error {
	if err := c.api.DeleteTask(ctx, boardID, cardID, taskID); err != nil {
		return err
	}
	return c.Invalidate(ctx, tasksKey(boardID, cardID))
}

// Assign assigns a member to a task and invalidates the assignee list.
func (c *Client) Assign(ctx context.Context, boardID, cardID, taskID, memberID string) error {
	if err := c.api.AssignMember(ctx, boardID, cardID, taskID, memberID); err != nil {
		return err
	}
	return c.Invalidate(ctx, assigneesKey(taskID))
}

// Unassign removes a member from a task and invalidates the assignee list.
func (c *Client) Unassign(ctx context.Context, boardID, cardID, taskID, memberID string) error {
	if err := c.api.RemoveAssignee(ctx, boardID, cardID, taskID, memberID); err != nil {
		return err
	}
	return c.Invalidate(ctx, assigneesKey(taskID))
}

// InviteMember sends a board invite. Nothing local changes until the invited
// user responds, so the cache is left alone.
func (c *Client) InviteMember(ctx context.Context, boardID, email string) (domain.Invite, error) {
	return c.api.InviteMember(ctx, boardID, email)
}
