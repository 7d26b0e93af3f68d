package api

import (
	"context"
	"net/http"

	"boardsync/domain"
)

// TaskPayload carries the writable task fields. Nil fields are omitted so
// partial updates leave the rest untouched.
type TaskPayload struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

func taskPath(boardID, cardID string) string {
	return "/boards/" + boardID + "/cards/" + cardID + "/tasks"
}

// Tasks lists the tasks of a card.
func (c *Client) Tasks(ctx context.Context, boardID, cardID string) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := c.do(ctx, http.MethodGet, taskPath(boardID, cardID), nil, &tasks, "fetch tasks", "Fetch tasks failed"); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask creates a task on the card.
func (c *Client) CreateTask(ctx context.Context, boardID, cardID string, payload TaskPayload) (domain.Task, error) {
	var task domain.Task
	if err := c.do(ctx, http.MethodPost, taskPath(boardID, cardID), payload, &task, "create task", "Create task failed"); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// UpdateTask applies a partial update to a task. Setting Status to another
// card's title relocates the task to that card server-side.
func (c *Client) UpdateTask(ctx context.Context, boardID, cardID, taskID string, payload TaskPayload) (domain.Task, error) {
	var task domain.Task
	if err := c.do(ctx, http.MethodPut, taskPath(boardID, cardID)+"/"+taskID, payload, &task, "update task", "Update task failed"); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(ctx context.Context, boardID, cardID, taskID string) error {
	return c.do(ctx, http.MethodDelete, taskPath(boardID, cardID)+"/"+taskID, nil, nil, "delete task", "Delete task failed")
}

type assignPayload struct {
	MemberID string `json:"memberId"`
}

// AssignMember assigns a board member to a task.
func (c *Client) AssignMember(ctx context.Context, boardID, cardID, taskID, memberID string) error {
	path := taskPath(boardID, cardID) + "/" + taskID + "/assign"
	return c.do(ctx, http.MethodPost, path, assignPayload{MemberID: memberID}, nil, "assign member", "Assign member failed")
}

// Assignees lists the members assigned to a task.
func (c *Client) Assignees(ctx context.Context, boardID, cardID, taskID string) ([]domain.Assignee, error) {
	path := taskPath(boardID, cardID) + "/" + taskID + "/assign"
	var assignees []domain.Assignee
	if err := c.do(ctx, http.MethodGet, path, nil, &assignees, "fetch assignees", "Fetch assignees failed"); err != nil {
		return nil, err
	}
	return assignees, nil
}

// RemoveAssignee unassigns a member from a task.
func (c *Client) RemoveAssignee(ctx context.Context, boardID, cardID, taskID, memberID string) error {
	path := taskPath(boardID, cardID) + "/" + taskID + "/assign/" + memberID
	return c.do(ctx, http.MethodDelete, path, nil, nil, "remove assignee", "Remove assignee failed")
}
