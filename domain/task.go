package domain

import "time"

// Task is a single work item. Status mirrors the owning card's title: moving
// a task between cards is an update of Status to the destination title, and
// the server relocates the task from that signal alone. Do not introduce a
// separate card foreign-key update; the status string is the contract.
type Task struct {
	ID          string    `json:"id"`
	BoardID     string    `json:"boardId"`
	CardID      string    `json:"cardId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Assignee links a board member to a task.
type Assignee struct {
	TaskID   string `json:"taskId,omitempty"`
	MemberID string `json:"memberId"`
}
