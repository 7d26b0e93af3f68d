package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"boardsync/domain"
)

// BoardPayload carries the writable board fields.
type BoardPayload struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CreateBoard creates a board owned by the signed-in user.
func (c *Client) CreateBoard(ctx context.Context, payload BoardPayload) (domain.Board, error) {
	var board domain.Board
	if err := c.do(ctx, http.MethodPost, "/boards", payload, &board, "create board", "Create board failed"); err != nil {
		return domain.Board{}, err
	}
	return board, nil
}

// Boards lists the boards the signed-in user owns or belongs to.
func (c *Client) Boards(ctx context.Context) ([]domain.Board, error) {
	var boards []domain.Board
	if err := c.do(ctx, http.MethodGet, "/boards", nil, &boards, "fetch boards", "Fetch boards failed"); err != nil {
		return nil, err
	}
	return boards, nil
}

// Board fetches a single board.
func (c *Client) Board(ctx context.Context, id string) (domain.Board, error) {
	var board domain.Board
	if err := c.do(ctx, http.MethodGet, "/boards/"+id, nil, &board, "fetch board", "Fetch board failed"); err != nil {
		return domain.Board{}, err
	}
	return board, nil
}

// UpdateBoard updates a board's name and description.
func (c *Client) UpdateBoard(ctx context.Context, id string, payload BoardPayload) (domain.Board, error) {
	var board domain.Board
	if err := c.do(ctx, http.MethodPut, "/boards/"+id, payload, &board, "update board", "Update board failed"); err != nil {
		return domain.Board{}, err
	}
	return board, nil
}

// DeleteBoard deletes a board; the server removes its cards and tasks.
func (c *Client) DeleteBoard(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/boards/"+id, nil, nil, "delete board", "Delete board failed")
}

// InviteMember invites a user (by email) to the board. The invite id is
// generated client-side and returned so callers can track the resolution.
func (c *Client) InviteMember(ctx context.Context, boardID, email string) (domain.Invite, error) {
	invite := domain.Invite{
		InviteID:    uuid.NewString(),
		MemberID:    email,
		EmailMember: email,
		Status:      domain.InvitePending,
	}
	if err := c.do(ctx, http.MethodPost, "/boards/"+boardID+"/invite", invite, nil, "invite member", "Invite member failed"); err != nil {
		return domain.Invite{}, err
	}
	return invite, nil
}

type respondInviteRequest struct {
	InviteID       string `json:"invite_id"`
	Status         string `json:"status"`
	NotificationID string `json:"notificationId,omitempty"`
}

// RespondInvite accepts or denies an invite. status must be "accepted" or
// "denied"; notificationID links the resolution back to the invite
// notification when known.
func (c *Client) RespondInvite(ctx context.Context, boardID, inviteID, status, notificationID string) error {
	if status != domain.InviteAccepted && status != domain.InviteDenied {
		return &Error{Op: "respond invite", Message: "invite status must be accepted or denied"}
	}
	body := respondInviteRequest{InviteID: inviteID, Status: status, NotificationID: notificationID}
	return c.do(ctx, http.MethodPost, "/boards/"+boardID+"/respond-invite", body, nil, "respond invite", "Respond invite failed")
}
