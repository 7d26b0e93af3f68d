package api

import (
	"context"
	"net/http"

	"boardsync/domain"
)

// NotificationPayload carries the fields of a client-created notification.
type NotificationPayload struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	BoardID  string `json:"boardId,omitempty"`
	FromUser string `json:"fromUser,omitempty"`
}

// Notifications lists a user's notifications, newest first as delivered by
// the server.
func (c *Client) Notifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	var out []domain.Notification
	if err := c.do(ctx, http.MethodGet, "/users/"+userID+"/notifications", nil, &out, "fetch notifications", "Fetch notifications failed"); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateNotification delivers a notification to the given user.
func (c *Client) CreateNotification(ctx context.Context, userID string, payload NotificationPayload) (domain.Notification, error) {
	var n domain.Notification
	if err := c.do(ctx, http.MethodPost, "/users/"+userID+"/notifications", payload, &n, "create notification", "Create notification failed"); err != nil {
		return domain.Notification{}, err
	}
	return n, nil
}
