package query

import (
	"context"

	"boardsync/domain"
)

// AcceptInvite accepts the board invite carried by an invite notification.
// The cached notification flips to read/accepted in place, and the boards
// list is invalidated because membership just changed.
func (c *Client) AcceptInvite(ctx context.Context, email string, n domain.Notification) error {
	if err := c.api.RespondInvite(ctx, n.BoardID, n.InviteID, domain.InviteAccepted, n.ID); err != nil {
		return err
	}
	if err := c.resolveNotification(ctx, email, n.ID, domain.InviteAccepted); err != nil {
		return err
	}
	return c.Invalidate(ctx, boardsKey())
}

// DenyInvite declines the invite. Only the notification's local state
// changes; board membership did not.
func (c *Client) DenyInvite(ctx context.Context, email string, n domain.Notification) error {
	if err := c.api.RespondInvite(ctx, n.BoardID, n.InviteID, domain.InviteDenied, n.ID); err != nil {
		return err
	}
	return c.resolveNotification(ctx, email, n.ID, domain.InviteDenied)
}

func (c *Client) resolveNotification(ctx context.Context, email, notificationID, status string) error {
	return patch(ctx, c, notificationsKey(email), func(old []domain.Notification) []domain.Notification {
		for i := range old {
			if old[i].ID == notificationID {
				old[i].Read = true
				old[i].Status = status
			}
		}
		return old
	})
}

// PrependNotification adds a pushed notification to the front of the cached
// list. The push payload is complete, so no refetch is needed. When nothing
// is cached yet the patch is skipped and the next read fetches everything.
func (c *Client) PrependNotification(ctx context.Context, email string, n domain.Notification) error {
	return patch(ctx, c, notificationsKey(email), func(old []domain.Notification) []domain.Notification {
		return append([]domain.Notification{n}, old...)
	})
}
