package query

import (
	"context"
	"testing"

	"boardsync/domain"
)

func inviteNotification() domain.Notification {
	return domain.Notification{
		ID:       "n1",
		UserID:   "b@x.com",
		Type:     domain.NotificationInvite,
		Message:  "You were invited to Sprint 1",
		BoardID:  "b1",
		FromUser: "a@x.com",
		InviteID: "i1",
		Status:   domain.InvitePending,
	}
}

func TestAcceptInvitePatchesNotificationAndInvalidatesBoards(t *testing.T) {
	ctx := context.Background()
	email := "b@x.com"
	var boardFetches, notifFetches int
	var gotStatus, gotNotifID string
	stub := &stubAPI{
		boardsFn: func(ctx context.Context) ([]domain.Board, error) {
			boardFetches++
			return []domain.Board{{ID: "b0"}}, nil
		},
		notifsFn: func(ctx context.Context, userID string) ([]domain.Notification, error) {
			notifFetches++
			return []domain.Notification{inviteNotification()}, nil
		},
		respondFn: func(ctx context.Context, boardID, inviteID, status, notificationID string) error {
			if boardID != "b1" || inviteID != "i1" {
				t.Fatalf("unexpected respond args: %s %s", boardID, inviteID)
			}
			gotStatus = status
			gotNotifID = notificationID
			return nil
		},
	}
	c, _ := newTestClient(stub)

	// Warm both caches.
	if _, err := c.Boards(ctx); err != nil {
		t.Fatalf("boards: %v", err)
	}
	if _, err := c.Notifications(ctx, email); err != nil {
		t.Fatalf("notifications: %v", err)
	}

	if err := c.AcceptInvite(ctx, email, inviteNotification()); err != nil {
		t.Fatalf("accept invite: %v", err)
	}
	if gotStatus != domain.InviteAccepted || gotNotifID != "n1" {
		t.Fatalf("unexpected respond call: %s %s", gotStatus, gotNotifID)
	}

	// Notification flipped in place without a refetch.
	notifs, err := c.Notifications(ctx, email)
	if err != nil {
		t.Fatalf("notifications: %v", err)
	}
	if notifFetches != 1 {
		t.Fatalf("expected notification patch, got %d fetches", notifFetches)
	}
	if !notifs[0].Read || notifs[0].Status != domain.InviteAccepted {
		t.Fatalf("notification not resolved: %+v", notifs[0])
	}

	// Boards list was invalidated: membership changed.
	if _, err := c.Boards(ctx); err != nil {
		t.Fatalf("boards: %v", err)
	}
	if boardFetches != 2 {
		t.Fatalf("expected boards refetch after accept, got %d fetches", boardFetches)
	}
}

func TestDenyInviteDoesNotInvalidateBoards(t *testing.T) {
	ctx := context.Background()
	email := "b@x.com"
	var boardFetches int
	stub := &stubAPI{
		boardsFn: func(ctx context.Context) ([]domain.Board, error) {
			boardFetches++
			return nil, nil
		},
		notifsFn: func(ctx context.Context, userID string) ([]domain.Notification, error) {
			return []domain.Notification{inviteNotification()}, nil
		},
		respondFn: func(ctx context.Context, boardID, inviteID, status, notificationID string) error {
			if status != domain.InviteDenied {
				t.Fatalf("unexpected status: %s", status)
			}
			return nil
		},
	}
	c, _ := newTestClient(stub)

	if _, err := c.Boards(ctx); err != nil {
		t.Fatalf("boards: %v", err)
	}
	if _, err := c.Notifications(ctx, email); err != nil {
		t.Fatalf("notifications: %v", err)
	}

	if err := c.DenyInvite(ctx, email, inviteNotification()); err != nil {
		t.Fatalf("deny invite: %v", err)
	}

	notifs, err := c.Notifications(ctx, email)
	if err != nil {
		t.Fatalf("notifications: %v", err)
	}
	if !notifs[0].Read || notifs[0].Status != domain.InviteDenied {
		t.Fatalf("notification not resolved: %+v", notifs[0])
	}

	if _, err := c.Boards(ctx); err != nil {
		t.Fatalf("boards: %v", err)
	}
	if boardFetches != 1 {
		t.Fatalf("deny must not invalidate boards, got %d fetches", boardFetches)
	}
}

func TestPrependNotificationPatchesCachedList(t *testing.T) {
	ctx := context.Background()
	email := "b@x.com"
	var fetches int
	stub := &stubAPI{notifsFn: func(ctx context.Context, userID string) ([]domain.Notification, error) {
		fetches++
		return []domain.Notification{{ID: "n1", Message: "older"}}, nil
	}}
	c, _ := newTestClient(stub)

	if _, err := c.Notifications(ctx, email); err != nil {
		t.Fatalf("notifications: %v", err)
	}

	pushed := domain.Notification{ID: "n2", Message: "pushed"}
	if err := c.PrependNotification(ctx, email, pushed); err != nil {
		t.Fatalf("prepend: %v", err)
	}

	notifs, err := c.Notifications(ctx, email)
	if err != nil {
		t.Fatalf("notifications: %v", err)
	}
	if fetches != 1 {
		t.Fatalf("expected patch without refetch, got %d fetches", fetches)
	}
	if len(notifs) != 2 || notifs[0].ID != "n2" || notifs[1].ID != "n1" {
		t.Fatalf("unexpected list: %+v", notifs)
	}
}

func TestPrependNotificationWithoutCachedListIsNoop(t *testing.T) {
	ctx := context.Background()
	email := "b@x.com"
	var fetches int
	stub := &stubAPI{notifsFn: func(ctx context.Context, userID string) ([]domain.Notification, error) {
		fetches++
		return []domain.Notification{{ID: "n1"}, {ID: "n2"}}, nil
	}}
	c, _ := newTestClient(stub)

	// Nothing cached yet: the push must not seed a partial list that would
	// mask older entries.
	if err := c.PrependNotification(ctx, email, domain.Notification{ID: "n3"}); err != nil {
		t.Fatalf("prepend: %v", err)
	}

	notifs, err := c.Notifications(ctx, email)
	if err != nil {
		t.Fatalf("notifications: %v", err)
	}
	if fetches != 1 || len(notifs) != 2 {
		t.Fatalf("expected full fetch, got %d fetches, %d entries", fetches, len(notifs))
	}
}
