// Package subscription keeps query caches fresh when another actor changes
// server state. One websocket connection is opened per active view; the
// client registers its user identity immediately, then consumes pushed
// events until the view goes away. Delivery is best effort and at most once:
// a dropped connection silently stops deliveries, and consistency recovers
// on the next refetch or own-mutation invalidation.
package subscription

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"boardsync/domain"
	"boardsync/internal/consts"
)

// TaskInvalidator drops the cached task list of one board/card pair.
type TaskInvalidator interface {
	InvalidateTasks(ctx context.Context, boardID, cardID string) error
}

// NotificationSink receives pushed notifications.
type NotificationSink interface {
	PrependNotification(ctx context.Context, email string, n domain.Notification) error
}

// envelope is the wire frame of the realtime channel.
type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Subscription is one live connection. Close (or cancelling the watch
// context) tears the connection down; Done is closed once the read loop has
// exited.
type Subscription struct {
	conn *websocket.Conn
	done chan struct{}

	closeOnce sync.Once
}

// Done reports when the subscription stopped delivering events.
func (s *Subscription) Done() <-chan struct{} { return s.done }

// Close tears down the connection.
func (s *Subscription) Close() error {
	var err error
	s.closeOnce.Do(func() { err = s.conn.Close() })
	return err
}

// SocketURL derives the websocket endpoint from the API base URL.
func SocketURL(apiURL string) (string, error) {
	u, err := url.Parse(apiURL)
	if err != nil {
		return "", err
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	return u.String(), nil
}

func dial(ctx context.Context, socketURL, email string) (*websocket.Conn, error) {
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, socketURL, nil)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	if err != nil {
		return nil, err
	}

	reg := envelope{Event: consts.EventRegister}
	if reg.Data, err = sonic.ConfigStd.Marshal(email); err == nil {
		err = conn.WriteJSON(reg)
	}
	if err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

// WatchTasks subscribes to task-change events for one card's task list.
// Events for other boards are ignored; a match invalidates exactly the
// ["tasks", boardID, cardID] entry so the next read refetches.
func WatchTasks(ctx context.Context, socketURL, email, boardID, cardID string, cache TaskInvalidator) (*Subscription, error) {
	conn, err := dial(ctx, socketURL, email)
	if err != nil {
		return nil, err
	}

	sub := &Subscription{conn: conn, done: make(chan struct{})}
	go sub.run(ctx, func(ev envelope) {
		if ev.Event != consts.EventTaskUpdated {
			return
		}
		var task struct {
			BoardID string `json:"boardId"`
		}
		if err := sonic.ConfigStd.Unmarshal(ev.Data, &task); err != nil {
			log.Debugf("subscription: bad taskUpdated payload: %v", err)
			return
		}
		if task.BoardID != boardID {
			return
		}
		if err := cache.InvalidateTasks(ctx, boardID, cardID); err != nil {
			log.Warnf("subscription: invalidate tasks: %v", err)
		}
	})
	return sub, nil
}

// WatchNotifications subscribes to the user's notification pushes. Payloads
// are complete, so each one is prepended to the cached list without a
// refetch.
func WatchNotifications(ctx context.Context, socketURL, email string, sink NotificationSink) (*Subscription, error) {
	conn, err := dial(ctx, socketURL, email)
	if err != nil {
		return nil, err
	}

	sub := &Subscription{conn: conn, done: make(chan struct{})}
	go sub.run(ctx, func(ev envelope) {
		if ev.Event != consts.EventNotification {
			return
		}
		var n domain.Notification
		if err := sonic.ConfigStd.Unmarshal(ev.Data, &n); err != nil {
			log.Debugf("subscription: bad notification payload: %v", err)
			return
		}
		if err := sink.PrependNotification(ctx, email, n); err != nil {
			log.Warnf("subscription: store notification: %v", err)
		}
	})
	return sub, nil
}

func (s *Subscription) run(ctx context.Context, handle func(envelope)) {
	defer close(s.done)

	go func() {
		select {
		case <-ctx.Done():
			_ = s.Close()
		case <-s.done:
		}
	}()

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil && !strings.Contains(err.Error(), "use of closed network connection") {
				log.Debugf("subscription: connection closed: %v", err)
			}
			return
		}
		var ev envelope
		if err := sonic.ConfigStd.Unmarshal(data, &ev); err != nil {
			log.Debugf("subscription: bad frame: %v", err)
			continue
		}
		handle(ev)
	}
}
