package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"boardsync/domain"
	"boardsync/query"
	"boardsync/subscription"
)

func runNotificationsList(cmd *cobra.Command, args []string) error {
	sess, err := current.requireSession()
	if err != nil {
		return err
	}
	items, err := current.queries.Notifications(cmd.Context(), sess.Email)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tSTATUS\tMESSAGE")
	for _, n := range items {
		status := n.Status
		if status == "" && n.Read {
			status = "read"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", n.ID, n.Type, status, n.Message)
	}
	return w.Flush()
}

func runNotificationsAccept(cmd *cobra.Command, args []string) error {
	return respondToInvite(cmd, args[0], domain.InviteAccepted)
}

func runNotificationsDeny(cmd *cobra.Command, args []string) error {
	return respondToInvite(cmd, args[0], domain.InviteDenied)
}

func respondToInvite(cmd *cobra.Command, notificationID, status string) error {
	sess, err := current.requireSession()
	if err != nil {
		return err
	}
	n, err := findNotification(cmd.Context(), sess.Email, notificationID)
	if err != nil {
		return err
	}
	if status == domain.InviteAccepted {
		err = current.queries.AcceptInvite(cmd.Context(), sess.Email, n)
	} else {
		err = current.queries.DenyInvite(cmd.Context(), sess.Email, n)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Invite %s\n", status)
	return nil
}

func findNotification(ctx context.Context, email, id string) (domain.Notification, error) {
	items, err := current.queries.Notifications(ctx, email)
	if err != nil {
		return domain.Notification{}, err
	}
	for _, n := range items {
		if n.ID == id {
			return n, nil
		}
	}
	return domain.Notification{}, fmt.Errorf("no notification %s", id)
}

func runWatchTasks(cmd *cobra.Command, args []string) error {
	sess, err := current.requireSession()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	sub, err := subscription.WatchTasks(ctx, current.cfg.socketURL, sess.Email, args[0], args[1], current.queries)
	if err != nil {
		return err
	}
	defer sub.Close()

	fmt.Fprintf(cmd.OutOrStdout(), "Watching tasks on board %s, card %s (Ctrl-C to stop)\n", args[0], args[1])
	<-sub.Done()
	return nil
}

// printingSink forwards pushed notifications into the cache and echoes them
// to the terminal.
type printingSink struct {
	queries *query.Client
	out     io.Writer
}

func (p printingSink) PrependNotification(ctx context.Context, email string, n domain.Notification) error {
	fmt.Fprintf(p.out, "[%s] %s: %s\n", n.CreatedAt.Format("15:04:05"), n.Type, n.Message)
	return p.queries.PrependNotification(ctx, email, n)
}

func runWatchNotifications(cmd *cobra.Command, args []string) error {
	sess, err := current.requireSession()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	sink := printingSink{queries: current.queries, out: cmd.OutOrStdout()}
	sub, err := subscription.WatchNotifications(ctx, current.cfg.socketURL, sess.Email, sink)
	if err != nil {
		return err
	}
	defer sub.Close()

	fmt.Fprintln(cmd.OutOrStdout(), "Watching notifications (Ctrl-C to stop)")
	<-sub.Done()
	return nil
}
