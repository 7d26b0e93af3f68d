package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"boardsync/api"
	"boardsync/domain"
)

func runTasksList(cmd *cobra.Command, args []string) error {
	if _, err := current.requireSession(); err != nil {
		return err
	}
	tasks, err := current.queries.Tasks(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tUPDATED")
	for _, t := range tasks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, t.Title, t.Status, t.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func runTasksCreate(cmd *cobra.Command, args []string) error {
	if _, err := current.requireSession(); err != nil {
		return err
	}
	task, err := current.queries.CreateTask(cmd.Context(), args[0], args[1], args[2], descriptionFlag)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created task %s (%s)\n", task.Title, task.ID)
	return nil
}

func runTasksUpdate(cmd *cobra.Command, args []string) error {
	if _, err := current.requireSession(); err != nil {
		return err
	}
	payload := api.TaskPayload{Title: &args[3]}
	if cmd.Flags().Changed("description") {
		payload.Description = &descriptionFlag
	}
	task, err := current.queries.UpdateTask(cmd.Context(), args[0], args[1], args[2], payload)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s\n", task.ID)
	return nil
}

func runTasksDelete(cmd *cobra.Command, args []string) error {
	if _, err := current.requireSession(); err != nil {
		return err
	}
	if err := current.queries.DeleteTask(cmd.Context(), args[0], args[1], args[2]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %s\n", args[2])
	return nil
}

func runTasksMove(cmd *cobra.Command, args []string) error {
	if _, err := current.requireSession(); err != nil {
		return err
	}
	boardID, fromCardID, taskID := args[0], args[1], args[2]
	title, err := domain.ParseCardTitle(args[3])
	if err != nil {
		return err
	}
	dest, err := findCardByTitle(cmd, boardID, title)
	if err != nil {
		return err
	}
	task, err := current.queries.MoveTask(cmd.Context(), boardID, fromCardID, taskID, dest)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Moved task %s to %q\n", task.ID, dest.Title)
	return nil
}

func findCardByTitle(cmd *cobra.Command, boardID string, title domain.CardTitle) (domain.Card, error) {
	cards, err := current.queries.Cards(cmd.Context(), boardID)
	if err != nil {
		return domain.Card{}, err
	}
	for _, c := range cards {
		if c.Title == title {
			return c, nil
		}
	}
	return domain.Card{}, fmt.Errorf("board %s has no %q card", boardID, title)
}

func runTasksAssign(cmd *cobra.Command, args []string) error {
	if _, err := current.requireSession(); err != nil {
		return err
	}
	if err := current.queries.Assign(cmd.Context(), args[0], args[1], args[2], args[3]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Assigned %s\n", args[3])
	return nil
}

func runTasksUnassign(cmd *cobra.Command, args []string) error {
	if _, err := current.requireSession(); err != nil {
		return err
	}
	if err := current.queries.Unassign(cmd.Context(), args[0], args[1], args[2], args[3]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[3])
	return nil
}

func runTasksAssignees(cmd *cobra.Command, args []string) error {
	if _, err := current.requireSession(); err != nil {
		return err
	}
	assignees, err := current.queries.Assignees(cmd.Context(), args[0], args[1], args[2])
	if err != nil {
		return err
	}
	for _, a := range assignees {
		fmt.Fprintln(cmd.OutOrStdout(), a.MemberID)
	}
	return nil
}
