package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"boardsync/domain"
)

func runBoardsList(cmd *cobra.Command, args []string) error {
	if _, err := current.requireSession(); err != nil {
		return err
	}
	boards, err := current.queries.Boards(cmd.Context())
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tMEMBERS\tCREATED")
	for _, b := range boards {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", b.ID, b.Name, len(b.Members), b.CreatedAt.Format("2006-01-02"))
	}
	return w.Flush()
}

func runBoardsCreate(cmd *cobra.Command, args []string) error {
	if _, err := current.requireSession(); err != nil {
		return err
	}
	board, err := current.queries.CreateBoard(cmd.Context(), args[0], descriptionFlag)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created board %s (%s)\n", board.Name, board.ID)
	return nil
}

func runBoardsUpdate(cmd *cobra.Command, args []string) error {
	if _, err := current.requireSession(); err != nil {
		return err
	}
	board, err := current.queries.UpdateBoard(cmd.Context(), args[0], args[1], descriptionFlag)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated board %s\n", board.ID)
	return nil
}

func runBoardsDelete(cmd *cobra.Command, args []string) error {
	if _, err := current.requireSession(); err != nil {
		return err
	}
	if err := current.queries.DeleteBoard(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted board %s\n", args[0])
	return nil
}

func runBoardsInvite(cmd *cobra.Command, args []string) error {
	if _, err := current.requireSession(); err != nil {
		return err
	}
	invite, err := current.queries.InviteMember(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Invited %s (invite %s)\n", invite.EmailMember, invite.InviteID)
	return nil
}

func runCardsList(cmd *cobra.Command, args []string) error {
	if _, err := current.requireSession(); err != nil {
		return err
	}
	cards, err := current.queries.Cards(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE")
	for _, c := range cards {
		fmt.Fprintf(w, "%s\t%s\n", c.ID, c.Title)
	}
	return w.Flush()
}

func runCardsTitles(cmd *cobra.Command, args []string) error {
	if _, err := current.requireSession(); err != nil {
		return err
	}
	titles, err := current.queries.AvailableTitles(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if len(titles) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "all card titles are in use")
		return nil
	}
	parts := make([]string, len(titles))
	for i, t := range titles {
		parts[i] = string(t)
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, ", "))
	return nil
}

func runCardsCreate(cmd *cobra.Command, args []string) error {
	if _, err := current.requireSession(); err != nil {
		return err
	}
	title, err := domain.ParseCardTitle(args[1])
	if err != nil {
		return err
	}
	card, err := current.queries.CreateCard(cmd.Context(), args[0], title)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created card %q (%s)\n", card.Title, card.ID)
	return nil
}

func runCardsUpdate(cmd *cobra.Command, args []string) error {
	if _, err := current.requireSession(); err != nil {
		return err
	}
	title, err := domain.ParseCardTitle(args[2])
	if err != nil {
		return err
	}
	card, err := current.queries.UpdateCard(cmd.Context(), args[0], args[1], title)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated card %s\n", card.ID)
	return nil
}

func runCardsDelete(cmd *cobra.Command, args []string) error {
	if _, err := current.requireSession(); err != nil {
		return err
	}
	if err := current.queries.DeleteCard(cmd.Context(), args[0], args[1]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted card %s\n", args[1])
	return nil
}
