package main

import (
	"github.com/spf13/cobra"
)

var (
	current *app

	signupFlag      bool
	githubFlag      bool
	descriptionFlag string

	rootCmd = &cobra.Command{
		Use:           "boardsync",
		Short:         "Terminal client for the board service",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			current = newApp(loadConfig())
		},
	}

	// --- Auth ---
	loginCmd = &cobra.Command{
		Use:   "login [email]",
		Short: "Sign in with an emailed code, or --github for browser OAuth",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLogin, // Defined in cmd_auth.go
	}
	logoutCmd = &cobra.Command{
		Use:   "logout",
		Short: "Drop the stored session",
		RunE:  runLogout, // Defined in cmd_auth.go
	}
	whoamiCmd = &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user and token details",
		RunE:  runWhoami, // Defined in cmd_auth.go
	}

	// --- Boards ---
	boardsCmd = &cobra.Command{
		Use:   "boards",
		Short: "Manage boards",
	}
	boardsListCmd = &cobra.Command{
		Use:   "list",
		Short: "List boards, newest first",
		RunE:  runBoardsList, // Defined in cmd_boards.go
	}
	boardsCreateCmd = &cobra.Command{
		Use:   "create [name]",
		Short: "Create a board",
		Args:  cobra.ExactArgs(1),
		RunE:  runBoardsCreate,
	}
	boardsUpdateCmd = &cobra.Command{
		Use:   "update [board-id] [name]",
		Short: "Rename a board",
		Args:  cobra.ExactArgs(2),
		RunE:  runBoardsUpdate,
	}
	boardsDeleteCmd = &cobra.Command{
		Use:   "delete [board-id]",
		Short: "Delete a board and everything on it",
		Args:  cobra.ExactArgs(1),
		RunE:  runBoardsDelete,
	}
	boardsInviteCmd = &cobra.Command{
		Use:   "invite [board-id] [email]",
		Short: "Invite a member to a board",
		Args:  cobra.ExactArgs(2),
		RunE:  runBoardsInvite,
	}

	// --- Cards ---
	cardsCmd = &cobra.Command{
		Use:   "cards",
		Short: "Manage the cards (columns) of a board",
	}
	cardsListCmd = &cobra.Command{
		Use:   "list [board-id]",
		Short: "List a board's cards in column order",
		Args:  cobra.ExactArgs(1),
		RunE:  runCardsList, // Defined in cmd_boards.go
	}
	cardsTitlesCmd = &cobra.Command{
		Use:   "titles [board-id]",
		Short: "Show the card titles still available on a board",
		Args:  cobra.ExactArgs(1),
		RunE:  runCardsTitles,
	}
	cardsCreateCmd = &cobra.Command{
		Use:   "create [board-id] [title]",
		Short: "Add a card with one of the available titles",
		Args:  cobra.ExactArgs(2),
		RunE:  runCardsCreate,
	}
	cardsUpdateCmd = &cobra.Command{
		Use:   "update [board-id] [card-id] [title]",
		Short: "Retitle a card",
		Args:  cobra.ExactArgs(3),
		RunE:  runCardsUpdate,
	}
	cardsDeleteCmd = &cobra.Command{
		Use:   "delete [board-id] [card-id]",
		Short: "Delete a card",
		Args:  cobra.ExactArgs(2),
		RunE:  runCardsDelete,
	}

	// --- Tasks ---
	tasksCmd = &cobra.Command{
		Use:   "tasks",
		Short: "Manage tasks on a card",
	}
	tasksListCmd = &cobra.Command{
		Use:   "list [board-id] [card-id]",
		Short: "List a card's tasks",
		Args:  cobra.ExactArgs(2),
		RunE:  runTasksList, // Defined in cmd_tasks.go
	}
	tasksCreateCmd = &cobra.Command{
		Use:   "create [board-id] [card-id] [title]",
		Short: "Create a task",
		Args:  cobra.ExactArgs(3),
		RunE:  runTasksCreate,
	}
	tasksUpdateCmd = &cobra.Command{
		Use:   "update [board-id] [card-id] [task-id] [title]",
		Short: "Retitle a task",
		Args:  cobra.ExactArgs(4),
		RunE:  runTasksUpdate,
	}
	tasksDeleteCmd = &cobra.Command{
		Use:   "delete [board-id] [card-id] [task-id]",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(3),
		RunE:  runTasksDelete,
	}
	tasksMoveCmd = &cobra.Command{
		Use:   "move [board-id] [from-card-id] [task-id] [dest-title]",
		Short: "Move a task to the card with the given title",
		Args:  cobra.ExactArgs(4),
		RunE:  runTasksMove,
	}
	tasksAssignCmd = &cobra.Command{
		Use:   "assign [board-id] [card-id] [task-id] [member]",
		Short: "Assign a board member to a task",
		Args:  cobra.ExactArgs(4),
		RunE:  runTasksAssign,
	}
	tasksUnassignCmd = &cobra.Command{
		Use:   "unassign [board-id] [card-id] [task-id] [member]",
		Short: "Remove a member from a task",
		Args:  cobra.ExactArgs(4),
		RunE:  runTasksUnassign,
	}
	tasksAssigneesCmd = &cobra.Command{
		Use:   "assignees [board-id] [card-id] [task-id]",
		Short: "List a task's assignees",
		Args:  cobra.ExactArgs(3),
		RunE:  runTasksAssignees,
	}

	// --- Notifications ---
	notificationsCmd = &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"inbox"},
		Short:   "Read and resolve notifications",
	}
	notificationsListCmd = &cobra.Command{
		Use:   "list",
		Short: "List notifications, newest first",
		RunE:  runNotificationsList, // Defined in cmd_notifications.go
	}
	notificationsAcceptCmd = &cobra.Command{
		Use:   "accept [notification-id]",
		Short: "Accept the board invite behind a notification",
		Args:  cobra.ExactArgs(1),
		RunE:  runNotificationsAccept,
	}
	notificationsDenyCmd = &cobra.Command{
		Use:   "deny [notification-id]",
		Short: "Deny the board invite behind a notification",
		Args:  cobra.ExactArgs(1),
		RunE:  runNotificationsDeny,
	}

	// --- Watch ---
	watchCmd = &cobra.Command{
		Use:   "watch",
		Short: "Follow realtime pushes",
	}
	watchTasksCmd = &cobra.Command{
		Use:   "tasks [board-id] [card-id]",
		Short: "Keep a card's task cache fresh from pushed updates",
		Args:  cobra.ExactArgs(2),
		RunE:  runWatchTasks, // Defined in cmd_notifications.go
	}
	watchNotificationsCmd = &cobra.Command{
		Use:   "notifications",
		Short: "Print notifications as they arrive",
		RunE:  runWatchNotifications,
	}
)

func init() {
	loginCmd.Flags().BoolVar(&signupFlag, "signup", false, "register a new account instead of signing in")
	loginCmd.Flags().BoolVar(&githubFlag, "github", false, "sign in through GitHub OAuth")
	boardsCreateCmd.Flags().StringVar(&descriptionFlag, "description", "", "board description")
	boardsUpdateCmd.Flags().StringVar(&descriptionFlag, "description", "", "board description")
	tasksCreateCmd.Flags().StringVar(&descriptionFlag, "description", "", "task description")
	tasksUpdateCmd.Flags().StringVar(&descriptionFlag, "description", "", "task description")

	boardsCmd.AddCommand(boardsListCmd, boardsCreateCmd, boardsUpdateCmd, boardsDeleteCmd, boardsInviteCmd)
	cardsCmd.AddCommand(cardsListCmd, cardsTitlesCmd, cardsCreateCmd, cardsUpdateCmd, cardsDeleteCmd)
	tasksCmd.AddCommand(tasksListCmd, tasksCreateCmd, tasksUpdateCmd, tasksDeleteCmd, tasksMoveCmd,
		tasksAssignCmd, tasksUnassignCmd, tasksAssigneesCmd)
	notificationsCmd.AddCommand(notificationsListCmd, notificationsAcceptCmd, notificationsDenyCmd)
	watchCmd.AddCommand(watchTasksCmd, watchNotificationsCmd)

	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd, boardsCmd, cardsCmd, tasksCmd, notificationsCmd, watchCmd)
}
