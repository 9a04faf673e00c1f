package command

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"referrify/cmd/cli/command/client"
	"referrify/internal/microservices/http-api/models"
	"referrify/internal/poller"
)

var notificationsCmd = &cobra.Command{
	Use:     "notifications",
	Aliases: []string{"notif"},
	Short:   "Notification commands",
	Long:    `Read role scoped notifications, mark them read, or watch for new ones`,
}

var listNotificationsCmd = &cobra.Command{
	Use:   "list",
	Short: "List notifications for a role",
	RunE: func(cmd *cobra.Command, args []string) error {
		role, _ := cmd.Flags().GetString("role")

		ctx, cancel := commandContext(cmd)
		defer cancel()

		list, err := client.NewHTTPClient(apiURL).ListNotifications(ctx, role)
		if err != nil {
			return fmt.Errorf("failed to list notifications: %w", err)
		}

		if len(list) == 0 {
			fmt.Println("No notifications.")
			return nil
		}
		for _, n := range list {
			printNotification(n)
		}
		return nil
	},
}

var unreadNotificationsCmd = &cobra.Command{
	Use:   "unread",
	Short: "Show the unread count for a role",
	RunE: func(cmd *cobra.Command, args []string) error {
		role, _ := cmd.Flags().GetString("role")

		ctx, cancel := commandContext(cmd)
		defer cancel()

		count, err := client.NewHTTPClient(apiURL).UnreadCount(ctx, role)
		if err != nil {
			return fmt.Errorf("failed to get unread count: %w", err)
		}
		fmt.Println(unreadBadge(count))
		return nil
	},
}

var readNotificationCmd = &cobra.Command{
	Use:   "read [id]",
	Short: "Mark one notification as read",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		if err := client.NewHTTPClient(apiURL).MarkNotificationRead(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to mark notification read: %w", err)
		}
		fmt.Println("Marked as read.")
		return nil
	},
}

var readAllNotificationsCmd = &cobra.Command{
	Use:   "read-all",
	Short: "Mark every notification visible to a role as read",
	RunE: func(cmd *cobra.Command, args []string) error {
		role, _ := cmd.Flags().GetString("role")

		ctx, cancel := commandContext(cmd)
		defer cancel()

		if err := client.NewHTTPClient(apiURL).MarkAllNotificationsRead(ctx, role); err != nil {
			return fmt.Errorf("failed to mark notifications read: %w", err)
		}
		fmt.Println("All notifications marked as read.")
		return nil
	},
}

var watchNotificationsCmd = &cobra.Command{
	Use:   "watch",
	Short: "Poll for new notifications until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		role, _ := cmd.Flags().GetString("role")
		interval, _ := cmd.Flags().GetDuration("interval")

		w := &notificationWatcher{
			client: client.NewHTTPClient(apiURL),
			role:   role,
			seen:   make(map[string]bool),
		}

		color.Cyan("Watching %s notifications every %s (Ctrl+C to stop)", role, interval)
		poller.New("notifications_watch", interval, w.poll, slog.New(slog.DiscardHandler)).Run(cmd.Context())
		fmt.Println()
		color.Yellow("Stopped watching.")
		return nil
	},
}

// notificationWatcher prints notifications it has not printed before and the unread badge when it changes
type notificationWatcher struct {
	client     *client.HTTPClient
	role       string
	seen       map[string]bool
	lastUnread int
	primed     bool
}

func (w *notificationWatcher) poll(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	list, err := w.client.ListNotifications(ctx, w.role)
	if err != nil {
		color.Red("poll failed: %v", err)
		return err
	}

	// newest first from the server; print oldest first
	for i := len(list) - 1; i >= 0; i-- {
		n := list[i]
		if w.seen[n.ID] {
			continue
		}
		w.seen[n.ID] = true
		if w.primed || !n.IsRead {
			printNotification(n)
		}
	}

	unread := 0
	for _, n := range list {
		if !n.IsRead {
			unread++
		}
	}
	if !w.primed || unread != w.lastUnread {
		fmt.Println(unreadBadge(unread))
	}
	w.lastUnread = unread
	w.primed = true
	return nil
}

func printNotification(n models.Notification) {
	marker := color.New(color.FgHiBlack).Sprint("  ")
	if !n.IsRead {
		marker = color.New(color.FgBlue, color.Bold).Sprint("● ")
	}
	fmt.Printf("%s%s  %s\n", marker, color.New(color.Bold).Sprint(n.Title), timeAgo(n.CreatedAt))
	fmt.Printf("  %s\n", n.Message)
	if n.FromUser != nil {
		fmt.Printf("  from %s (%s)\n", n.FromUser.Name, n.FromUser.Role)
	}
	fmt.Printf("  id: %s\n", n.ID)
	fmt.Println(strings.Repeat("-", 50))
}

func unreadBadge(count int) string {
	switch {
	case count == 0:
		return color.GreenString("No unread notifications")
	case count > 9:
		return color.RedString("Unread: 9+")
	default:
		return color.YellowString("Unread: %d", count)
	}
}

func timeAgo(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return t.Format("2006-01-02")
	}
}

func init() {
	notificationsCmd.AddCommand(listNotificationsCmd)
	notificationsCmd.AddCommand(unreadNotificationsCmd)
	notificationsCmd.AddCommand(readNotificationCmd)
	notificationsCmd.AddCommand(readAllNotificationsCmd)
	notificationsCmd.AddCommand(watchNotificationsCmd)

	listNotificationsCmd.Flags().String("role", "", "student, alumni or admin (empty lists all)")
	for _, c := range []*cobra.Command{unreadNotificationsCmd, readAllNotificationsCmd, watchNotificationsCmd} {
		c.Flags().String("role", "student", "student, alumni or admin")
	}
	watchNotificationsCmd.Flags().Duration("interval", 10*time.Second, "poll interval")
}
