package command

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"referrify/cmd/cli/command/client"
	"referrify/internal/microservices/http-api/dto"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Show, set or clear the stored user session",
}

var showSessionCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		s, err := client.NewHTTPClient(apiURL).GetSession(ctx)
		if err != nil {
			return fmt.Errorf("failed to get session: %w", err)
		}
		fmt.Printf("ID: %s\n", s.ID)
		fmt.Printf("Name: %s <%s>\n", s.Name, s.Email)
		fmt.Printf("Role: %s\n", s.Role)
		return nil
	},
}

var loginSessionCmd = &cobra.Command{
	Use:   "login",
	Short: "Store a user session",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		role, _ := cmd.Flags().GetString("role")

		ctx, cancel := commandContext(cmd)
		defer cancel()

		s, err := client.NewHTTPClient(apiURL).SetSession(ctx, &dto.SetSessionDTO{Name: name, Email: email, Role: role})
		if err != nil {
			return fmt.Errorf("failed to set session: %w", err)
		}
		color.Green("Logged in as %s (%s)", s.Name, s.Role)
		return nil
	},
}

var logoutSessionCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		if err := client.NewHTTPClient(apiURL).ClearSession(ctx); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
		color.Green("Logged out successfully")
		return nil
	},
}

func init() {
	sessionCmd.AddCommand(showSessionCmd)
	sessionCmd.AddCommand(loginSessionCmd)
	sessionCmd.AddCommand(logoutSessionCmd)

	loginSessionCmd.Flags().String("name", "", "Display name (required)")
	loginSessionCmd.Flags().String("email", "", "Email (required)")
	loginSessionCmd.Flags().String("role", "student", "student, alumni or admin")
	loginSessionCmd.MarkFlagRequired("name")
	loginSessionCmd.MarkFlagRequired("email")
}
