package command

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"referrify/cmd/cli/command/client"
	"referrify/internal/microservices/http-api/dto"
	"referrify/internal/microservices/http-api/models"
)

var applicationsCmd = &cobra.Command{
	Use:     "applications",
	Aliases: []string{"apps"},
	Short:   "Job application commands",
	Long:    `Review job applications: list by job or poster, show stats and update status`,
}

var listApplicationsCmd = &cobra.Command{
	Use:   "list",
	Short: "List applications",
	RunE: func(cmd *cobra.Command, args []string) error {
		jobID, _ := cmd.Flags().GetString("job")
		postedBy, _ := cmd.Flags().GetString("poster")

		ctx, cancel := commandContext(cmd)
		defer cancel()

		apps, err := client.NewHTTPClient(apiURL).ListApplications(ctx, jobID, postedBy)
		if err != nil {
			return fmt.Errorf("failed to list applications: %w", err)
		}

		if len(apps) == 0 {
			fmt.Println("No applications found.")
			return nil
		}

		fmt.Printf("Found %d applications:\n\n", len(apps))
		for _, a := range apps {
			fmt.Printf("ID: %s\n", a.ID)
			fmt.Printf("Job: %s @ %s (%s)\n", a.JobTitle, a.Company, a.JobID)
			fmt.Printf("Student: %s <%s>\n", a.StudentName, a.StudentEmail)
			fmt.Printf("Applied: %s\n", a.AppliedAt.Format("2006-01-02 15:04"))
			fmt.Printf("Status: %s\n", applicationStatusColor(a.Status).Sprint(a.Status))
			fmt.Println(strings.Repeat("-", 50))
		}
		return nil
	},
}

var applicationStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show application counts by status",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		stats, err := client.NewHTTPClient(apiURL).ApplicationStats(ctx)
		if err != nil {
			return fmt.Errorf("failed to get stats: %w", err)
		}

		fmt.Printf("Total:    %d\n", stats.Total)
		fmt.Printf("Pending:  %d\n", stats.Pending)
		fmt.Printf("Reviewed: %d\n", stats.Reviewed)
		fmt.Printf("Accepted: %d\n", stats.Accepted)
		fmt.Printf("Rejected: %d\n", stats.Rejected)
		return nil
	},
}

var updateApplicationStatusCmd = &cobra.Command{
	Use:   "status [id] [pending|reviewed|accepted|rejected]",
	Short: "Change the status of an application",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		by, _ := cmd.Flags().GetString("by")

		ctx, cancel := commandContext(cmd)
		defer cancel()

		app, err := client.NewHTTPClient(apiURL).UpdateApplicationStatus(ctx, args[0], &dto.UpdateApplicationStatusDTO{
			Status:    args[1],
			UpdatedBy: by,
		})
		if err != nil {
			return fmt.Errorf("failed to update status: %w", err)
		}

		color.Green("Application for %s marked as %s", app.JobTitle, app.Status)
		return nil
	},
}

func applicationStatusColor(s models.ApplicationStatus) *color.Color {
	switch s {
	case models.ApplicationAccepted:
		return color.New(color.FgGreen)
	case models.ApplicationRejected:
		return color.New(color.FgRed)
	case models.ApplicationReviewed:
		return color.New(color.FgCyan)
	default:
		return color.New(color.FgYellow)
	}
}

func init() {
	applicationsCmd.AddCommand(listApplicationsCmd)
	applicationsCmd.AddCommand(applicationStatsCmd)
	applicationsCmd.AddCommand(updateApplicationStatusCmd)

	listApplicationsCmd.Flags().String("job", "", "Only applications for this job ID")
	listApplicationsCmd.Flags().String("poster", "", "Only applications to jobs posted by this poster name")

	updateApplicationStatusCmd.Flags().String("by", "", "Name of the reviewer (required)")
	updateApplicationStatusCmd.MarkFlagRequired("by")
}
