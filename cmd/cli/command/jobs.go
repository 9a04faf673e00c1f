package command

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"referrify/cmd/cli/command/client"
	"referrify/internal/microservices/http-api/dto"
	"referrify/internal/microservices/http-api/models"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Job posting commands",
	Long:  `Manage job postings: list, show, create, update, delete, view and apply`,
}

var listJobsCmd = &cobra.Command{
	Use:   "list",
	Short: "List job postings",
	RunE: func(cmd *cobra.Command, args []string) error {
		activeOnly, _ := cmd.Flags().GetBool("active")

		ctx, cancel := commandContext(cmd)
		defer cancel()

		jobs, err := client.NewHTTPClient(apiURL).ListJobs(ctx, activeOnly)
		if err != nil {
			return fmt.Errorf("failed to list jobs: %w", err)
		}

		if len(jobs) == 0 {
			fmt.Println("No jobs found.")
			return nil
		}

		fmt.Printf("Found %d jobs:\n\n", len(jobs))
		for _, j := range jobs {
			printJobSummary(j)
			fmt.Println(strings.Repeat("-", 50))
		}
		return nil
	},
}

var showJobCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a job posting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		job, err := client.NewHTTPClient(apiURL).GetJob(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to get job: %w", err)
		}

		printJobSummary(*job)
		if job.Department != "" {
			fmt.Printf("Department: %s\n", job.Department)
		}
		if job.Description != "" {
			fmt.Printf("\n%s\n", job.Description)
		}
		printList("Requirements", job.Requirements)
		printList("Responsibilities", job.Responsibilities)
		printList("Benefits", job.Benefits)
		return nil
	},
}

var createJobCmd = &cobra.Command{
	Use:   "create",
	Short: "Post a new job",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		title, _ := flags.GetString("title")
		company, _ := flags.GetString("company")
		location, _ := flags.GetString("location")
		jobType, _ := flags.GetString("type")
		department, _ := flags.GetString("department")
		description, _ := flags.GetString("description")
		requirements, _ := flags.GetStringSlice("requirement")
		responsibilities, _ := flags.GetStringSlice("responsibility")
		benefits, _ := flags.GetStringSlice("benefit")
		deadlineDays, _ := flags.GetInt("deadline-days")
		posterName, _ := flags.GetString("poster-name")
		posterEmail, _ := flags.GetString("poster-email")
		posterRole, _ := flags.GetString("poster-role")
		status, _ := flags.GetString("status")

		request := &dto.CreateJobDTO{
			Title:               title,
			Company:             company,
			Location:            location,
			Type:                jobType,
			Department:          department,
			Description:         description,
			Requirements:        requirements,
			Responsibilities:    responsibilities,
			Benefits:            benefits,
			ApplicationDeadline: models.NewDate(time.Now().AddDate(0, 0, deadlineDays)),
			PostedBy:            dto.PosterInput{Name: posterName, Email: posterEmail, Role: posterRole},
			Status:              status,
		}
		if flags.Changed("salary-min") && flags.Changed("salary-max") {
			minSalary, _ := flags.GetInt64("salary-min")
			maxSalary, _ := flags.GetInt64("salary-max")
			currency, _ := flags.GetString("currency")
			request.Salary = &dto.SalaryInput{Min: &minSalary, Max: &maxSalary, Currency: currency}
		}

		ctx, cancel := commandContext(cmd)
		defer cancel()

		job, err := client.NewHTTPClient(apiURL).CreateJob(ctx, request)
		if err != nil {
			return fmt.Errorf("failed to create job: %w", err)
		}

		color.Green("Job posted successfully!")
		fmt.Printf("ID: %s\n", job.ID)
		return nil
	},
}

var updateJobCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update fields of a job posting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		request := &dto.UpdateJobDTO{}
		if flags.Changed("title") {
			v, _ := flags.GetString("title")
			request.Title = &v
		}
		if flags.Changed("location") {
			v, _ := flags.GetString("location")
			request.Location = &v
		}
		if flags.Changed("description") {
			v, _ := flags.GetString("description")
			request.Description = &v
		}
		if flags.Changed("status") {
			v, _ := flags.GetString("status")
			request.Status = &v
		}

		ctx, cancel := commandContext(cmd)
		defer cancel()

		job, err := client.NewHTTPClient(apiURL).UpdateJob(ctx, args[0], request)
		if err != nil {
			return fmt.Errorf("failed to update job: %w", err)
		}

		color.Green("Job updated successfully!")
		printJobSummary(*job)
		return nil
	},
}

var deleteJobCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a job posting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		if err := client.NewHTTPClient(apiURL).DeleteJob(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to delete job: %w", err)
		}
		color.Green("Job %s deleted.", args[0])
		return nil
	},
}

var viewJobCmd = &cobra.Command{
	Use:   "view [id]",
	Short: "Record a view on a job posting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		if err := client.NewHTTPClient(apiURL).RecordView(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to record view: %w", err)
		}
		fmt.Println("View recorded.")
		return nil
	},
}

var applyJobCmd = &cobra.Command{
	Use:   "apply [id]",
	Short: "Apply to a job posting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		name, _ := flags.GetString("name")
		email, _ := flags.GetString("email")
		resume, _ := flags.GetString("resume-url")
		cover, _ := flags.GetString("cover-letter")

		ctx, cancel := commandContext(cmd)
		defer cancel()

		app, err := client.NewHTTPClient(apiURL).ApplyToJob(ctx, args[0], &dto.SubmitApplicationDTO{
			Name:        name,
			Email:       email,
			ResumeURL:   resume,
			CoverLetter: cover,
		})
		if err != nil {
			return fmt.Errorf("failed to apply: %w", err)
		}

		color.Green("Application submitted!")
		fmt.Printf("Application ID: %s\n", app.ID)
		return nil
	},
}

func printJobSummary(j models.Job) {
	fmt.Printf("ID: %s\n", j.ID)
	fmt.Printf("Title: %s @ %s\n", j.Title, j.Company)
	fmt.Printf("Type: %s  Location: %s\n", j.Type, j.Location)
	fmt.Printf("Status: %s\n", jobStatusColor(j.Status).Sprint(j.Status))
	if j.Salary != nil {
		fmt.Printf("Salary: %d - %d %s\n", j.Salary.Min, j.Salary.Max, j.Salary.Currency)
	}
	if !j.ApplicationDeadline.IsZero() {
		fmt.Printf("Deadline: %s\n", j.ApplicationDeadline.Format("2006-01-02"))
	}
	fmt.Printf("Posted by: %s (%s)\n", j.PostedBy.Name, j.PostedBy.Role)
	fmt.Printf("Applications: %d  Views: %d\n", j.ApplicationsCount, j.ViewsCount)
}

func printList(title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("\n%s:\n", title)
	for _, item := range items {
		fmt.Printf("  - %s\n", item)
	}
}

func jobStatusColor(s models.JobStatus) *color.Color {
	switch s {
	case models.JobStatusActive:
		return color.New(color.FgGreen)
	case models.JobStatusClosed:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgYellow)
	}
}

// commandContext bounds each command by the global --timeout flag
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), requestTimeout)
}

func init() {
	// Add subcommands
	jobsCmd.AddCommand(listJobsCmd)
	jobsCmd.AddCommand(showJobCmd)
	jobsCmd.AddCommand(createJobCmd)
	jobsCmd.AddCommand(updateJobCmd)
	jobsCmd.AddCommand(deleteJobCmd)
	jobsCmd.AddCommand(viewJobCmd)
	jobsCmd.AddCommand(applyJobCmd)

	listJobsCmd.Flags().Bool("active", false, "Only list active jobs")

	// Create flags
	createJobCmd.Flags().String("title", "", "Job title (required)")
	createJobCmd.Flags().String("company", "", "Company name (required)")
	createJobCmd.Flags().String("location", "", "Job location")
	createJobCmd.Flags().String("type", "Full-time", "Full-time, Part-time, Internship or Contract")
	createJobCmd.Flags().String("department", "", "Department")
	createJobCmd.Flags().String("description", "", "Job description")
	createJobCmd.Flags().StringSlice("requirement", nil, "Requirement (repeatable)")
	createJobCmd.Flags().StringSlice("responsibility", nil, "Responsibility (repeatable)")
	createJobCmd.Flags().StringSlice("benefit", nil, "Benefit (repeatable)")
	createJobCmd.Flags().Int64("salary-min", 0, "Minimum salary")
	createJobCmd.Flags().Int64("salary-max", 0, "Maximum salary")
	createJobCmd.Flags().String("currency", "USD", "Salary currency")
	createJobCmd.Flags().Int("deadline-days", 30, "Days until the application deadline")
	createJobCmd.Flags().String("poster-name", "", "Poster name (required)")
	createJobCmd.Flags().String("poster-email", "", "Poster email (required)")
	createJobCmd.Flags().String("poster-role", "Alumni", "Poster role (Admin or Alumni)")
	createJobCmd.Flags().String("status", "Active", "Active, Closed or Draft")
	createJobCmd.MarkFlagRequired("title")
	createJobCmd.MarkFlagRequired("company")
	createJobCmd.MarkFlagRequired("poster-name")
	createJobCmd.MarkFlagRequired("poster-email")

	// Update flags
	updateJobCmd.Flags().String("title", "", "New title")
	updateJobCmd.Flags().String("location", "", "New location")
	updateJobCmd.Flags().String("description", "", "New description")
	updateJobCmd.Flags().String("status", "", "New status (Active, Closed or Draft)")

	// Apply flags
	applyJobCmd.Flags().String("name", "", "Applicant name (required)")
	applyJobCmd.Flags().String("email", "", "Applicant email (required)")
	applyJobCmd.Flags().String("resume-url", "", "Resume URL")
	applyJobCmd.Flags().String("cover-letter", "", "Cover letter")
	applyJobCmd.MarkFlagRequired("name")
	applyJobCmd.MarkFlagRequired("email")
}
