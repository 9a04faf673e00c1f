package command

// root.go defines the root command for the referrify CLI.
// set up the global flags here.

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var (
	apiURL         string // Global flag for API server URL
	requestTimeout time.Duration
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "referrify",
	Short: "referrify - Referrify Command Line Interface",
	Long: `referrify is a tool to interact with the Referrify API. User can use this application to:
- Browse, post and manage job referrals
- Apply to jobs and move applications through review
- Read and watch role scoped notifications

Use "referrify command -h" to see all available commands.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// Ctrl+C cancels the command context so long running commands like watch can stop cleanly.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err) // Print error to standard error
		stop()
		os.Exit(1)
	}
}

func init() {
	defaultAPI := os.Getenv("REFERRIFY_API")
	if defaultAPI == "" {
		defaultAPI = "http://localhost:8080"
	}

	// Global persistent flags = available to all subcommands
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", defaultAPI, "API server URL")
	rootCmd.PersistentFlags().DurationVar(&requestTimeout, "timeout", 10*time.Second, "per command timeout")

	rootCmd.AddCommand(jobsCmd)
	rootCmd.AddCommand(applicationsCmd)
	rootCmd.AddCommand(notificationsCmd)
	rootCmd.AddCommand(sessionCmd)
}
