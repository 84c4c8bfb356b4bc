package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-review/internal/types"
)

var statusCommand = &cobra.Command{
	Use:   "status <application-id> <new-status>",
	Short: "Update an application's review status",
	Long: `Sets the review status of an application to pending, shortlisted,
interviewed, or rejected. Any status may be set from any other. Requires a
login session.`,
	Args: cobra.ExactArgs(2),
	RunE: runStatus,
}

var statusJobID string

func init() {
	statusCommand.Flags().StringVar(&statusJobID, "job", "", "Job ID the application belongs to (defaults to the first job)")
}

func runStatus(cmd *cobra.Command, args []string) error {
	appID := args[0]
	newStatus := types.Status(args[1])
	if !newStatus.Valid() {
		return fmt.Errorf("unknown status %q; valid statuses: %v", args[1], types.Statuses())
	}

	a, err := buildApp()
	if err != nil {
		return err
	}
	if err := a.requireSession(cmd.Context()); err != nil {
		return err
	}

	w, err := a.openJob(cmd.Context(), statusJobID)
	if err != nil {
		return err
	}
	if err := w.UpdateStatus(cmd.Context(), appID, newStatus); err != nil {
		return err
	}

	fmt.Printf("Application %s set to %s\n", appID, newStatus)
	return nil
}
