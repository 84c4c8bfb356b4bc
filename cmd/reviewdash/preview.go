package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-review/internal/preview"
)

var previewCommand = &cobra.Command{
	Use:   "preview <application-id>",
	Short: "Fetch and print a candidate's resume as text",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

var previewJobID string

func init() {
	previewCommand.Flags().StringVar(&previewJobID, "job", "", "Job ID the application belongs to (defaults to the first job)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}

	w, err := a.openJob(cmd.Context(), previewJobID)
	if err != nil {
		return err
	}

	if err := w.Select(args[0]); err != nil {
		return err
	}
	selected, _ := w.Selected()
	if selected.ResumeURL == "" || !strings.HasPrefix(selected.ResumeURL, "http") {
		return fmt.Errorf("application %s has no fetchable resume reference", selected.ID)
	}

	text, err := preview.Fetch(cmd.Context(), selected.ResumeURL, nil)
	if err != nil {
		return err
	}
	fmt.Println(text)
	return nil
}
