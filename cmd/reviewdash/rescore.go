package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-review/internal/render"
	"github.com/jonathan/candidate-review/internal/review"
)

var rescoreCommand = &cobra.Command{
	Use:   "rescore [job-id]",
	Short: "Rescore all of a job's applications with the current ATS algorithm",
	Long: `Triggers a server-side bulk rescore for the job and reloads the refreshed
scores. Requires a login session.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRescore,
}

func runRescore(cmd *cobra.Command, args []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}
	if err := a.requireSession(cmd.Context()); err != nil {
		return err
	}

	jobID := ""
	if len(args) == 1 {
		jobID = args[0]
	}
	w, err := a.openJob(cmd.Context(), jobID)
	if err != nil {
		return err
	}

	count, err := w.RescoreAll(cmd.Context(), "")
	if err != nil {
		return err
	}
	fmt.Printf("Rescored %d applications\n\n", count)

	job, _ := w.ActiveJob()
	visible := w.Derived("", review.FilterAll, review.SortScore)
	render.NewPrinter(os.Stdout).CandidateList(&job, visible, w.Counts(), len(w.Applications()))
	return nil
}
