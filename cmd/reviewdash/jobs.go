package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-review/internal/render"
	"github.com/jonathan/candidate-review/internal/review"
	"github.com/jonathan/candidate-review/internal/types"
)

var jobsCommand = &cobra.Command{
	Use:   "jobs [job-id]",
	Short: "List job requisitions, or show one",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runJobs,
}

func runJobs(cmd *cobra.Command, args []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}

	if len(args) == 1 {
		job, err := a.client.GetJob(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		render.NewPrinter(os.Stdout).JobList([]types.JobPosting{*job})
		return nil
	}

	w := review.NewWorkspace(a.client)
	if err := w.LoadJobs(cmd.Context()); err != nil {
		return err
	}

	render.NewPrinter(os.Stdout).JobList(w.Jobs())
	return nil
}
