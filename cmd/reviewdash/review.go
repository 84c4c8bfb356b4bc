package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-review/internal/render"
	"github.com/jonathan/candidate-review/internal/review"
	"github.com/jonathan/candidate-review/internal/types"
)

var reviewCommand = &cobra.Command{
	Use:   "review [job-id]",
	Short: "Browse ranked candidates for a job",
	Long: `Shows the filtered, sorted candidate list for a job requisition. With no
job-id the first job is used. Use --show to open one candidate's detail
panel alongside the list.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReview,
}

var (
	reviewSearch string
	reviewStatus string
	reviewSort   string
	reviewShow   string
)

func init() {
	reviewCommand.Flags().StringVarP(&reviewSearch, "search", "s", "", "Search candidates by name, email, college, or skill")
	reviewCommand.Flags().StringVar(&reviewStatus, "status", "all", "Filter by status (all, pending, shortlisted, interviewed, rejected)")
	reviewCommand.Flags().StringVar(&reviewSort, "sort", "score", "Sort key (score, date, name)")
	reviewCommand.Flags().StringVar(&reviewShow, "show", "", "Application ID to open in the detail panel")
}

func runReview(cmd *cobra.Command, args []string) error {
	filter := review.StatusFilter(reviewStatus)
	if filter != review.FilterAll && !types.Status(reviewStatus).Valid() {
		return fmt.Errorf("unknown status filter %q", reviewStatus)
	}

	a, err := buildApp()
	if err != nil {
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

	job, _ := w.ActiveJob()
	visible := w.Derived(reviewSearch, filter, review.SortKey(reviewSort))

	printer := render.NewPrinter(os.Stdout)
	printer.CandidateList(&job, visible, w.Counts(), len(w.Applications()))

	if reviewShow != "" {
		if err := w.Select(reviewShow); err != nil {
			return err
		}
		if selected, ok := w.Selected(); ok {
			printer.Detail(&job, selected)
		}
	}
	return nil
}
