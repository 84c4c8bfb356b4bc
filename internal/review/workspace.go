package review

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/jonathan/candidate-review/internal/types"
)

// Client is the portal surface the workspace drives. *api.Client satisfies
// it; tests substitute fakes.
type Client interface {
	ListJobs(ctx context.Context) ([]types.JobPosting, error)
	ListApplications(ctx context.Context, jobID string) ([]types.Application, types.StatusCounts, error)
	UpdateStatus(ctx context.Context, appID string, status types.Status) error
	RescoreAll(ctx context.Context, jobID string) (int, error)
}

// Workspace errors callers branch on.
var (
	ErrNoActiveJob         = errors.New("no job selected")
	ErrUnknownJob          = errors.New("job not found in loaded job list")
	ErrApplicationNotFound = errors.New("application not found for the active job")
	ErrInvalidStatus       = errors.New("invalid application status")
)

// Workspace holds the review session state for one HR user: the loaded job
// list, the active job's applications, and the detail-panel selection.
//
// Loads are tagged with a generation that is bumped on every job switch; a
// response whose generation no longer matches is discarded without touching
// state, so the visible list always belongs to the most recently selected
// job regardless of response arrival order.
//
// Safe for concurrent use.
type Workspace struct {
	client Client

	mu          sync.Mutex
	jobs        []types.JobPosting
	activeJobID string
	gen         uint64
	apps        []types.Application
	counts      types.StatusCounts
	selectedID  string
	busy        map[string]bool

	rescores singleflight.Group
}

// NewWorkspace creates a workspace over the given portal client.
func NewWorkspace(client Client) *Workspace {
	return &Workspace{
		client: client,
		busy:   make(map[string]bool),
	}
}

// LoadJobs fetches the job collection. On failure the previously loaded jobs
// are left untouched and the error is returned; a successful fetch of zero
// jobs is not an error.
func (w *Workspace) LoadJobs(ctx context.Context) error {
	jobs, err := w.client.ListJobs(ctx)
	if err != nil {
		return fmt.Errorf("load jobs: %w", err)
	}
	w.mu.Lock()
	w.jobs = jobs
	w.mu.Unlock()
	return nil
}

// Jobs returns a snapshot of the loaded job list.
func (w *Workspace) Jobs() []types.JobPosting {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]types.JobPosting, len(w.jobs))
	copy(out, w.jobs)
	return out
}

// ActiveJob returns the currently selected job, if any.
func (w *Workspace) ActiveJob() (types.JobPosting, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, job := range w.jobs {
		if job.ID == w.activeJobID {
			return job, true
		}
	}
	return types.JobPosting{}, false
}

// SelectJob makes jobID the active job, clears the selection, discards the
// previous job's applications, and loads the new job's applications. If a
// different job is selected before the load completes, the late response is
// discarded silently and nil is returned.
func (w *Workspace) SelectJob(ctx context.Context, jobID string) error {
	w.mu.Lock()
	if !w.knownJobLocked(jobID) {
		w.mu.Unlock()
		return fmt.Errorf("select job %q: %w", jobID, ErrUnknownJob)
	}
	w.gen++
	myGen := w.gen
	w.activeJobID = jobID
	w.selectedID = ""
	w.apps = nil
	w.counts = types.StatusCounts{}
	w.mu.Unlock()

	apps, counts, err := w.client.ListApplications(ctx, jobID)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.gen != myGen {
		// A later SelectJob superseded this load; its result must not
		// overwrite the now-active job's list.
		return nil
	}
	if err != nil {
		return fmt.Errorf("load applications for job %s: %w", jobID, err)
	}
	w.apps = apps
	w.counts = counts
	return nil
}

// Applications returns a snapshot of the active job's application set.
func (w *Workspace) Applications() []types.Application {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]types.Application, len(w.apps))
	copy(out, w.apps)
	return out
}

// Counts returns the portal's status counts for the active job.
func (w *Workspace) Counts() types.StatusCounts {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.counts
}

// Derived returns the visible, ordered list for the given view parameters.
// The underlying application set is never reordered.
func (w *Workspace) Derived(search string, filter StatusFilter, key SortKey) []types.Application {
	return Derive(w.Applications(), search, filter, key)
}

// Select opens the application with the given ID in the detail panel. The
// selection is held by identity, so it survives filter, search, and sort
// changes, including ones that drop it from the visible list.
func (w *Workspace) Select(appID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.findLocked(appID); !ok {
		return fmt.Errorf("select application %q: %w", appID, ErrApplicationNotFound)
	}
	w.selectedID = appID
	return nil
}

// Selected returns the application open in the detail panel, if any. The
// returned value always reflects the current in-memory state, including
// optimistic status updates.
func (w *Workspace) Selected() (types.Application, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.selectedID == "" {
		return types.Application{}, false
	}
	idx, ok := w.findLocked(w.selectedID)
	if !ok {
		return types.Application{}, false
	}
	return w.apps[idx], true
}

// UpdateStatus applies a status change optimistically: the in-memory status
// (and with it the detail-panel mirror) is rewritten before the portal call
// is issued. If the portal rejects the change, the previous status is
// restored and the error returned; other applications are never affected.
func (w *Workspace) UpdateStatus(ctx context.Context, appID string, status types.Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	w.mu.Lock()
	idx, ok := w.findLocked(appID)
	if !ok {
		w.mu.Unlock()
		return fmt.Errorf("update application %q: %w", appID, ErrApplicationNotFound)
	}
	prev := w.apps[idx].Status
	w.apps[idx].Status = status
	myGen := w.gen
	w.mu.Unlock()

	if err := w.client.UpdateStatus(ctx, appID, status); err != nil {
		w.mu.Lock()
		// Roll back only if the application set this change was applied
		// to is still the live one.
		if w.gen == myGen {
			if idx, ok := w.findLocked(appID); ok {
				w.apps[idx].Status = prev
			}
		}
		w.mu.Unlock()
		return fmt.Errorf("update status for %s: %w", appID, err)
	}
	return nil
}

// Rescoring reports whether a bulk rescore is in flight for jobID.
func (w *Workspace) Rescoring(jobID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.busy[jobID]
}

// RescoreAll triggers a server-side bulk rescore for jobID (the active job
// when jobID is empty) and reloads the application set so the refreshed
// scores fully replace the old ones. Concurrent calls for the same job share
// a single flight. The selection is preserved by identity if the selected
// application is still present after the reload, and cleared otherwise. On
// any failure the existing application data is left untouched.
func (w *Workspace) RescoreAll(ctx context.Context, jobID string) (int, error) {
	w.mu.Lock()
	if jobID == "" {
		jobID = w.activeJobID
	}
	if jobID == "" {
		w.mu.Unlock()
		return 0, ErrNoActiveJob
	}
	startGen := w.gen
	w.mu.Unlock()

	result, err, _ := w.rescores.Do(jobID, func() (any, error) {
		w.setBusy(jobID, true)
		defer w.setBusy(jobID, false)

		count, err := w.client.RescoreAll(ctx, jobID)
		if err != nil {
			return 0, fmt.Errorf("rescore job %s: %w", jobID, err)
		}
		if err := w.refresh(ctx, jobID, startGen); err != nil {
			return 0, err
		}
		return count, nil
	})
	if err != nil {
		return 0, err
	}
	return result.(int), nil
}

// refresh reloads the application set after a successful rescore. The merge
// is all-or-nothing: a failed fetch leaves the current data untouched, and a
// fetch that resolves after the user switched jobs is discarded.
func (w *Workspace) refresh(ctx context.Context, jobID string, startGen uint64) error {
	apps, counts, err := w.client.ListApplications(ctx, jobID)
	if err != nil {
		return fmt.Errorf("reload applications for job %s: %w", jobID, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.gen != startGen || w.activeJobID != jobID {
		return nil
	}
	w.apps = apps
	w.counts = counts
	if w.selectedID != "" {
		if _, ok := w.findLocked(w.selectedID); !ok {
			w.selectedID = ""
		}
	}
	return nil
}

func (w *Workspace) setBusy(jobID string, v bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if v {
		w.busy[jobID] = true
	} else {
		delete(w.busy, jobID)
	}
}

// findLocked returns the index of the application with the given ID.
// Callers must hold mu.
func (w *Workspace) findLocked(appID string) (int, bool) {
	for i := range w.apps {
		if w.apps[i].ID == appID {
			return i, true
		}
	}
	return 0, false
}

// knownJobLocked reports whether jobID is in the loaded job list.
// Callers must hold mu.
func (w *Workspace) knownJobLocked(jobID string) bool {
	for _, job := range w.jobs {
		if job.ID == jobID {
			return true
		}
	}
	return false
}
