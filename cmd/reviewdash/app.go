package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/candidate-review/internal/api"
	"github.com/jonathan/candidate-review/internal/config"
	"github.com/jonathan/candidate-review/internal/review"
	"github.com/jonathan/candidate-review/internal/session"
)

// app bundles the pieces every command needs: resolved config, the portal
// client (with the persisted session token attached, if any), and the
// session store.
type app struct {
	cfg     config.Config
	client  *api.Client
	store   *session.Store
	session *session.Session
}

// buildApp resolves configuration (flags over environment over config file),
// reads the persisted session, and constructs the portal client.
func buildApp() (*app, error) {
	fileCfg := config.Config{}
	if flagConfigPath != "" {
		loaded, err := config.LoadConfig(flagConfigPath)
		if err != nil {
			return nil, err
		}
		fileCfg = *loaded
	}

	envCfg := config.FromEnv()
	flagCfg := config.Config{
		BaseURL:        flagBaseURL,
		TimeoutSeconds: flagTimeout,
		Verbose:        flagVerbose,
	}
	layered := envCfg.MergeWithDefaults(fileCfg)
	cfg := flagCfg.MergeWithDefaults(layered)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sessionPath := cfg.SessionPath
	if sessionPath == "" {
		var err error
		sessionPath, err = session.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	store := session.NewStore(sessionPath)
	sess, err := store.Load()
	if err != nil {
		return nil, err
	}

	client := api.NewClient(&api.Options{
		BaseURL: cfg.BaseURL,
		Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		Verbose: cfg.Verbose,
	})
	if sess != nil {
		client.SetToken(sess.Token)
	}

	return &app{cfg: cfg, client: client, store: store, session: sess}, nil
}

// requireSession fails fast when a command needs an authenticated session,
// checking the token against the portal so a server-side expiry is reported
// before any mutation is attempted.
func (a *app) requireSession(ctx context.Context) error {
	if a.session == nil {
		return fmt.Errorf("not logged in; run `reviewdash login` first")
	}
	valid, err := a.client.Verify(ctx)
	if err != nil {
		return err
	}
	if !valid {
		_ = a.store.Clear()
		return fmt.Errorf("session expired; run `reviewdash login` again")
	}
	return nil
}

// openJob loads the job list into a fresh workspace and selects jobID, or
// the first job when jobID is empty.
func (a *app) openJob(ctx context.Context, jobID string) (*review.Workspace, error) {
	w := review.NewWorkspace(a.client)
	if err := w.LoadJobs(ctx); err != nil {
		return nil, err
	}

	jobs := w.Jobs()
	if len(jobs) == 0 {
		return nil, fmt.Errorf("no jobs posted yet; nothing to review")
	}
	if jobID == "" {
		jobID = jobs[0].ID
	}
	if err := w.SelectJob(ctx, jobID); err != nil {
		return nil, err
	}
	return w, nil
}
