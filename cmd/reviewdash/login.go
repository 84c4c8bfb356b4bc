package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-review/internal/session"
)

var loginCommand = &cobra.Command{
	Use:   "login",
	Short: "Log in to the portal and persist the session",
	RunE:  runLogin,
}

var logoutCommand = &cobra.Command{
	Use:   "logout",
	Short: "Invalidate the portal session and clear it locally",
	RunE:  runLogout,
}

var (
	loginEmail    string
	loginPassword string
)

// sessionLifetime mirrors the 24h lifetime the portal gives issued tokens.
const sessionLifetime = 24 * time.Hour

func init() {
	loginCommand.Flags().StringVar(&loginEmail, "email", "", "HR account email")
	loginCommand.Flags().StringVar(&loginPassword, "password", "", "HR account password (or set REVIEWDASH_PASSWORD)")
	_ = loginCommand.MarkFlagRequired("email")
}

func runLogin(cmd *cobra.Command, args []string) error {
	password := loginPassword
	if password == "" {
		password = os.Getenv("REVIEWDASH_PASSWORD")
	}
	if password == "" {
		return fmt.Errorf("no password given; use --password or REVIEWDASH_PASSWORD")
	}

	a, err := buildApp()
	if err != nil {
		return err
	}

	creds, err := a.client.Login(cmd.Context(), loginEmail, password)
	if err != nil {
		return err
	}

	sess := &session.Session{
		Token:     creds.Token,
		UserID:    creds.UserID,
		Email:     creds.Email,
		Name:      creds.Name,
		Role:      creds.Role,
		ExpiresAt: time.Now().Add(sessionLifetime),
	}
	if err := a.store.Save(sess); err != nil {
		return err
	}

	fmt.Printf("Logged in as %s (%s)\n", creds.Name, creds.Email)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}

	if a.session != nil {
		// Best effort: the local session is cleared even if the portal is
		// unreachable.
		if err := a.client.Logout(cmd.Context()); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: portal logout failed: %v\n", err)
		}
	}
	if err := a.store.Clear(); err != nil {
		return err
	}

	fmt.Println("Logged out")
	return nil
}
