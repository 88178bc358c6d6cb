package main

import (
	"fmt"
	"time"

	"github.com/innovaedu/portal/internal/cliclient"
	"github.com/innovaedu/portal/internal/store"
)

// authenticatedClient loads the saved server URL and credentials and returns
// an API client for them.
func authenticatedClient(s *store.Store) (*cliclient.Client, error) {
	serverURL, err := s.LoadServerURL()
	if err != nil {
		return nil, fmt.Errorf("loading server URL: %w", err)
	}
	if serverURL == "" {
		return nil, fmt.Errorf("no server configured; run 'portal login <server-url>' first")
	}

	creds, err := s.LoadCredentials()
	if err != nil {
		return nil, fmt.Errorf("loading credentials: %w", err)
	}
	if creds.Token == "" {
		return nil, fmt.Errorf("not logged in to %s; run 'portal login %s' first", serverURL, serverURL)
	}

	return cliclient.New(serverURL, creds.Token), nil
}

// withClient opens the store, builds an authenticated client, and runs fn.
func withClient(fn func(*cliclient.Client) error) error {
	s, err := store.New()
	if err != nil {
		return err
	}
	defer s.Close()

	client, err := authenticatedClient(s)
	if err != nil {
		return err
	}

	return fn(client)
}

// formatTimeAgo formats a time as a human-readable "X ago" string.
func formatTimeAgo(t time.Time) string {
	d := time.Since(t)

	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		mins := int(d.Minutes())
		if mins == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", mins)
	case d < 24*time.Hour:
		hours := int(d.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	case d < 30*24*time.Hour:
		days := int(d.Hours() / 24)
		if days == 1 {
			return "1 day ago"
		}
		return fmt.Sprintf("%d days ago", days)
	default:
		months := int(d.Hours() / 24 / 30)
		if months == 1 {
			return "1 month ago"
		}
		return fmt.Sprintf("%d months ago", months)
	}
}

// truncate shortens s to max runes, appending an ellipsis when cut.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
