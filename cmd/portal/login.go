package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/innovaedu/portal/internal/cliclient"
	"github.com/innovaedu/portal/internal/store"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginCmd = &cobra.Command{
	Use:   "login <server-url>",
	Short: "Connect to a portal server",
	Long: `Sets the server URL and authenticates with a portal server.

Examples:
  portal login https://portal.innovaedu.com
  portal login http://localhost:8470`,
	Args: cobra.ExactArgs(1),
	RunE: runLogin,
}

func runLogin(cmd *cobra.Command, args []string) error {
	serverURL := strings.TrimRight(args[0], "/")

	if !strings.HasPrefix(serverURL, "http://") && !strings.HasPrefix(serverURL, "https://") {
		return fmt.Errorf("server URL must start with http:// or https://")
	}

	fmt.Print("Email: ")
	var email string
	if _, err := fmt.Scanln(&email); err != nil {
		return fmt.Errorf("reading email: %w", err)
	}

	fmt.Print("Password: ")
	passBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("reading password: %w", err)
	}

	client := cliclient.NewWithoutAuth(serverURL)
	resp, err := client.Login(context.Background(), email, string(passBytes))
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	s, err := store.New()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.SaveServerURL(serverURL); err != nil {
		return err
	}

	if err := s.SaveCredentials(&store.Credentials{Token: resp.Token, Email: email}); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Logged in to %s as %s\n", serverURL, email)
	return nil
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out of the portal server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.New()
		if err != nil {
			return err
		}
		defer s.Close()

		client, err := authenticatedClient(s)
		if err == nil {
			// Best effort; clearing local credentials is what matters.
			_ = client.Logout(context.Background())
		}

		if err := s.ClearCredentials(); err != nil {
			return err
		}

		fmt.Fprintln(os.Stderr, "Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.New()
		if err != nil {
			return err
		}
		defer s.Close()

		client, err := authenticatedClient(s)
		if err != nil {
			return err
		}

		me, err := client.Me(context.Background())
		if err != nil {
			return fmt.Errorf("fetching session: %w", err)
		}

		serverURL, _ := s.LoadServerURL()
		fmt.Printf("Server:  %s\n", serverURL)
		fmt.Printf("Email:   %s\n", me.Email)
		if me.FirstName != "" || me.LastName != "" {
			fmt.Printf("Name:    %s\n", strings.TrimSpace(me.FirstName+" "+me.LastName))
		}
		roles := "none"
		if len(me.Roles) > 0 {
			roles = strings.Join(me.Roles, ", ")
		}
		fmt.Printf("Roles:   %s\n", roles)
		return nil
	},
}
