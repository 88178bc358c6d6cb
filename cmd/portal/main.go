package main

import (
	"os"

	"github.com/spf13/cobra"

	_ "github.com/innovaedu/portal/docs" // Load swagger docs
)

// Version is set via ldflags at build time
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "portal",
	Short: "Portal - Back-office tooling for the Innova Education website",
	Long:  `Portal runs the Innova Education API server and gives operators a terminal view of appointments, inquiries, and admin roles.`,
	Example: `  # Run the API server
  portal serve

  # Log in and review pending appointments
  portal login https://portal.innovaedu.com
  portal appointments list --status pending
  portal appointments confirm <id>`,
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: "session", Title: "Session Commands:"},
		&cobra.Group{ID: "admin", Title: "Admin Commands:"},
		&cobra.Group{ID: "server", Title: "Server Commands:"},
	)

	loginCmd.GroupID = "session"
	logoutCmd.GroupID = "session"
	whoamiCmd.GroupID = "session"

	appointmentsCmd.GroupID = "admin"
	messagesCmd.GroupID = "admin"
	usersCmd.GroupID = "admin"

	serveCmd.GroupID = "server"

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(appointmentsCmd)
	rootCmd.AddCommand(messagesCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
