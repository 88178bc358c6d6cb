package main

import (
	"fmt"
	"os"

	"github.com/innovaedu/portal/internal/server"
	"github.com/spf13/cobra"
)

var servePort int

// @title Innova Education Portal API
// @version 1.0
// @description Marketing site and back-office API for the Innova Education consultancy
// @host localhost:8470
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the portal API server",
	Long: `Start the portal API server.

Examples:
  portal serve                  # Run with config defaults
  portal serve --port 8080      # Override port

Environment variables:
  PORTAL_SERVER_PORT           Server port (default: 8470)
  PORTAL_DATABASE_DRIVER       Database driver: sqlite, postgres
  PORTAL_DATABASE_DSN          Database connection string
  PORTAL_AUTH_TYPE             Auth provider: local, supabase
  PORTAL_AUTH_JWT_SECRET       JWT signing secret
  PORTAL_AUTH_ADMIN_EMAIL      Bootstrap admin email
  PORTAL_AUTH_ADMIN_PASSWORD   Bootstrap admin password`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to run server on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) {
	cfg := server.Config{
		Port:    servePort,
		Version: Version,
	}

	if err := server.RunWithSignalHandling(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
