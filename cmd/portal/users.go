package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/innovaedu/portal/internal/cliclient"
	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage back-office users and roles",
	Long:  `List users and grant or revoke admin roles.`,
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users with their roles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(client *cliclient.Client) error {
			users, err := client.ListUsers(context.Background())
			if err != nil {
				return err
			}

			if len(users) == 0 {
				fmt.Println("No users found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tEMAIL\tNAME\tROLES\tCREATED")
			for _, u := range users {
				name := strings.TrimSpace(u.FirstName + " " + u.LastName)
				roles := "-"
				if len(u.Roles) > 0 {
					roles = strings.Join(u.Roles, ", ")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					u.ID,
					u.Email,
					name,
					roles,
					formatTimeAgo(u.CreatedAt),
				)
			}
			w.Flush()

			return nil
		})
	},
}

var usersGrantCmd = &cobra.Command{
	Use:   "grant <user-id> <role>",
	Short: "Grant a role to a user",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(client *cliclient.Client) error {
			if err := client.AssignRole(context.Background(), args[0], args[1]); err != nil {
				if cliclient.IsConflict(err) {
					return fmt.Errorf("user already has role %s", args[1])
				}
				return err
			}
			fmt.Printf("Granted %s to %s\n", args[1], args[0])
			return nil
		})
	},
}

var usersRevokeCmd = &cobra.Command{
	Use:   "revoke <user-id> <role>",
	Short: "Revoke a role from a user",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(client *cliclient.Client) error {
			if err := client.RemoveRole(context.Background(), args[0], args[1]); err != nil {
				if cliclient.IsNotFound(err) {
					return fmt.Errorf("user does not have role %s", args[1])
				}
				return err
			}
			fmt.Printf("Revoked %s from %s\n", args[1], args[0])
			return nil
		})
	},
}

func init() {
	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersGrantCmd)
	usersCmd.AddCommand(usersRevokeCmd)
}
