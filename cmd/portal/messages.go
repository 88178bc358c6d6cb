package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/innovaedu/portal/internal/cliclient"
	"github.com/innovaedu/portal/internal/models"
	"github.com/spf13/cobra"
)

var messagesCmd = &cobra.Command{
	Use:   "messages",
	Short: "Manage contact inquiries",
	Long:  `List contact messages and mark them read or replied.`,
}

var messagesStatusFilter string

var messagesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List contact messages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(client *cliclient.Client) error {
			messages, err := client.ListMessages(context.Background())
			if err != nil {
				return err
			}

			if messagesStatusFilter != "" {
				filtered := messages[:0]
				for _, m := range messages {
					if m.Status == messagesStatusFilter {
						filtered = append(filtered, m)
					}
				}
				messages = filtered
			}

			if len(messages) == 0 {
				fmt.Println("No messages found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tEMAIL\tMESSAGE\tSTATUS\tRECEIVED")
			for _, m := range messages {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					m.ID,
					m.Name,
					m.Email,
					truncate(m.Message, 40),
					m.Status,
					formatTimeAgo(m.CreatedAt),
				)
			}
			w.Flush()

			return nil
		})
	},
}

func init() {
	messagesListCmd.Flags().StringVar(&messagesStatusFilter, "status", "", "Only show messages with this status")

	messagesCmd.AddCommand(messagesListCmd)
	messagesCmd.AddCommand(messageStatusCmd(
		"read", "Mark an unread message as read", models.MessageRead))
	messagesCmd.AddCommand(messageStatusCmd(
		"replied", "Mark a read message as replied", models.MessageReplied))
}

// messageStatusCmd builds a subcommand that moves a message to status.
func messageStatusCmd(use, short, status string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(client *cliclient.Client) error {
				message, err := client.UpdateMessageStatus(context.Background(), args[0], status)
				if err != nil {
					if cliclient.IsConflict(err) {
						return fmt.Errorf("message cannot move to %s from its current status", status)
					}
					if cliclient.IsNotFound(err) {
						return fmt.Errorf("message %s not found", args[0])
					}
					return err
				}

				fmt.Printf("Message from %s is now %s\n", message.Name, message.Status)
				return nil
			})
		},
	}
}
