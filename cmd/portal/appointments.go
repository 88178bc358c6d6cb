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

var appointmentsCmd = &cobra.Command{
	Use:   "appointments",
	Short: "Manage consultation appointments",
	Long:  `List appointments and move them through their workflow.`,
}

var appointmentsStatusFilter string

var appointmentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List appointments",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(client *cliclient.Client) error {
			appointments, err := client.ListAppointments(context.Background())
			if err != nil {
				return err
			}

			if appointmentsStatusFilter != "" {
				filtered := appointments[:0]
				for _, a := range appointments {
					if a.Status == appointmentsStatusFilter {
						filtered = append(filtered, a)
					}
				}
				appointments = filtered
			}

			if len(appointments) == 0 {
				fmt.Println("No appointments found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tDATE\tTIME\tSTATUS\tBOOKED")
			for _, a := range appointments {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					a.ID,
					a.Name,
					a.PreferredDate,
					a.TimeSlot,
					a.Status,
					formatTimeAgo(a.CreatedAt),
				)
			}
			w.Flush()

			return nil
		})
	},
}

func init() {
	appointmentsListCmd.Flags().StringVar(&appointmentsStatusFilter, "status", "", "Only show appointments with this status")

	appointmentsCmd.AddCommand(appointmentsListCmd)
	appointmentsCmd.AddCommand(appointmentStatusCmd(
		"confirm", "Confirm a pending appointment", models.AppointmentConfirmed))
	appointmentsCmd.AddCommand(appointmentStatusCmd(
		"complete", "Mark a confirmed appointment as completed", models.AppointmentCompleted))
	appointmentsCmd.AddCommand(appointmentStatusCmd(
		"cancel", "Cancel an appointment", models.AppointmentCancelled))
}

// appointmentStatusCmd builds a subcommand that moves an appointment to status.
func appointmentStatusCmd(use, short, status string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(client *cliclient.Client) error {
				appointment, err := client.UpdateAppointmentStatus(context.Background(), args[0], status)
				if err != nil {
					if cliclient.IsConflict(err) {
						return fmt.Errorf("appointment cannot move to %s from its current status", status)
					}
					if cliclient.IsNotFound(err) {
						return fmt.Errorf("appointment %s not found", args[0])
					}
					return err
				}

				fmt.Printf("Appointment for %s on %s is now %s\n",
					appointment.Name, appointment.PreferredDate, appointment.Status)
				return nil
			})
		},
	}
}
