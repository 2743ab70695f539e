package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/monitoreo/internal/wire"
)

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the dashboard counters",
		Long: `Show remote-confirmed record totals plus the local pending queues.
Remote totals read zero while offline.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			counts, err := wire.QuantityService().Refresh(ctx)
			if err != nil {
				return err
			}

			if counts.Connected {
				fmt.Println(color.New(color.FgGreen).Sprint("● En línea"))
			} else {
				fmt.Println(color.New(color.FgYellow).Sprint("● Sin conexión"))
			}

			fmt.Printf("\nVisitas:  %d confirmadas, %d pendientes\n", counts.Remote.Visits, counts.PendingVisits)
			fmt.Printf("Fichas:   %d confirmadas, %d pendientes\n", counts.Remote.Monitors, counts.PendingMonitors)

			if sess, err := wire.SessionService().Current(ctx); err == nil && sess != nil {
				answered, total := sess.Answered()
				fmt.Printf("\nRegistro en curso: ficha tipo %s (%d/%d aspectos respondidos)\n",
					sess.Kind, answered, total)
			}
			return nil
		},
	}
}
