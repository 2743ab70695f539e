package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/monitoreo/internal/ports/primary"
	"github.com/example/monitoreo/internal/ports/secondary"
	"github.com/example/monitoreo/internal/wire"
)

// SyncCmd returns the sync command
func SyncCmd() *cobra.Command {
	var only string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Upload pending visits and fichas to the server",
		Long: `Drain the local queues against the server. Records that fail to
upload stay queued in their original order for the next run.

Examples:
  monitoreo sync
  monitoreo sync --only visits`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc := wire.SyncService()

			var results []*primary.PushResult
			var err error
			switch only {
			case "":
				results, err = svc.PushAll(ctx)
			case secondary.CategoryVisits, secondary.CategoryMonitors:
				var r *primary.PushResult
				r, err = svc.Push(ctx, only)
				results = []*primary.PushResult{r}
			default:
				return fmt.Errorf("categoría no válida: %s (use visits o monitors)", only)
			}
			if err != nil {
				return fmt.Errorf("la sincronización falló: %w", err)
			}

			for _, r := range results {
				printPushResult(r)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&only, "only", "", "Sync a single category: visits or monitors")
	return cmd
}

func printPushResult(r *primary.PushResult) {
	label := "visitas"
	if r.Category == secondary.CategoryMonitors {
		label = "fichas"
	}

	if r.Total == 0 {
		fmt.Printf("  %s: nada pendiente\n", label)
		return
	}

	line := fmt.Sprintf("  %s: %d/%d subidas", label, r.Uploaded, r.Total)
	if r.Failed > 0 {
		fmt.Printf("%s, %s\n", line, color.New(color.FgYellow).Sprintf("%d en cola", r.Failed))
		return
	}
	fmt.Printf("%s %s\n", line, color.New(color.FgGreen).Sprint("✓"))
}
