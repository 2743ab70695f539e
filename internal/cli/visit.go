package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/monitoreo/internal/wire"
)

// VisitCmd returns the visit command
func VisitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "visit",
		Short: "Record and manage school visits",
		Long:  "Record a visit to a school, list the visit registry, and delete records.",
	}

	cmd.AddCommand(visitAddCmd())
	cmd.AddCommand(visitListCmd())
	cmd.AddCommand(visitDeleteCmd())

	return cmd
}

func visitAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [school-code]",
		Short: "Record a visit to a school",
		Long: `Record a visit to the school with the given code. The visit is queued
locally and uploaded immediately when the device is online; it also
becomes the linked visit for the next director observation.

Examples:
  monitoreo visit add 0593202`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := wire.VisitService().Record(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("no se pudo guardar la visita: %w", err)
			}

			fmt.Printf("✓ Visita registrada: %s (%s)\n", resp.Visit.School.Name, resp.Visit.School.Code)
			if resp.Flushed {
				fmt.Println("  Subida al servidor inmediatamente.")
			} else {
				fmt.Println("  Guardada localmente, pendiente de sincronización.")
			}
			return nil
		},
	}
}

func visitListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List synced and pending visits",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := wire.VisitService().List(context.Background())
			if err != nil {
				return fmt.Errorf("no se pudieron cargar las visitas: %w", err)
			}

			if len(list.Remote) == 0 && len(list.Pending) == 0 {
				if list.Connected {
					fmt.Println("No tiene ningún registro.")
				} else {
					fmt.Println("Sin conexión y sin registros locales.")
				}
				return nil
			}

			pendingMark := color.New(color.FgYellow).Sprint("pendiente")
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "FECHA\tCOLEGIO\tDISTRITO\tESTADO\tID")
			fmt.Fprintln(w, "-----\t-------\t--------\t------\t--")
			for _, v := range list.Remote {
				fmt.Fprintf(w, "%s\t%s\t%s\tsubida\t%s\n",
					v.CreatedAt.Format("02/01/2006"), v.School.Name, v.School.District, v.ID)
			}
			for _, v := range list.Pending {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					v.CreatedAt.Format("02/01/2006"), v.School.Name, v.School.District, pendingMark, v.ClientID)
			}
			w.Flush()
			return nil
		},
	}
}

func visitDeleteCmd() *cobra.Command {
	var local, force bool

	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a visit (admin)",
		Long: `Delete a visit record. Use --local with a pending visit's client id,
or the server id for a synced visit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force && !confirmPrompt("¿Está seguro de eliminar la visita?") {
				fmt.Println("Cancelado.")
				return nil
			}

			ctx := context.Background()
			var err error
			if local {
				err = wire.VisitService().DeleteLocal(ctx, args[0])
			} else {
				err = wire.VisitService().DeleteRemote(ctx, args[0])
			}
			if err != nil {
				return fmt.Errorf("no se pudo eliminar la visita: %w", err)
			}
			fmt.Println("✓ Visita eliminada")
			return nil
		},
	}

	cmd.Flags().BoolVar(&local, "local", false, "Delete a pending (not yet synced) visit")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")
	return cmd
}
