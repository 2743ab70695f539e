package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/monitoreo/internal/models"
	"github.com/example/monitoreo/internal/wire"
)

// SchoolsCmd returns the schools command
func SchoolsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schools",
		Short: "Browse and maintain the school directory",
		Long: `The school directory is cached locally so visits and observations can
be started offline. Run 'schools sync' while connected to refresh it.`,
	}

	cmd.AddCommand(schoolsSyncCmd())
	cmd.AddCommand(schoolsListCmd())
	cmd.AddCommand(schoolsAddCmd())

	return cmd
}

func schoolsSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Refresh the local school directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := wire.SchoolService().Sync(context.Background())
			if err != nil {
				return fmt.Errorf("no se pudo sincronizar el directorio: %w", err)
			}
			fmt.Printf("✓ Directorio actualizado: %d colegios\n", count)
			return nil
		},
	}
}

func schoolsListCmd() *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List schools from the cached directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			schools, err := wire.SchoolService().List(context.Background(), query)
			if err != nil {
				return fmt.Errorf("no se pudo cargar el directorio: %w", err)
			}
			if len(schools) == 0 {
				fmt.Println("No se encontraron colegios.")
				return nil
			}
			printSchools(schools)
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Filter by name, code, district or place")
	return cmd
}

func schoolsAddCmd() *cobra.Command {
	var name, district, place string

	cmd := &cobra.Command{
		Use:   "add [code]",
		Short: "Register a new school (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			school := models.School{
				Code:     args[0],
				Name:     name,
				District: district,
				Place:    place,
			}
			if err := wire.SchoolService().Add(context.Background(), &school); err != nil {
				return fmt.Errorf("no se pudo registrar el colegio: %w", err)
			}
			fmt.Printf("✓ Colegio registrado: %s (%s)\n", school.Name, school.Code)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "School name")
	cmd.Flags().StringVarP(&district, "district", "d", "", "District")
	cmd.Flags().StringVar(&place, "place", "", "Place or locality")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("district")
	return cmd
}

func printSchools(schools []models.School) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CÓDIGO\tNOMBRE\tDISTRITO\tLUGAR")
	fmt.Fprintln(w, "------\t------\t--------\t-----")
	for _, s := range schools {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.Code, s.Name, s.District, s.Place)
	}
	w.Flush()
}
