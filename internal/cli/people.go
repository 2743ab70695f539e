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

// TeachersCmd returns the teachers command
func TeachersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teachers",
		Short: "Browse and register teachers",
	}

	cmd.AddCommand(teachersListCmd())
	cmd.AddCommand(teachersAddCmd())
	return cmd
}

func teachersListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [school-code]",
		Short: "List the teachers of a school",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			teachers, err := wire.PeopleService().ListTeachers(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("no se pudieron cargar los docentes: %w", err)
			}
			if len(teachers) == 0 {
				fmt.Println("El colegio no tiene docentes registrados.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "DNI\tNOMBRE\tÁREA")
			fmt.Fprintln(w, "---\t------\t----")
			for _, t := range teachers {
				fmt.Fprintf(w, "%s\t%s\t%s\n", t.DNI, t.Fullname, t.Area)
			}
			w.Flush()
			return nil
		},
	}
	return cmd
}

func teachersAddCmd() *cobra.Command {
	var fullname, area string

	cmd := &cobra.Command{
		Use:   "add [school-code] [dni]",
		Short: "Register a teacher in a school",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := models.Teacher{
				SchoolCode: args[0],
				DNI:        args[1],
				Fullname:   fullname,
				Area:       area,
			}
			if err := wire.PeopleService().AddTeacher(context.Background(), &t); err != nil {
				return fmt.Errorf("no se pudo registrar al docente: %w", err)
			}
			fmt.Printf("✓ Docente registrado: %s\n", t.Fullname)
			return nil
		},
	}

	cmd.Flags().StringVarP(&fullname, "name", "n", "", "Teacher's full name")
	cmd.Flags().StringVar(&area, "area", "", "Curricular area")
	cmd.MarkFlagRequired("name")
	return cmd
}

// DirectorsCmd returns the directors command
func DirectorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "directors",
		Short: "Browse and register school directors",
	}

	cmd.AddCommand(directorsListCmd())
	cmd.AddCommand(directorsAddCmd())
	return cmd
}

func directorsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [school-code]",
		Short: "List the directors of a school",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			directors, err := wire.PeopleService().ListDirectors(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("no se pudieron cargar los directivos: %w", err)
			}
			if len(directors) == 0 {
				fmt.Println("El colegio no tiene directivos registrados.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "DNI\tNOMBRE\tCARGO")
			fmt.Fprintln(w, "---\t------\t-----")
			for _, d := range directors {
				fmt.Fprintf(w, "%s\t%s\t%s\n", d.DNI, d.Fullname, d.Position)
			}
			w.Flush()
			return nil
		},
	}
	return cmd
}

func directorsAddCmd() *cobra.Command {
	var fullname, position string

	cmd := &cobra.Command{
		Use:   "add [school-code] [dni]",
		Short: "Register a director in a school",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := models.Director{
				SchoolCode: args[0],
				DNI:        args[1],
				Fullname:   fullname,
				Position:   position,
			}
			if err := wire.PeopleService().AddDirector(context.Background(), &d); err != nil {
				return fmt.Errorf("no se pudo registrar al directivo: %w", err)
			}
			fmt.Printf("✓ Directivo registrado: %s\n", d.Fullname)
			return nil
		},
	}

	cmd.Flags().StringVarP(&fullname, "name", "n", "", "Director's full name")
	cmd.Flags().StringVar(&position, "position", "Director", "Position held")
	cmd.MarkFlagRequired("name")
	return cmd
}
