package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/monitoreo/internal/models"
	"github.com/example/monitoreo/internal/wire"
)

// ReportCmd returns the report command
func ReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Aggregate rubric statistics for your records",
		Long: `Query the backend for the answer distribution per rubric code over
your own observations, filtered by date range, district, school or
teacher. Requires connectivity.`,
	}

	cmd.AddCommand(reportTeachersCmd())
	cmd.AddCommand(reportDirectorsCmd())
	return cmd
}

func reportTeachersCmd() *cobra.Command {
	var from, to, district, school, teacher string

	cmd := &cobra.Command{
		Use:   "teachers",
		Short: "Level distribution (I-IV) per classroom rubric code",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := buildReportFilter(from, to, district, school, teacher, models.MonitorTypeTeacher)
			if err != nil {
				return err
			}
			rows, err := wire.ReportService().Teacher(context.Background(), filter)
			if err != nil {
				return fmt.Errorf("no se pudo generar el reporte: %w", err)
			}
			if len(rows) == 0 {
				fmt.Println("No hay registros en el rango seleccionado.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ASPECTO\tI\tII\tIII\tIV")
			fmt.Fprintln(w, "-------\t-\t--\t---\t--")
			for _, r := range rows {
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n",
					r.Code, r.Levels["1"], r.Levels["2"], r.Levels["3"], r.Levels["4"])
			}
			w.Flush()
			fmt.Println("\nNiveles: I en inicio, II en proceso, III satisfactorio, IV destacado")
			return nil
		},
	}

	addReportFlags(cmd, &from, &to, &district, &school)
	cmd.Flags().StringVarP(&teacher, "teacher", "t", "", "Filter by teacher name or DNI")
	return cmd
}

func reportDirectorsCmd() *cobra.Command {
	var from, to, district, school string

	cmd := &cobra.Command{
		Use:   "directors",
		Short: "Sí/no distribution per management rubric code",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := buildReportFilter(from, to, district, school, "", models.MonitorTypeDirector)
			if err != nil {
				return err
			}
			rows, err := wire.ReportService().Director(context.Background(), filter)
			if err != nil {
				return fmt.Errorf("no se pudo generar el reporte: %w", err)
			}
			if len(rows) == 0 {
				fmt.Println("No hay registros en el rango seleccionado.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ASPECTO\tSÍ\tNO")
			fmt.Fprintln(w, "-------\t--\t--")
			for _, r := range rows {
				fmt.Fprintf(w, "%s\t%d\t%d\n", r.Code, r.Levels["true"], r.Levels["false"])
			}
			w.Flush()
			return nil
		},
	}

	addReportFlags(cmd, &from, &to, &district, &school)
	return cmd
}

func addReportFlags(cmd *cobra.Command, from, to, district, school *string) {
	cmd.Flags().StringVar(from, "from", "", "Range start, YYYY-MM-DD (default: 30 days ago)")
	cmd.Flags().StringVar(to, "to", "", "Range end, YYYY-MM-DD (default: today)")
	cmd.Flags().StringVarP(district, "district", "d", "", "Filter by district")
	cmd.Flags().StringVar(school, "school", "", "Filter by school name or code")
}

func buildReportFilter(from, to, district, school, teacher, monitorType string) (models.ReportFilter, error) {
	f := models.ReportFilter{
		District: district,
		School:   school,
		Teacher:  teacher,
		Type:     monitorType,
	}

	now := time.Now()
	f.StartDate = now.AddDate(0, 0, -30)
	f.EndDate = now

	var err error
	if from != "" {
		if f.StartDate, err = time.Parse("2006-01-02", from); err != nil {
			return f, fmt.Errorf("fecha inicial no válida: %s (use YYYY-MM-DD)", from)
		}
	}
	if to != "" {
		if f.EndDate, err = time.Parse("2006-01-02", to); err != nil {
			return f, fmt.Errorf("fecha final no válida: %s (use YYYY-MM-DD)", to)
		}
		// Include the whole end day.
		f.EndDate = f.EndDate.Add(24*time.Hour - time.Second)
	}
	if f.EndDate.Before(f.StartDate) {
		return f, fmt.Errorf("el rango de fechas está invertido")
	}
	return f, nil
}
