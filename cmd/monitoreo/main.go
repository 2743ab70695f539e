package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/monitoreo/internal/cli"
	"github.com/example/monitoreo/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "monitoreo",
		Short:   "Monitoreo - field data collection for educational supervision",
		Version: version.String(),
		Long: `Monitoreo is the field tool for UGEL supervisors: record school visits
and rubric observations offline, then synchronize them with the central
backend when connectivity returns.`,
	}

	// Session and dashboard
	rootCmd.AddCommand(cli.LoginCmd())
	rootCmd.AddCommand(cli.LogoutCmd())
	rootCmd.AddCommand(cli.ProfileCmd())
	rootCmd.AddCommand(cli.StatusCmd())

	// Field records
	rootCmd.AddCommand(cli.VisitCmd())
	rootCmd.AddCommand(cli.MonitorCmd())
	rootCmd.AddCommand(cli.SyncCmd())

	// Directory
	rootCmd.AddCommand(cli.SchoolsCmd())
	rootCmd.AddCommand(cli.TeachersCmd())
	rootCmd.AddCommand(cli.DirectorsCmd())
	rootCmd.AddCommand(cli.UsersCmd())

	// Reporting
	rootCmd.AddCommand(cli.ReportCmd())
	rootCmd.AddCommand(cli.ExportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
