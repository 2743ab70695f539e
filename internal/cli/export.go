package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/monitoreo/internal/db"
	"github.com/example/monitoreo/internal/wire"
)

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download your records as a ZIP archive",
		Long: `Download the backend's export of all your visits and fichas as a ZIP
file. Requires connectivity.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				dir = wire.Cfg().ExportDir
			}
			if dir == "" {
				dataDir, err := db.DataDir()
				if err != nil {
					return err
				}
				dir = filepath.Join(dataDir, "exports")
			}

			path, err := wire.ExportService().Export(context.Background(), dir)
			if err != nil {
				return fmt.Errorf("no se pudo exportar: %w", err)
			}
			fmt.Printf("✓ Exportado a %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Destination directory (default: configured export dir)")
	return cmd
}
