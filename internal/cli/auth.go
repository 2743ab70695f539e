package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/monitoreo/internal/wire"
)

// LoginCmd returns the login command
func LoginCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the backend",
		Long: `Authenticate and cache the profile locally so the rest of the CLI
works offline. Requires connectivity.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var err error
			if username == "" {
				if username, err = promptLine("Usuario: "); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = promptLine("Contraseña: "); err != nil {
					return err
				}
			}

			resp, err := wire.AuthService().Login(ctx, username, password)
			if err != nil {
				return fmt.Errorf("no se pudo iniciar sesión: %w", err)
			}

			fmt.Printf("✓ Sesión iniciada como %s (%s)\n", resp.User.Fullname, resp.User.Username)
			if resp.Quantity != nil {
				fmt.Printf("  Visitas: %d  Fichas: %d\n", resp.Quantity.Visits, resp.Quantity.Monitors)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (prompted when omitted)")
	return cmd
}

// LogoutCmd returns the logout command
func LogoutCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Close the cached session",
		Long:  "Remove the cached profile. Pending records stay queued for the next login.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force && !confirmPrompt("¿Está seguro de cerrar sesión?") {
				fmt.Println("Cancelado.")
				return nil
			}
			if err := wire.AuthService().Logout(context.Background()); err != nil {
				return fmt.Errorf("no se pudo cerrar sesión: %w", err)
			}
			fmt.Println("✓ Sesión cerrada")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")
	return cmd
}

// ProfileCmd returns the profile command
func ProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the current user and pending uploads",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			user, err := wire.AuthService().CurrentUser(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", color.New(color.Bold).Sprint(user.Fullname))
			fmt.Printf("  Usuario: %s\n", user.Username)
			if user.DNI != "" {
				fmt.Printf("  DNI: %s\n", user.DNI)
			}
			if user.Job != "" {
				fmt.Printf("  Cargo: %s\n", user.Job)
			}
			if user.EmailPersonal != "" {
				fmt.Printf("  Correo: %s\n", user.EmailPersonal)
			}
			if user.Celular != "" {
				fmt.Printf("  Celular: %s\n", user.Celular)
			}

			counts, err := wire.QuantityService().Refresh(ctx)
			if err != nil {
				return err
			}
			pending := counts.PendingVisits + counts.PendingMonitors
			if pending > 0 {
				marker := color.New(color.FgYellow).Sprintf("%d pendiente(s) de subir", pending)
				fmt.Printf("\n  %s (visitas: %d, fichas: %d)\n", marker, counts.PendingVisits, counts.PendingMonitors)
				fmt.Println("  Ejecute 'monitoreo sync' para subirlos.")
			} else {
				fmt.Printf("\n  %s\n", color.New(color.FgGreen).Sprint("Sin registros pendientes"))
			}
			return nil
		},
	}
}

func promptLine(label string) (string, error) {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
