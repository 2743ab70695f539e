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

// UsersCmd returns the users command
func UsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Administer supervisor accounts (admin)",
	}

	cmd.AddCommand(usersListCmd())
	cmd.AddCommand(usersAddCmd())
	cmd.AddCommand(usersUpdateCmd())
	return cmd
}

func usersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered supervisors",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := wire.UserService().List(context.Background())
			if err != nil {
				return fmt.Errorf("no se pudieron cargar los usuarios: %w", err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "USUARIO\tNOMBRE\tDNI\tCARGO")
			fmt.Fprintln(w, "-------\t------\t---\t-----")
			for _, u := range users {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.Username, u.Fullname, u.DNI, u.Job)
			}
			w.Flush()
			return nil
		},
	}
}

func usersAddCmd() *cobra.Command {
	var fullname, dni, password, job, email string

	cmd := &cobra.Command{
		Use:   "add [username]",
		Short: "Register a new supervisor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u := models.User{
				Username:      args[0],
				Fullname:      fullname,
				DNI:           dni,
				Job:           job,
				EmailPersonal: email,
			}
			if err := wire.UserService().Add(context.Background(), &u, password); err != nil {
				return fmt.Errorf("no se pudo registrar al usuario: %w", err)
			}
			fmt.Printf("✓ Usuario registrado: %s\n", u.Username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&fullname, "name", "n", "", "Full name")
	cmd.Flags().StringVarP(&dni, "dni", "d", "", "National id (DNI)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Initial password")
	cmd.Flags().StringVar(&job, "job", "Especialista", "Job title")
	cmd.Flags().StringVar(&email, "email", "", "Personal email")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("dni")
	cmd.MarkFlagRequired("password")
	return cmd
}

func usersUpdateCmd() *cobra.Command {
	var fullname, job, email, phone string

	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update an existing supervisor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u := models.User{
				Fullname:      fullname,
				Job:           job,
				EmailPersonal: email,
				Celular:       phone,
			}
			if err := wire.UserService().Update(context.Background(), args[0], &u); err != nil {
				return fmt.Errorf("no se pudo actualizar al usuario: %w", err)
			}
			fmt.Println("✓ Usuario actualizado")
			return nil
		},
	}

	cmd.Flags().StringVarP(&fullname, "name", "n", "", "Full name")
	cmd.Flags().StringVar(&job, "job", "", "Job title")
	cmd.Flags().StringVar(&email, "email", "", "Personal email")
	cmd.Flags().StringVar(&phone, "phone", "", "Mobile phone")
	return cmd
}
