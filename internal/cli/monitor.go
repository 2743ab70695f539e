package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/monitoreo/internal/core/rubric"
	"github.com/example/monitoreo/internal/core/session"
	"github.com/example/monitoreo/internal/models"
	"github.com/example/monitoreo/internal/ports/primary"
	"github.com/example/monitoreo/internal/wire"
)

// MonitorCmd returns the monitor command
func MonitorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Record and manage rubric observations (fichas)",
		Long: `Drive an observation session step by step: start it for a teacher or
a director, answer rubric aspects, then save or cancel. Saved fichas
queue locally until 'monitoreo sync'.`,
	}

	cmd.AddCommand(monitorStartCmd())
	cmd.AddCommand(monitorStartDirectivoCmd())
	cmd.AddCommand(monitorShowCmd())
	cmd.AddCommand(monitorAnswerCmd())
	cmd.AddCommand(monitorSaveCmd())
	cmd.AddCommand(monitorCancelCmd())
	cmd.AddCommand(monitorListCmd())
	cmd.AddCommand(monitorEditCmd())
	cmd.AddCommand(monitorDeleteCmd())

	return cmd
}

func monitorStartCmd() *cobra.Command {
	var teacherDNI, course, grade, area string

	cmd := &cobra.Command{
		Use:   "start [school-code]",
		Short: "Start a teacher observation session",
		Long: `Open a teacher observation against a fresh copy of the classroom
rubric. Only one session may be in progress at a time.

Examples:
  monitoreo monitor start 0593202 --teacher 45781236 --course "Matemática" --grade "3B"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := wire.SessionService().StartTeacher(context.Background(), primary.StartTeacherRequest{
				SchoolCode: args[0],
				TeacherDNI: teacherDNI,
				Course:     course,
				Grade:      grade,
				Area:       area,
			})
			if err != nil {
				return fmt.Errorf("no se pudo iniciar el registro: %w", err)
			}

			fmt.Printf("✓ Registro iniciado: ficha docente en %s\n", sess.School.Name)
			printRubricOutline(sess)
			return nil
		},
	}

	cmd.Flags().StringVarP(&teacherDNI, "teacher", "t", "", "Observed teacher's DNI")
	cmd.Flags().StringVar(&course, "course", "", "Course under observation")
	cmd.Flags().StringVar(&grade, "grade", "", "Grade and section")
	cmd.Flags().StringVar(&area, "area", "", "Curricular area")
	cmd.MarkFlagRequired("teacher")
	return cmd
}

func monitorStartDirectivoCmd() *cobra.Command {
	var directorDNI string

	cmd := &cobra.Command{
		Use:   "start-directivo",
		Short: "Start a director observation session",
		Long: `Open a director observation linked to the most recent recorded visit.
Record a visit first with 'monitoreo visit add'.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := wire.SessionService().StartDirector(context.Background(), primary.StartDirectorRequest{
				DirectorDNI: directorDNI,
			})
			if err != nil {
				return fmt.Errorf("no se pudo iniciar el registro: %w", err)
			}

			fmt.Printf("✓ Registro iniciado: ficha directivo en %s\n", sess.School.Name)
			printRubricOutline(sess)
			return nil
		},
	}

	cmd.Flags().StringVarP(&directorDNI, "director", "d", "", "Observed director's DNI")
	cmd.MarkFlagRequired("director")
	return cmd
}

func monitorShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the in-progress session",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := wire.SessionService().Current(context.Background())
			if err != nil {
				return err
			}
			if sess == nil {
				fmt.Println("No hay un registro en curso.")
				return nil
			}
			printRubricOutline(sess)
			return nil
		},
	}
}

func monitorAnswerCmd() *cobra.Command {
	var points int
	var cumple, evidencia string

	cmd := &cobra.Command{
		Use:   "answer [code]",
		Short: "Answer one rubric aspect",
		Long: `Record the score and evidence for one aspect of the in-progress
session, addressed by its rubric code.

Teacher rubric:   monitoreo monitor answer B --points 3 --evidencia "..."
Director rubric:  monitoreo monitor answer 04 --cumple si --evidencia "..."`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := primary.AnswerRequest{
				Code:      strings.ToUpper(args[0]),
				Points:    points,
				Evidencia: evidencia,
			}
			if cumple != "" {
				v, err := parseCumple(cumple)
				if err != nil {
					return err
				}
				req.Cumple = &v
			}

			sess, err := wire.SessionService().Answer(context.Background(), req)
			if err != nil {
				return fmt.Errorf("no se pudo registrar la respuesta: %w", err)
			}

			answered, total := sess.Answered()
			fmt.Printf("✓ Aspecto %s respondido (%d/%d)\n", req.Code, answered, total)
			return nil
		},
	}

	cmd.Flags().IntVar(&points, "points", 0, "Score 1-4 (teacher rubric)")
	cmd.Flags().StringVar(&cumple, "cumple", "", "si|no (director rubric)")
	cmd.Flags().StringVarP(&evidencia, "evidencia", "e", "", "Observed evidence")
	return cmd
}

func monitorSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Validate and save the session",
		Long: `Validate that every aspect has been answered and enqueue the ficha
for synchronization. An unanswered aspect rejects the save and the
session keeps all its answers.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := wire.SessionService().Save(context.Background())
			if err != nil {
				return fmt.Errorf("no se pudo guardar la ficha: %w", err)
			}

			fmt.Println("✓ Ficha guardada localmente")
			fmt.Printf("  Fichas pendientes de subir: %d\n", resp.Pending)
			return nil
		},
	}
}

func monitorCancelCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Discard the in-progress session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force && !confirmPrompt("¿Está seguro de cancelar el registro?") {
				fmt.Println("Cancelado.")
				return nil
			}
			if err := wire.SessionService().Cancel(context.Background()); err != nil {
				return fmt.Errorf("no se pudo cancelar el registro: %w", err)
			}
			fmt.Println("✓ Registro descartado")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")
	return cmd
}

func monitorListCmd() *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List synced and pending fichas",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := wire.MonitorService().List(context.Background(), query)
			if err != nil {
				return fmt.Errorf("no se pudieron cargar los monitoreos: %w", err)
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
			fmt.Fprintln(w, "FECHA\tTIPO\tOBSERVADO\tCOLEGIO\tESTADO\tID")
			fmt.Fprintln(w, "-----\t----\t---------\t-------\t------\t--")
			for _, m := range list.Remote {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\tsubida\t%s\n",
					m.StartAt.Format("02/01/2006 15:04"), typeLabel(m.Type), m.SubjectName(), m.School.Name, m.ID)
			}
			for _, m := range list.Pending {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					m.StartAt.Format("02/01/2006 15:04"), typeLabel(m.Type), m.SubjectName(), m.School.Name, pendingMark, m.ClientID)
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Filter by teacher or school name")
	return cmd
}

func monitorEditCmd() *cobra.Command {
	var code, cumple, evidencia string
	var points int

	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Amend one aspect of a synced ficha (admin)",
		Long: `Re-score one aspect of an already synced ficha and replay the record
against the server.

Example:
  monitoreo monitor edit 64f2be01 --code C --points 4 --evidencia "..."`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc := wire.MonitorService()

			list, err := svc.List(ctx, "")
			if err != nil {
				return fmt.Errorf("no se pudieron cargar los monitoreos: %w", err)
			}

			var target *models.Monitor
			for i := range list.Remote {
				if list.Remote[i].ID == args[0] {
					target = &list.Remote[i]
					break
				}
			}
			if target == nil {
				return fmt.Errorf("no existe un monitoreo subido con id %s", args[0])
			}

			req := strings.ToUpper(code)
			var cumpleVal *bool
			if cumple != "" {
				v, err := parseCumple(cumple)
				if err != nil {
					return err
				}
				cumpleVal = &v
			}
			if !rubric.ValidAnswer(rubric.Kind(target.Type), points, cumpleVal) {
				if rubric.Kind(target.Type) == rubric.KindDirector {
					return fmt.Errorf("debe indicar --cumple si|no")
				}
				return fmt.Errorf("puntaje %d fuera de rango (1-4)", points)
			}
			if !rubric.SetAnswer(rubric.Kind(target.Type), target.Performances, req, points, cumpleVal, evidencia) {
				return fmt.Errorf("el aspecto %s no existe en la ficha", req)
			}

			if err := svc.UpdateRemote(ctx, target.ID, target); err != nil {
				return fmt.Errorf("no se pudo actualizar el monitoreo: %w", err)
			}
			fmt.Println("✓ Monitoreo actualizado")
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "Rubric code of the aspect to amend")
	cmd.Flags().IntVar(&points, "points", 0, "New score 1-4 (teacher rubric)")
	cmd.Flags().StringVar(&cumple, "cumple", "", "si|no (director rubric)")
	cmd.Flags().StringVarP(&evidencia, "evidencia", "e", "", "New evidence text")
	cmd.MarkFlagRequired("code")
	return cmd
}

func monitorDeleteCmd() *cobra.Command {
	var local, force bool

	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a ficha (admin)",
		Long: `Delete an observation record. Use --local with a pending ficha's
client id, or the server id for a synced one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force && !confirmPrompt("¿Está seguro de eliminar el monitoreo?") {
				fmt.Println("Cancelado.")
				return nil
			}

			ctx := context.Background()
			var err error
			if local {
				err = wire.MonitorService().DeleteLocal(ctx, args[0])
			} else {
				err = wire.MonitorService().DeleteRemote(ctx, args[0])
			}
			if err != nil {
				return fmt.Errorf("no se pudo eliminar el monitoreo: %w", err)
			}
			fmt.Println("✓ Monitoreo eliminado")
			return nil
		},
	}

	cmd.Flags().BoolVar(&local, "local", false, "Delete a pending (not yet synced) ficha")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")
	return cmd
}

func printRubricOutline(sess *session.Session) {
	answered, total := sess.Answered()
	fmt.Printf("  Tipo: %s  Inicio: %s  Respondidos: %d/%d\n",
		typeLabel(string(sess.Kind)), sess.StartAt.Format("02/01/2006 15:04"), answered, total)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, p := range sess.Performances {
		fmt.Fprintf(w, "\n%s\n", p.Desempenio)
		for _, a := range p.Aspectos {
			state := "-"
			if sess.Kind == rubric.KindDirector {
				if a.Cumple != nil {
					if *a.Cumple {
						state = "SI"
					} else {
						state = "NO"
					}
				}
			} else if a.Points > 0 {
				state = fmt.Sprintf("%d", a.Points)
			}
			fmt.Fprintf(w, "  [%s]\t%s\t%s\n", a.Code, state, truncate(a.Name, 70))
		}
	}
	w.Flush()
}

func parseCumple(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "si", "sí", "s", "yes", "y":
		return true, nil
	case "no", "n":
		return false, nil
	}
	return false, fmt.Errorf("valor de --cumple no válido: %s (use si|no)", s)
}

func typeLabel(t string) string {
	if t == "2" {
		return "directivo"
	}
	return "docente"
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
