package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/trilhaup/trilha/internal/trail"
)

var trailCmd = &cobra.Command{
	Use:   "trail",
	Short: "Opera sobre uma trilha: view, start, complete",
}

var trailViewCmd = &cobra.Command{
	Use:   "view <trilha-id>",
	Short: "Mostra as fases da trilha com o progresso do usuário",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer d.close()

		trailID, userID, err := trailArgs(d, args[0])
		if err != nil {
			return err
		}

		view, err := d.controller.View(cmd.Context(), trailID, userID)
		if err != nil {
			return fmt.Errorf("não foi possível carregar a trilha: %w", err)
		}
		if len(view) == 0 {
			fmt.Println("Trilha sem cursos.")
			return nil
		}
		for _, pv := range view {
			marker := " "
			if trail.Locked(pv.Status) {
				marker = "🔒"
			}
			line := fmt.Sprintf("%s fase %d  %-40s %s", marker, pv.Course.Ordinal, pv.Course.Title, pv.Status)
			if pv.CompletedAt != nil {
				line += " em " + pv.CompletedAt.Format("02/01/2006")
			}
			fmt.Println(line)
		}
		return nil
	},
}

var trailStartCmd = &cobra.Command{
	Use:   "start <trilha-id>",
	Short: "Inicia a trilha, desbloqueando a primeira fase",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer d.close()

		trailID, userID, err := trailArgs(d, args[0])
		if err != nil {
			return err
		}

		if err := d.controller.StartTrail(cmd.Context(), trailID, userID); err != nil {
			return err
		}
		fmt.Println("Trilha iniciada. Fase 1 em andamento.")
		return nil
	},
}

var trailCompleteCmd = &cobra.Command{
	Use:   "complete <trilha-id> <fase>",
	Short: "Conclui uma fase e desbloqueia a próxima",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer d.close()

		trailID, userID, err := trailArgs(d, args[0])
		if err != nil {
			return err
		}
		ordinal, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("fase inválida: %q", args[1])
		}

		if err := d.controller.CompleteCourse(cmd.Context(), trailID, userID, ordinal); err != nil {
			return err
		}
		fmt.Printf("Fase %d concluída.\n", ordinal)
		return nil
	},
}

func init() {
	trailCmd.AddCommand(trailViewCmd)
	trailCmd.AddCommand(trailStartCmd)
	trailCmd.AddCommand(trailCompleteCmd)
}

func trailArgs(d *deps, rawTrailID string) (trailID, userID int, err error) {
	trailID, err = strconv.Atoi(rawTrailID)
	if err != nil {
		return 0, 0, fmt.Errorf("id de trilha inválido: %q", rawTrailID)
	}
	userID, err = d.requireUser()
	return trailID, userID, err
}
