package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Mostra as trilhas vinculadas e a elegibilidade para rediagnóstico",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer d.close()

		userID, err := d.requireUser()
		if err != nil {
			return err
		}

		linked, err := d.client.ListUserTrails(cmd.Context(), userID)
		if err != nil {
			return fmt.Errorf("não foi possível carregar as trilhas do usuário: %w", err)
		}
		if len(linked) == 0 {
			fmt.Println("Nenhuma trilha vinculada.")
		}
		for _, t := range linked {
			fmt.Printf("%3d  %s\n", t.ID, t.Name)
		}

		eligible, err := d.aggregator.EligibleToRediagnose(cmd.Context(), userID)
		if err != nil {
			return fmt.Errorf("não foi possível verificar a elegibilidade: %w", err)
		}
		if eligible {
			fmt.Println("Elegível para refazer o diagnóstico.")
		} else {
			fmt.Println("Conclua todas as fases para refazer o diagnóstico.")
		}
		return nil
	},
}
