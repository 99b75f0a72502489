package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var trailsCmd = &cobra.Command{
	Use:   "trails",
	Short: "Lista as trilhas do sistema",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer d.close()

		trails, err := d.client.ListTrails(cmd.Context())
		if err != nil {
			return fmt.Errorf("não foi possível carregar as trilhas: %w", err)
		}
		if len(trails) == 0 {
			fmt.Println("Nenhuma trilha cadastrada.")
			return nil
		}
		for _, t := range trails {
			fmt.Printf("%3d  %-40s %d fases\n", t.ID, t.Name, t.PhaseCount)
		}
		return nil
	},
}
