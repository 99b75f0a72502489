package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Mostra o histórico local de diagnósticos e transições",
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

		diags, err := d.hist.Diagnostics(cmd.Context(), userID)
		if err != nil {
			return err
		}
		fmt.Println("Diagnósticos:")
		if len(diags) == 0 {
			fmt.Println("  (nenhum)")
		}
		for _, e := range diags {
			fmt.Printf("  %s  trilha %d  ADM %d × TEC %d × RH %d\n",
				e.CreatedAt.Format("02/01/2006 15:04"), e.TrailID,
				e.Administracao, e.Tecnologia, e.RH)
		}

		trans, err := d.hist.Transitions(cmd.Context(), userID)
		if err != nil {
			return err
		}
		fmt.Println("Transições:")
		if len(trans) == 0 {
			fmt.Println("  (nenhuma)")
		}
		for _, e := range trans {
			fmt.Printf("  %s  curso %d  %s → %s\n",
				e.At.Format("02/01/2006 15:04"), e.TrailCourseID, e.From, e.To)
		}
		return nil
	},
}
