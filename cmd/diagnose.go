package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trilhaup/trilha/internal/category"
	"github.com/trilhaup/trilha/internal/quiz"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Responde o diagnóstico e recebe uma trilha recomendada",
	Long: `Envia um questionário completo e vincula a trilha recomendada ao usuário.

As respostas vêm em --answers, uma letra por questão na ordem do banco,
separadas por vírgula: --answers a,b,c,a,a,b,c,a,b,a`,
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

		raw, _ := cmd.Flags().GetString("answers")
		answers, err := parseAnswers(d.bank, raw)
		if err != nil {
			return err
		}

		result, err := d.submitter.Submit(cmd.Context(), userID, d.bank, answers)
		if err != nil {
			return err
		}

		fmt.Printf("Resultado: Administração %d × Tecnologia %d × RH %d\n",
			result.Tally.Administracao, result.Tally.Tecnologia, result.Tally.RH)
		fmt.Printf("Perfil vencedor: %s\n", category.DisplayName(result.Winner))
		if result.TrailName != "" {
			fmt.Printf("Trilha recomendada: %s (id %d)\n", result.TrailName, result.TrailID)
		} else {
			fmt.Printf("Trilha recomendada: id %d\n", result.TrailID)
		}
		return nil
	},
}

func init() {
	diagnoseCmd.Flags().String("answers", "", "Respostas do questionário, separadas por vírgula")
	_ = diagnoseCmd.MarkFlagRequired("answers")
}

// parseAnswers turns a comma-separated letter list into an AnswerSet over
// the bank, validating completeness before anything is scored.
func parseAnswers(bank []quiz.Question, raw string) (quiz.AnswerSet, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != len(bank) {
		return nil, fmt.Errorf("%w: esperadas %d respostas, recebidas %d",
			quiz.ErrIncomplete, len(bank), len(parts))
	}

	answers := make(quiz.AnswerSet, len(bank))
	for i, q := range bank {
		answers[q.ID] = strings.ToLower(strings.TrimSpace(parts[i]))
	}
	if err := quiz.Validate(bank, answers); err != nil {
		return nil, err
	}
	return answers, nil
}
