package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/trilhaup/trilha/internal/api"
	"github.com/trilhaup/trilha/internal/config"
	"github.com/trilhaup/trilha/internal/diagnostic"
	"github.com/trilhaup/trilha/internal/history"
	"github.com/trilhaup/trilha/internal/logging"
	"github.com/trilhaup/trilha/internal/quiz"
	"github.com/trilhaup/trilha/internal/trail"
)

var rootCmd = &cobra.Command{
	Use:           "trilha",
	Short:         "Motor de recomendação e progressão de trilhas",
	Long:          "Trilha — diagnóstico vocacional e progressão sequencial de fases em trilhas de desenvolvimento profissional.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Arquivo de configuração (padrão: ./trilha.yaml)")
	rootCmd.PersistentFlags().Int("user", 0, "Id do usuário (sobrepõe a configuração)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Saída detalhada")

	rootCmd.AddCommand(diagnoseCmd)
	rootCmd.AddCommand(trailsCmd)
	rootCmd.AddCommand(trailCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// deps bundles everything a subcommand needs. Built fresh per invocation.
type deps struct {
	cfg        config.Config
	logger     *zap.Logger
	client     *api.Client
	hist       *history.Store
	controller *trail.Controller
	aggregator *trail.Aggregator
	submitter  *diagnostic.Submitter
	bank       []quiz.Question
	userID     int
}

func (d *deps) close() {
	if d.hist != nil {
		d.hist.Close()
	}
	if d.logger != nil {
		_ = d.logger.Sync()
	}
}

// buildDeps loads config and wires the engine.
func buildDeps(cmd *cobra.Command) (*deps, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(verbose)
	if err != nil {
		return nil, fmt.Errorf("criar logger: %w", err)
	}

	client, err := api.New(api.Config{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Retry:   cfg.Retry,
	}, logger)
	if err != nil {
		return nil, err
	}

	histPath := cfg.HistoryDB
	if histPath == "" {
		histPath, err = history.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	hist, err := history.Open(histPath, logger)
	if err != nil {
		return nil, err
	}

	bank := quiz.DefaultBank()
	if cfg.BankFile != "" {
		bank, err = quiz.LoadBank(cfg.BankFile)
		if err != nil {
			hist.Close()
			return nil, err
		}
	}

	userID := cfg.UserID
	if flagUser, _ := cmd.Flags().GetInt("user"); flagUser != 0 {
		userID = flagUser
	}

	aggregator := trail.NewAggregator(client)
	return &deps{
		cfg:        cfg,
		logger:     logger,
		client:     client,
		hist:       hist,
		controller: trail.NewController(client, logger, hist),
		aggregator: aggregator,
		submitter:  diagnostic.NewSubmitter(client, aggregator, logger, hist),
		bank:       bank,
		userID:     userID,
	}, nil
}

// requireUser returns the effective user id or an error if none is set.
func (d *deps) requireUser() (int, error) {
	if d.userID == 0 {
		return 0, fmt.Errorf("informe o usuário com --user ou na configuração")
	}
	return d.userID, nil
}
