// Package config loads engine configuration from a config file, a .env
// file, and TRILHA_* environment variables, in increasing precedence.
// The engine itself stays stateless: config only feeds its collaborators
// (backend URL, timeouts, retry policy, history location); user and trail
// ids travel as explicit call parameters.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/trilhaup/trilha/internal/api"
)

// Config holds all engine configuration.
type Config struct {
	// BaseURL is the backend API root, e.g. "https://api.example.com/api".
	BaseURL string `mapstructure:"base_url"`

	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration `mapstructure:"timeout"`

	// UserID is the default user for CLI commands (overridable by --user).
	UserID int `mapstructure:"user_id"`

	// HistoryDB is the local history database path. Empty means the
	// default location under the user config directory.
	HistoryDB string `mapstructure:"history_db"`

	// BankFile is an optional custom question-bank JSON file.
	BankFile string `mapstructure:"bank_file"`

	Retry api.RetryConfig `mapstructure:"retry"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Timeout: 15 * time.Second,
		Retry:   api.DefaultRetryConfig(),
	}
}

// Load reads configuration. cfgFile may be empty, in which case viper
// looks for trilha.yaml in the working directory. A missing config file
// is fine; a malformed one is not.
func Load(cfgFile string) (Config, error) {
	// .env first so the variables are visible to viper's env binding.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("TRILHA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv alone does not surface keys without defaults through
	// Unmarshal; bind the known ones explicitly.
	for _, key := range []string{"base_url", "timeout", "user_id", "history_db", "bank_file"} {
		_ = v.BindEnv(key)
	}

	def := Default()
	v.SetDefault("timeout", def.Timeout)
	v.SetDefault("retry.max_attempts", def.Retry.MaxAttempts)
	v.SetDefault("retry.initial_wait", def.Retry.InitialWait)
	v.SetDefault("retry.max_wait", def.Retry.MaxWait)
	v.SetDefault("retry.multiplier", def.Retry.Multiplier)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("trilha")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errorsAs(err, &notFound) {
			return Config{}, fmt.Errorf("ler configuração: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("interpretar configuração: %w", err)
	}
	return cfg, nil
}

// errorsAs wraps errors.As for viper's value-typed config-not-found error.
func errorsAs(err error, target *viper.ConfigFileNotFoundError) bool {
	if e, ok := err.(viper.ConfigFileNotFoundError); ok {
		*target = e
		return true
	}
	return false
}
