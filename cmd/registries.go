package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/txlens/txlens/internal/config"
	"github.com/txlens/txlens/internal/logger"
)

var registriesCmd = &cobra.Command{
	Use:   "registries",
	Short: "Dump the token and protocol registries",
	Long:  `Dump the effective token and protocol registries as JSON, including any extension file entries, in deterministic order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.NewConfig()

		l, err := logger.NewLogger(&logger.LoggerConfig{Debug: cfg.Debug})
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		tokens, protocols, err := buildRegistries(cfg, l)
		if err != nil {
			return err
		}

		out := map[string]interface{}{
			"tokens":    tokens.List(),
			"protocols": protocols.List(),
		}
		return printJson(out, cfg.OutputConfig.Pretty)
	},
}
