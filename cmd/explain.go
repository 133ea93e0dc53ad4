package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/txlens/txlens/internal/config"
	"github.com/txlens/txlens/internal/logger"
	"github.com/txlens/txlens/pkg/ethereum"
	"github.com/txlens/txlens/pkg/explanationEngine"
	"github.com/txlens/txlens/pkg/protocolRegistry"
	"github.com/txlens/txlens/pkg/tokenRegistry"
	"go.uber.org/zap"
)

// explainInput is the JSON document the explain command consumes: the raw
// node responses for a transaction, its receipt and optionally its block.
type explainInput struct {
	Tx      *ethereum.EthereumTransaction        `json:"tx"`
	Receipt *ethereum.EthereumTransactionReceipt `json:"receipt"`
	Block   *ethereum.EthereumBlock              `json:"block"`
}

var explainCmd = &cobra.Command{
	Use:   "explain [file]",
	Short: "Explain a transaction",
	Long:  `Explain a transaction from a JSON file or stdin. The document must carry "tx" and "receipt" keys holding the raw eth_getTransactionByHash and eth_getTransactionReceipt responses, and may carry a "block" key for the timestamp.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.NewConfig()

		l, err := logger.NewLogger(&logger.LoggerConfig{Debug: cfg.Debug})
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		var contents []byte
		if len(args) > 0 {
			contents, err = os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, "failed to read input file '%s'", args[0])
			}
		} else {
			contents, err = io.ReadAll(os.Stdin)
			if err != nil {
				return errors.Wrap(err, "failed to read stdin")
			}
		}

		input := &explainInput{}
		if err := json.Unmarshal(contents, input); err != nil {
			return errors.Wrap(err, "failed to parse input document")
		}

		tokens, protocols, err := buildRegistries(cfg, l)
		if err != nil {
			return err
		}

		engine, err := explanationEngine.NewEngine(l, tokens, protocols)
		if err != nil {
			return errors.Wrap(err, "failed to initialize engine")
		}

		parsed, err := engine.ParseTransaction(input.Tx, input.Receipt, input.Block)
		if err != nil {
			return errors.Wrap(err, "failed to parse transaction")
		}

		return printJson(parsed, cfg.OutputConfig.Pretty)
	},
}

// buildRegistries constructs the token and protocol registries, applying
// any extension files named in the config.
func buildRegistries(cfg *config.Config, l *zap.Logger) (*tokenRegistry.Registry, *protocolRegistry.Registry, error) {
	tokens := tokenRegistry.NewRegistry()
	if path := cfg.RegistryConfig.TokenExtensionsPath; path != "" {
		if err := tokens.LoadExtensions(path); err != nil {
			return nil, nil, errors.Wrapf(err, "failed to load token extensions from '%s'", path)
		}
		l.Sugar().Debugw("Loaded token extensions", zap.String("path", path))
	}

	protocols := protocolRegistry.NewRegistry()
	if path := cfg.RegistryConfig.ProtocolExtensionsPath; path != "" {
		if err := protocols.LoadExtensions(path); err != nil {
			return nil, nil, errors.Wrapf(err, "failed to load protocol extensions from '%s'", path)
		}
		l.Sugar().Debugw("Loaded protocol extensions", zap.String("path", path))
	}

	return tokens, protocols, nil
}

func printJson(v interface{}, pretty bool) error {
	var (
		out []byte
		err error
	)
	if pretty {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		return errors.Wrap(err, "failed to serialize output")
	}
	fmt.Println(string(out))
	return nil
}
