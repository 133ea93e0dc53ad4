package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/txlens/txlens/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "txlens",
	Short: "txlens decodes EVM transactions into human-readable explanations",
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	initConfig(rootCmd)

	rootCmd.PersistentFlags().Bool(config.Debug, false, `"true" or "false"`)
	rootCmd.PersistentFlags().StringP(config.ChainFlag, "c", "bsc", "The chain to use (bsc, bsc-testnet, ethereum)")
	rootCmd.PersistentFlags().String(config.RegistryTokenExtensions, "", "Path to a YAML file of extra token registry entries")
	rootCmd.PersistentFlags().String(config.RegistryProtocolExtensions, "", "Path to a YAML file of extra protocol registry entries")
	rootCmd.PersistentFlags().Bool(config.OutputPretty, true, "Indent JSON output")

	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(registriesCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		key := config.KebabToSnakeCase(f.Name)
		viper.BindPFlag(key, f) //nolint:errcheck
		viper.BindEnv(key)      //nolint:errcheck
	})
}

func initConfig(cmd *cobra.Command) {
	viper.SetEnvPrefix(config.ENV_PREFIX)

	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.AutomaticEnv()
}
