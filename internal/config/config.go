package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ENV_PREFIX is the prefix for all environment variable overrides, e.g.
// TXLENS_DEBUG or TXLENS_CHAIN.
const ENV_PREFIX = "TXLENS"

type Chain string

const (
	Chain_BscMainnet Chain = "bsc"
	Chain_BscTestnet Chain = "bsc-testnet"
	Chain_EthMainnet Chain = "ethereum"
)

func (c Chain) String() string {
	return string(c)
}

// ChainIds maps each supported chain to its EVM chain id.
var ChainIds = map[Chain]uint64{
	Chain_BscMainnet: 56,
	Chain_BscTestnet: 97,
	Chain_EthMainnet: 1,
}

func ParseChain(name string) (Chain, error) {
	c := Chain(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := ChainIds[c]; !ok {
		return "", fmt.Errorf("unsupported chain '%s'", name)
	}
	return c, nil
}

// Flag names. Dots become nesting in flag form and underscores in env form,
// e.g. registry.token-extensions -> TXLENS_REGISTRY_TOKEN_EXTENSIONS.
const (
	Debug                      = "debug"
	ChainFlag                  = "chain"
	RegistryTokenExtensions    = "registry.token-extensions"
	RegistryProtocolExtensions = "registry.protocol-extensions"
	OutputPretty               = "output.pretty"
)

type RegistryConfig struct {
	TokenExtensionsPath    string
	ProtocolExtensionsPath string
}

type OutputConfig struct {
	Pretty bool
}

type Config struct {
	Debug          bool
	Chain          Chain
	ChainId        uint64
	RegistryConfig RegistryConfig
	OutputConfig   OutputConfig
}

// KebabToSnakeCase converts a flag name to its viper/env key.
func KebabToSnakeCase(str string) string {
	str = strings.ReplaceAll(str, "-", "_")
	return strings.ReplaceAll(str, ".", "_")
}

// NewConfig reads the process configuration out of viper. Flags and env
// vars are expected to have been bound already (see cmd/root.go).
func NewConfig() *Config {
	chain, err := ParseChain(viper.GetString(KebabToSnakeCase(ChainFlag)))
	if err != nil {
		chain = Chain_BscMainnet
	}

	return &Config{
		Debug:   viper.GetBool(KebabToSnakeCase(Debug)),
		Chain:   chain,
		ChainId: ChainIds[chain],

		RegistryConfig: RegistryConfig{
			TokenExtensionsPath:    viper.GetString(KebabToSnakeCase(RegistryTokenExtensions)),
			ProtocolExtensionsPath: viper.GetString(KebabToSnakeCase(RegistryProtocolExtensions)),
		},

		OutputConfig: OutputConfig{
			Pretty: viper.GetBool(KebabToSnakeCase(OutputPretty)),
		},
	}
}
