// Package tokenRegistry maps token contract addresses to display metadata.
// The registry is built once at startup and is read-only afterwards, so it
// is safe for unlimited concurrent lookups. Lookups are case-insensitive;
// keys are normalized to lower-case hex. The sentinel key "native"
// addresses the chain's intrinsic gas asset.
package tokenRegistry

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// NativeAssetKey is the sentinel registry key for the chain's native asset.
const NativeAssetKey = "native"

// zeroAddress also resolves to the native asset; some tooling uses it
// interchangeably with the sentinel.
const zeroAddress = "0x0000000000000000000000000000000000000000"

// DefaultDecimals is assumed for tokens absent from the registry.
const DefaultDecimals = int32(18)

// TokenInfo is the display metadata for a single token contract.
type TokenInfo struct {
	Symbol   string `yaml:"symbol" json:"symbol"`
	Name     string `yaml:"name" json:"name"`
	Decimals int32  `yaml:"decimals" json:"decimals"`
	Image    string `yaml:"image,omitempty" json:"image,omitempty"`
}

// Registry is an immutable address-to-token lookup table. Construct it with
// NewRegistry, optionally extend it with LoadExtensions before sharing, and
// treat it as read-only from then on.
type Registry struct {
	tokens *orderedmap.OrderedMap[string, *TokenInfo]
}

// NewRegistry builds a registry seeded with the built-in BNB Chain token
// table, including the native-asset entry.
func NewRegistry() *Registry {
	r := &Registry{tokens: orderedmap.New[string, *TokenInfo]()}
	for _, e := range builtinTokens {
		r.tokens.Set(strings.ToLower(e.address), e.info)
	}
	return r
}

// LoadExtensions merges additional token entries from a YAML file keyed by
// contract address. Intended to run during startup, before the registry is
// shared; entries for an existing address replace the built-in one. Callers
// targeting a different chain supply their own table this way.
func (r *Registry) LoadExtensions(path string) error {
	contents, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read token extension file '%s'", path)
	}
	entries := make(map[string]*TokenInfo)
	if err := yaml.Unmarshal(contents, &entries); err != nil {
		return errors.Wrapf(err, "failed to parse token extension file '%s'", path)
	}
	for address, info := range entries {
		if info == nil || info.Symbol == "" {
			return errors.Errorf("token extension entry '%s' is missing a symbol", address)
		}
		if info.Decimals < 0 {
			return errors.Errorf("token extension entry '%s' has a negative decimal count", address)
		}
		if info.Decimals == 0 {
			info.Decimals = DefaultDecimals
		}
		r.tokens.Set(strings.ToLower(address), info)
	}
	return nil
}

// GetTokenInfo returns the metadata for a token address, or nil when the
// address is not registered. The "native" sentinel and the zero address
// both resolve to the native asset.
func (r *Registry) GetTokenInfo(address string) *TokenInfo {
	if address == "" {
		return nil
	}
	key := strings.ToLower(address)
	if key == zeroAddress {
		key = NativeAssetKey
	}
	info, ok := r.tokens.Get(key)
	if !ok {
		return nil
	}
	return info
}

// GetTokenDecimals returns the registered decimal count for a token, or
// DefaultDecimals when unknown.
func (r *Registry) GetTokenDecimals(address string) int32 {
	if info := r.GetTokenInfo(address); info != nil {
		return info.Decimals
	}
	return DefaultDecimals
}

// GetTokenImage returns the registered logo URL, or the empty string.
func (r *Registry) GetTokenImage(address string) string {
	if info := r.GetTokenInfo(address); info != nil {
		return info.Image
	}
	return ""
}

// Native returns the native-asset entry.
func (r *Registry) Native() *TokenInfo {
	info, _ := r.tokens.Get(NativeAssetKey)
	return info
}

// TokenEntry pairs a registry key with its metadata for listings.
type TokenEntry struct {
	Address string     `json:"address"`
	Info    *TokenInfo `json:"info"`
}

// List returns every entry in deterministic (insertion) order.
func (r *Registry) List() []TokenEntry {
	entries := make([]TokenEntry, 0, r.tokens.Len())
	for pair := r.tokens.Oldest(); pair != nil; pair = pair.Next() {
		entries = append(entries, TokenEntry{Address: pair.Key, Info: pair.Value})
	}
	return entries
}
