// Package protocolRegistry maps known contract addresses to protocol
// metadata, partitioned by category (DEX, lending, NFT marketplace,
// staking, bridge). Like the token registry it is built once at startup and
// read-only afterwards; all lookups are case-insensitive over lower-cased
// hex keys.
package protocolRegistry

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// Category tags a protocol entry with the kind of contract it is.
type Category string

const (
	CategoryDex            Category = "dex"
	CategoryLending        Category = "lending"
	CategoryNftMarketplace Category = "nft_marketplace"
	CategoryStaking        Category = "staking"
	CategoryBridge         Category = "bridge"
)

// ProtocolInfo is the display metadata for a known contract address.
type ProtocolInfo struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Category    Category `yaml:"category" json:"category"`
	Website     string   `yaml:"website,omitempty" json:"website,omitempty"`
	Logo        string   `yaml:"logo,omitempty" json:"logo,omitempty"`
}

// Registry is an immutable address-to-protocol lookup table.
type Registry struct {
	protocols *orderedmap.OrderedMap[string, *ProtocolInfo]
}

// NewRegistry builds a registry seeded with the built-in BNB Chain
// protocol tables.
func NewRegistry() *Registry {
	r := &Registry{protocols: orderedmap.New[string, *ProtocolInfo]()}
	for _, e := range builtinProtocols {
		r.protocols.Set(strings.ToLower(e.address), e.info)
	}
	return r
}

// LoadExtensions merges additional protocol entries from a YAML file keyed
// by contract address. Intended to run during startup, before the registry
// is shared. Every entry must carry a name and a valid category.
func (r *Registry) LoadExtensions(path string) error {
	contents, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read protocol extension file '%s'", path)
	}
	entries := make(map[string]*ProtocolInfo)
	if err := yaml.Unmarshal(contents, &entries); err != nil {
		return errors.Wrapf(err, "failed to parse protocol extension file '%s'", path)
	}
	for address, info := range entries {
		if info == nil || info.Name == "" {
			return errors.Errorf("protocol extension entry '%s' is missing a name", address)
		}
		switch info.Category {
		case CategoryDex, CategoryLending, CategoryNftMarketplace, CategoryStaking, CategoryBridge:
		default:
			return errors.Errorf("protocol extension entry '%s' has unknown category '%s'", address, info.Category)
		}
		r.protocols.Set(strings.ToLower(address), info)
	}
	return nil
}

// GetProtocolInfo returns the metadata registered for an address in any
// category, or nil when the address is unknown.
func (r *Registry) GetProtocolInfo(address string) *ProtocolInfo {
	if address == "" {
		return nil
	}
	info, ok := r.protocols.Get(strings.ToLower(address))
	if !ok {
		return nil
	}
	return info
}

// GetProtocolName returns the display name registered for an address, or
// the empty string.
func (r *Registry) GetProtocolName(address string) string {
	if info := r.GetProtocolInfo(address); info != nil {
		return info.Name
	}
	return ""
}

// GetProtocolLogo returns the logo URL registered for an address, or the
// empty string.
func (r *Registry) GetProtocolLogo(address string) string {
	if info := r.GetProtocolInfo(address); info != nil {
		return info.Logo
	}
	return ""
}

func (r *Registry) identify(address string, category Category) string {
	info := r.GetProtocolInfo(address)
	if info == nil || info.Category != category {
		return ""
	}
	return info.Name
}

// IdentifyDex returns the DEX name for an address, or "" when the address
// is not a registered DEX.
func (r *Registry) IdentifyDex(address string) string {
	return r.identify(address, CategoryDex)
}

// IdentifyLendingProtocol returns the lending-protocol name for an address,
// or "".
func (r *Registry) IdentifyLendingProtocol(address string) string {
	return r.identify(address, CategoryLending)
}

// IdentifyNftMarketplace returns the NFT-marketplace name for an address,
// or "".
func (r *Registry) IdentifyNftMarketplace(address string) string {
	return r.identify(address, CategoryNftMarketplace)
}

// IdentifyStaking returns the staking-protocol name for an address, or "".
func (r *Registry) IdentifyStaking(address string) string {
	return r.identify(address, CategoryStaking)
}

// IdentifyBridge returns the bridge name for an address, or "".
func (r *Registry) IdentifyBridge(address string) string {
	return r.identify(address, CategoryBridge)
}

// ProtocolEntry pairs a registry key with its metadata for listings.
type ProtocolEntry struct {
	Address string        `json:"address"`
	Info    *ProtocolInfo `json:"info"`
}

// List returns every entry in deterministic (insertion) order.
func (r *Registry) List() []ProtocolEntry {
	entries := make([]ProtocolEntry, 0, r.protocols.Len())
	for pair := r.protocols.Oldest(); pair != nil; pair = pair.Next() {
		entries = append(entries, ProtocolEntry{Address: pair.Key, Info: pair.Value})
	}
	return entries
}
