package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/trebuchet-org/safevanity/pkg/address"
)

// ChainID is an EIP-155 chain identifier.
type ChainID uint64

// ParseChainID parses a decimal or 0x-prefixed hexadecimal chain ID.
func ParseChainID(s string) (ChainID, error) {
	base, digits := 10, s
	if rest, ok := strings.CutPrefix(s, "0x"); ok {
		base, digits = 16, rest
	}
	id, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidChainID, s, err)
	}
	return ChainID(id), nil
}

func (id ChainID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// SingletonKind selects which Safe singleton a chain deploys by default.
type SingletonKind string

const (
	// SingletonSafe is the Safe singleton without event logging, used on
	// Ethereum mainnet.
	SingletonSafe SingletonKind = "Safe"
	// SingletonSafeL2 is the event-emitting singleton used on L2s and side
	// chains.
	SingletonSafeL2 SingletonKind = "SafeL2"
)

// Deployment is a set of Safe contracts deployed at the same addresses on
// every chain it supports.
type Deployment struct {
	// Version is the Safe release, e.g. "1.4.1".
	Version string `json:"version" yaml:"version" toml:"version"`
	// ProxyFactory is the SafeProxyFactory contract.
	ProxyFactory address.NonZeroAddress `json:"proxyFactory" yaml:"proxyFactory" toml:"proxy_factory"`
	// ProxyInitCode is the SafeProxy creation code read from the factory.
	ProxyInitCode []byte `json:"-" yaml:"-" toml:"-"`
	// Safe is the Safe singleton.
	Safe address.NonZeroAddress `json:"safe" yaml:"safe" toml:"safe"`
	// SafeL2 is the SafeL2 singleton.
	SafeL2 address.NonZeroAddress `json:"safeL2" yaml:"safeL2" toml:"safe_l2"`
	// SafeToL2Setup is the multi-chain setup contract. It is zero for
	// releases without one.
	SafeToL2Setup address.Address `json:"safeToL2Setup" yaml:"safeToL2Setup" toml:"safe_to_l2_setup"`
	// FallbackHandler is the CompatibilityFallbackHandler.
	FallbackHandler address.Address `json:"fallbackHandler" yaml:"fallbackHandler" toml:"fallback_handler"`
}

// Singleton returns the singleton address of the given kind.
func (d *Deployment) Singleton(kind SingletonKind) address.NonZeroAddress {
	if kind == SingletonSafeL2 {
		return d.SafeL2
	}
	return d.Safe
}

// Explorer is a block explorer with a deep link to the createProxyWithNonce
// write function of a contract.
type Explorer struct {
	URL      string `json:"url" yaml:"url" toml:"url"`
	Selector string `json:"selector" yaml:"selector" toml:"selector"`
}

// Explorer link selectors of common explorer families.
const (
	EtherscanSelector  = "#writeContract#F3"
	BlockscoutSelector = "?tab=read_write_contract#0x1688f0b9"
)

// EtherscanExplorer returns an Etherscan-like explorer at url.
func EtherscanExplorer(url string) Explorer {
	return Explorer{URL: url, Selector: EtherscanSelector}
}

// BlockscoutExplorer returns a Blockscout-like explorer at url.
func BlockscoutExplorer(url string) Explorer {
	return Explorer{URL: url, Selector: BlockscoutSelector}
}

// CreateProxyWithNonceURL links to the createProxyWithNonce function of
// the factory.
func (e Explorer) CreateProxyWithNonceURL(factory address.Address) string {
	return fmt.Sprintf("%s/address/%s%s", strings.TrimSuffix(e.URL, "/"), factory, e.Selector)
}

// Chain is a chain with an official Safe deployment.
type Chain struct {
	ID         ChainID       `json:"chainId" yaml:"chainId"`
	Name       string        `json:"name" yaml:"name"`
	Deployment *Deployment   `json:"deployment" yaml:"deployment"`
	Explorer   *Explorer     `json:"explorer,omitempty" yaml:"explorer,omitempty"`
	Singleton  SingletonKind `json:"singleton" yaml:"singleton"`
	// Unsupported marks chains that are known but cannot be mined for, such
	// as chains with a non-standard CREATE2.
	Unsupported bool `json:"unsupported,omitempty" yaml:"unsupported,omitempty"`
}

// DisplayName returns the short name of the chain, or its ID when it has
// none.
func (c *Chain) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.ID.String()
}
