package safe

import (
	"fmt"
	"slices"

	"github.com/trebuchet-org/safevanity/pkg/address"
	"github.com/trebuchet-org/safevanity/pkg/keccak"
)

// sentinelOwners is the linked list sentinel of the Safe OwnerManager; it
// can never be an owner.
var sentinelOwners = address.MustParse("0x0000000000000000000000000000000000000001")

// Configuration describes a Safe proxy deployment. Build it with
// NewConfiguration, which validates every field. A literal skips that
// validation and New rejects one without a factory or singleton. It is
// immutable once built.
type Configuration struct {
	// Proxy is the proxy creation configuration.
	Proxy Proxy
	// Account is the Safe account configuration.
	Account Account
}

// Proxy is the SafeProxy creation configuration.
type Proxy struct {
	// Factory is the SafeProxyFactory contract.
	Factory address.NonZeroAddress
	// InitCode is the SafeProxy creation code, without constructor
	// arguments.
	InitCode []byte
	// Singleton is the Safe implementation the proxy delegates to.
	Singleton address.NonZeroAddress
}

// InitCodeHash returns keccak256(initCode ‖ pad32(singleton)), the init code
// digest of the proxy with its constructor argument appended.
func (p Proxy) InitCodeHash() [keccak.Size]byte {
	singleton := word(p.Singleton.Get())
	return keccak.Sum256(p.InitCode, singleton[:])
}

// Account is the Safe account configuration passed to the setup call.
type Account struct {
	// Owners are the initial owners, in order.
	Owners []address.NonZeroAddress
	// Threshold is the number of required confirmations.
	Threshold int
	// Setup is the optional multi-chain SafeToL2Setup configuration.
	Setup *SafeToL2Setup
	// FallbackHandler is the optional fallback handler.
	FallbackHandler *address.NonZeroAddress
	// Identifier is an optional opaque tag encoded as the payment receiver.
	Identifier *address.Address
}

// SafeToL2Setup is the multi-chain setup that switches a Safe to the L2
// singleton when deployed on a chain other than Ethereum mainnet.
type SafeToL2Setup struct {
	// Address is the SafeToL2Setup contract.
	Address address.NonZeroAddress
	// L2Singleton is the SafeL2 singleton to switch to.
	L2Singleton address.NonZeroAddress
}

// Options are the raw, unvalidated parameters of a Safe deployment. Zero
// addresses mark optional parameters as absent.
type Options struct {
	ProxyFactory  address.Address
	ProxyInitCode []byte
	Singleton     address.Address

	Owners    []address.Address
	Threshold int

	SafeToL2Setup   address.Address
	L2Singleton     address.Address
	FallbackHandler address.Address
	Identifier      address.Address
}

// NewConfiguration validates opts and builds an immutable Configuration.
func NewConfiguration(opts Options) (*Configuration, error) {
	factory, err := address.NewNonZero(opts.ProxyFactory)
	if err != nil {
		return nil, &FieldError{Field: "proxy factory", Err: err}
	}
	singleton, err := address.NewNonZero(opts.Singleton)
	if err != nil {
		return nil, &FieldError{Field: "singleton", Err: err}
	}

	owners, err := validateOwners(opts.Owners)
	if err != nil {
		return nil, err
	}
	if opts.Threshold < 1 || opts.Threshold > len(owners) {
		return nil, &FieldError{
			Field: "threshold",
			Err:   fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidThreshold, opts.Threshold, len(owners)),
		}
	}

	cfg := &Configuration{
		Proxy: Proxy{
			Factory:   factory,
			InitCode:  slices.Clone(opts.ProxyInitCode),
			Singleton: singleton,
		},
		Account: Account{
			Owners:    owners,
			Threshold: opts.Threshold,
		},
	}

	switch noSetup, noL2 := opts.SafeToL2Setup.IsZero(), opts.L2Singleton.IsZero(); {
	case noSetup && noL2:
	case noSetup != noL2:
		return nil, fmt.Errorf("%w: both the setup contract and the L2 singleton must be specified", ErrIncompleteL2Setup)
	default:
		cfg.Account.Setup = &SafeToL2Setup{
			Address:     mustNonZero(opts.SafeToL2Setup),
			L2Singleton: mustNonZero(opts.L2Singleton),
		}
	}

	if handler, ok := opts.FallbackHandler.NonZero(); ok {
		cfg.Account.FallbackHandler = &handler
	}
	if !opts.Identifier.IsZero() {
		identifier := opts.Identifier
		cfg.Account.Identifier = &identifier
	}

	return cfg, nil
}

func validateOwners(owners []address.Address) ([]address.NonZeroAddress, error) {
	if len(owners) == 0 {
		return nil, ErrNoOwners
	}

	seen := make(map[address.Address]struct{}, len(owners))
	out := make([]address.NonZeroAddress, 0, len(owners))
	for i, owner := range owners {
		field := fmt.Sprintf("owner %d", i)
		nz, err := address.NewNonZero(owner)
		if err != nil {
			return nil, &FieldError{Field: field, Err: err}
		}
		if owner == sentinelOwners {
			return nil, &FieldError{Field: field, Err: fmt.Errorf("%w: %s is the owners sentinel", ErrInvalidOwner, owner)}
		}
		if _, ok := seen[owner]; ok {
			return nil, &FieldError{Field: field, Err: fmt.Errorf("%w: %s", ErrDuplicateOwner, owner)}
		}
		seen[owner] = struct{}{}
		out = append(out, nz)
	}
	return out, nil
}

func mustNonZero(a address.Address) address.NonZeroAddress {
	nz, ok := a.NonZero()
	if !ok {
		panic("safe: unexpected zero address")
	}
	return nz
}
