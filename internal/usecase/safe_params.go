package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/trebuchet-org/safevanity/internal/domain"
	"github.com/trebuchet-org/safevanity/pkg/address"
	"github.com/trebuchet-org/safevanity/pkg/safe"
)

// SafeParams are the Safe account parameters and the contract overrides
// shared by the use cases that build a Safe deployment. Nil overrides use
// the chain's deployment.
type SafeParams struct {
	// Chain is a short name or chain ID. Empty uses the configured chain.
	Chain string

	Owners    []address.Address
	Threshold int

	ProxyFactory    *address.Address
	ProxyInitCode   []byte
	Singleton       *address.Address
	FallbackHandler *address.Address
	SafeToL2Setup   *address.Address
	L2Singleton     *address.Address
	// NoL2Setup deploys the chain's default singleton directly instead of
	// the Safe singleton with a SafeToL2Setup call.
	NoL2Setup  bool
	Identifier *address.Address
}

// SafeDeployment is a Safe deployment on a chain.
type SafeDeployment struct {
	Chain *domain.Chain
	Safe  *safe.Safe
	// Explorer links the factory's createProxyWithNonce function, if known.
	Explorer *domain.Explorer
}

// resolveConfiguration builds the Safe configuration of params on its chain.
//
// Chains with a SafeToL2Setup contract deploy the Safe singleton and switch
// to SafeL2 during setup on chains other than Ethereum mainnet, so one
// configuration yields the same address everywhere. Other chains use the
// singleton kind of the chain.
func resolveConfiguration(ctx context.Context, chains ChainResolver, defaultChain string, params SafeParams) (*domain.Chain, *safe.Configuration, error) {
	name := params.Chain
	if name == "" {
		name = defaultChain
	}
	chain, err := chains.Resolve(ctx, name)
	if err != nil {
		return nil, nil, err
	}

	if params.NoL2Setup && (params.SafeToL2Setup != nil || params.L2Singleton != nil) {
		return nil, nil, errors.New("the L2 setup cannot be disabled and overridden at the same time")
	}

	opts := safe.Options{
		Owners:    params.Owners,
		Threshold: params.Threshold,
	}

	if d := chain.Deployment; d != nil {
		opts.ProxyFactory = d.ProxyFactory.Get()
		opts.ProxyInitCode = d.ProxyInitCode
		opts.FallbackHandler = d.FallbackHandler
		if !d.SafeToL2Setup.IsZero() && !params.NoL2Setup {
			opts.Singleton = d.Safe.Get()
			opts.SafeToL2Setup = d.SafeToL2Setup
			opts.L2Singleton = d.SafeL2.Get()
		} else {
			opts.Singleton = d.Singleton(chain.Singleton).Get()
		}
	} else {
		var missing []string
		if params.ProxyFactory == nil {
			missing = append(missing, "--proxy-factory")
		}
		if params.ProxyInitCode == nil {
			missing = append(missing, "--proxy-init-code")
		}
		if params.Singleton == nil {
			missing = append(missing, "--singleton")
		}
		if len(missing) > 0 {
			return nil, nil, domain.MissingParameterError{Chain: chain.ID, Parameters: missing}
		}
	}

	if params.ProxyFactory != nil {
		opts.ProxyFactory = *params.ProxyFactory
	}
	if params.ProxyInitCode != nil {
		opts.ProxyInitCode = params.ProxyInitCode
	}
	if params.Singleton != nil {
		opts.Singleton = *params.Singleton
	}
	if params.FallbackHandler != nil {
		opts.FallbackHandler = *params.FallbackHandler
	}
	if params.SafeToL2Setup != nil {
		opts.SafeToL2Setup = *params.SafeToL2Setup
	}
	if params.L2Singleton != nil {
		opts.L2Singleton = *params.L2Singleton
	}
	if params.Identifier != nil {
		opts.Identifier = *params.Identifier
	}

	cfg, err := safe.NewConfiguration(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid Safe configuration: %w", err)
	}
	return chain, cfg, nil
}

// explorerFor returns the explorer used to link the factory: the override
// URL with the chain's link selector, or the chain's explorer.
func explorerFor(chain *domain.Chain, override string) *domain.Explorer {
	if override == "" {
		return chain.Explorer
	}
	explorer := domain.EtherscanExplorer(override)
	if chain.Explorer != nil {
		explorer.Selector = chain.Explorer.Selector
	}
	return &explorer
}
