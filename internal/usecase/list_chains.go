package usecase

import (
	"context"

	"github.com/trebuchet-org/safevanity/internal/domain"
)

// ListChainsParams contains parameters for listing chains
type ListChainsParams struct {
	// IncludeUnsupported also lists chains Safe addresses cannot be mined for
	IncludeUnsupported bool
}

// ListChainsResult contains the result of listing chains
type ListChainsResult struct {
	Chains []*domain.Chain
}

// ListChains is a use case for listing chains with known Safe deployments
type ListChains struct {
	chains ChainResolver
}

// NewListChains creates a new ListChains use case
func NewListChains(chains ChainResolver) *ListChains {
	return &ListChains{
		chains: chains,
	}
}

// Run executes the use case
func (uc *ListChains) Run(ctx context.Context, params ListChainsParams) (*ListChainsResult, error) {
	all := uc.chains.List(ctx)

	chains := make([]*domain.Chain, 0, len(all))
	for _, chain := range all {
		if chain.Unsupported && !params.IncludeUnsupported {
			continue
		}
		chains = append(chains, chain)
	}

	return &ListChainsResult{
		Chains: chains,
	}, nil
}
