package usecase

import (
	"context"
	"log/slog"

	"github.com/trebuchet-org/safevanity/internal/domain/config"
	"github.com/trebuchet-org/safevanity/pkg/safe"
)

// ComputeSafeAddressParams contains parameters for computing a Safe address
type ComputeSafeAddressParams struct {
	Safe      SafeParams
	SaltNonce [32]byte
}

// ComputeSafeAddressResult contains the computed Safe deployment
type ComputeSafeAddressResult struct {
	SafeDeployment
}

// ComputeSafeAddress is a use case for deriving the address of a Safe with
// a known salt nonce
type ComputeSafeAddress struct {
	config *config.RuntimeConfig
	chains ChainResolver
	log    *slog.Logger
}

// NewComputeSafeAddress creates a new ComputeSafeAddress use case
func NewComputeSafeAddress(cfg *config.RuntimeConfig, chains ChainResolver, log *slog.Logger) *ComputeSafeAddress {
	return &ComputeSafeAddress{
		config: cfg,
		chains: chains,
		log:    log.With("component", "address"),
	}
}

// Run executes the use case
func (uc *ComputeSafeAddress) Run(ctx context.Context, params ComputeSafeAddressParams) (*ComputeSafeAddressResult, error) {
	chain, cfg, err := resolveConfiguration(ctx, uc.chains, uc.config.Chain, params.Safe)
	if err != nil {
		return nil, err
	}

	s := safe.New(cfg)
	s.SetSaltNonce(params.SaltNonce)
	uc.log.Debug("computed address", "chain", chain.DisplayName(), "address", s.CreationAddress())

	return &ComputeSafeAddressResult{
		SafeDeployment: SafeDeployment{
			Chain:    chain,
			Safe:     s,
			Explorer: explorerFor(chain, uc.config.Explorer),
		},
	}, nil
}
