package usecase

import (
	"context"
	"log/slog"

	"github.com/trebuchet-org/safevanity/internal/domain"
	"github.com/trebuchet-org/safevanity/internal/domain/config"
	"github.com/trebuchet-org/safevanity/pkg/address"
	"github.com/trebuchet-org/safevanity/pkg/safe"
)

// DecodeCalldataParams contains parameters for decoding factory calldata
type DecodeCalldataParams struct {
	Calldata []byte
	// Chain selects the deployment used to derive the proxy address. Empty
	// uses the configured chain.
	Chain string
	// ProxyFactory and ProxyInitCode override the chain's deployment.
	ProxyFactory  *address.Address
	ProxyInitCode []byte
}

// DecodeCalldataResult contains the decoded deployment
type DecodeCalldataResult struct {
	Decoded *safe.DecodedDeployment
	Chain   *domain.Chain
	// Address is the proxy address the calldata deploys, nil when the
	// factory is unknown or the setup call is not one this tool produces.
	Address *address.Address
}

// DecodeCalldata is a use case for decoding createProxyWithNonce calldata
type DecodeCalldata struct {
	config *config.RuntimeConfig
	chains ChainResolver
	log    *slog.Logger
}

// NewDecodeCalldata creates a new DecodeCalldata use case
func NewDecodeCalldata(cfg *config.RuntimeConfig, chains ChainResolver, log *slog.Logger) *DecodeCalldata {
	return &DecodeCalldata{
		config: cfg,
		chains: chains,
		log:    log.With("component", "decode"),
	}
}

// Run executes the use case
func (uc *DecodeCalldata) Run(ctx context.Context, params DecodeCalldataParams) (*DecodeCalldataResult, error) {
	decoded, err := safe.DecodeTransaction(params.Calldata)
	if err != nil {
		return nil, err
	}

	name := params.Chain
	if name == "" {
		name = uc.config.Chain
	}
	chain, err := uc.chains.Resolve(ctx, name)
	if err != nil {
		return nil, err
	}
	result := &DecodeCalldataResult{Decoded: decoded, Chain: chain}

	var factory address.Address
	initCode := params.ProxyInitCode
	if d := chain.Deployment; d != nil {
		factory = d.ProxyFactory.Get()
		if initCode == nil {
			initCode = d.ProxyInitCode
		}
	}
	if params.ProxyFactory != nil {
		factory = *params.ProxyFactory
	}
	if factory.IsZero() || initCode == nil {
		uc.log.Debug("no factory to derive the address with", "chain", chain.DisplayName())
		return result, nil
	}

	opts, err := decoded.Options(factory, initCode)
	if err != nil {
		uc.log.Debug("cannot derive address", "error", err)
		return result, nil
	}
	cfg, err := safe.NewConfiguration(opts)
	if err != nil {
		uc.log.Debug("cannot derive address", "error", err)
		return result, nil
	}

	s := safe.New(cfg)
	s.SetSaltNonce(decoded.SaltNonce)
	addr := s.CreationAddress()
	result.Address = &addr

	return result, nil
}
