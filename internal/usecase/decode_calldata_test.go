package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/safevanity/internal/domain"
	"github.com/trebuchet-org/safevanity/internal/domain/config"
	"github.com/trebuchet-org/safevanity/internal/usecase"
	"github.com/trebuchet-org/safevanity/pkg/safe"
)

func TestDecodeCalldata(t *testing.T) {
	ctx := context.Background()
	cfg := &config.RuntimeConfig{Chain: "eth"}

	computed, err := usecase.NewComputeSafeAddress(cfg, newResolver(), discardLogger()).Run(ctx, usecase.ComputeSafeAddressParams{
		Safe:      usecase.SafeParams{Owners: owners, Threshold: 2},
		SaltNonce: [32]byte{30: 0x12, 31: 0x34},
	})
	require.NoError(t, err)
	calldata := computed.Safe.Transaction().Calldata

	t.Run("derives address from chain deployment", func(t *testing.T) {
		uc := usecase.NewDecodeCalldata(cfg, newResolver(), discardLogger())

		result, err := uc.Run(ctx, usecase.DecodeCalldataParams{Calldata: calldata, Chain: "base"})
		require.NoError(t, err)

		assert.Equal(t, base, result.Chain)
		assert.Equal(t, owners, result.Decoded.Owners)
		assert.Equal(t, int64(2), result.Decoded.Threshold.Int64())
		require.NotNil(t, result.Address)
		assert.Equal(t, computed.Safe.CreationAddress(), *result.Address)
	})

	t.Run("no factory on unknown chain", func(t *testing.T) {
		uc := usecase.NewDecodeCalldata(&config.RuntimeConfig{Chain: "31337"}, newResolver(), discardLogger())

		result, err := uc.Run(ctx, usecase.DecodeCalldataParams{Calldata: calldata})
		require.NoError(t, err)

		assert.Equal(t, devnet, result.Chain)
		assert.Nil(t, result.Address)
	})

	t.Run("not factory calldata", func(t *testing.T) {
		uc := usecase.NewDecodeCalldata(cfg, newResolver(), discardLogger())

		_, err := uc.Run(ctx, usecase.DecodeCalldataParams{Calldata: []byte{0xde, 0xad, 0xbe, 0xef}})
		require.ErrorIs(t, err, safe.ErrInvalidCalldata)
	})
}

func TestListChains(t *testing.T) {
	zksync := &domain.Chain{ID: 324, Name: "zksync", Unsupported: true}
	resolver := &MockChainResolver{}
	resolver.On("List", context.Background()).Return([]*domain.Chain{ethereum, zksync, base})

	uc := usecase.NewListChains(resolver)

	result, err := uc.Run(context.Background(), usecase.ListChainsParams{})
	require.NoError(t, err)
	assert.Equal(t, []*domain.Chain{ethereum, base}, result.Chains)

	result, err = uc.Run(context.Background(), usecase.ListChainsParams{IncludeUnsupported: true})
	require.NoError(t, err)
	assert.Equal(t, []*domain.Chain{ethereum, zksync, base}, result.Chains)

	resolver.AssertExpectations(t)
}
