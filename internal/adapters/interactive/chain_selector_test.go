package interactive

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/safevanity/internal/adapters/chains"
	"github.com/trebuchet-org/safevanity/internal/domain"
	"github.com/trebuchet-org/safevanity/internal/domain/config"
)

func newSelector(t *testing.T, cfg *config.RuntimeConfig, selector selectFunc) *ChainSelectorAdapter {
	t.Helper()
	registry, err := chains.NewRegistry(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	s := NewChainSelectorAdapter(cfg, registry)
	s.selector = selector
	return s
}

func TestChainSelectorAdapter(t *testing.T) {
	ctx := context.Background()

	t.Run("known chain does not prompt", func(t *testing.T) {
		s := newSelector(t, &config.RuntimeConfig{}, func(string, []string) (int, error) {
			t.Fatal("unexpected prompt")
			return 0, nil
		})

		chain, err := s.Resolve(ctx, "base")
		require.NoError(t, err)
		assert.Equal(t, domain.ChainID(8453), chain.ID)
	})

	t.Run("unknown chain prompts with suggestions", func(t *testing.T) {
		var offered []string
		s := newSelector(t, &config.RuntimeConfig{}, func(_ string, items []string) (int, error) {
			offered = items
			for i, item := range items {
				if item == "base" {
					return i, nil
				}
			}
			return 0, errors.New("base not offered")
		})

		chain, err := s.Resolve(ctx, "bse")
		require.NoError(t, err)
		assert.Contains(t, offered, "base")
		assert.Equal(t, domain.ChainID(8453), chain.ID)
	})

	t.Run("cancelled selection returns lookup error", func(t *testing.T) {
		s := newSelector(t, &config.RuntimeConfig{}, func(string, []string) (int, error) {
			return 0, errors.New("cancelled")
		})

		_, err := s.Resolve(ctx, "bse")
		require.ErrorIs(t, err, domain.ErrUnknownChain)
	})

	t.Run("non-interactive does not prompt", func(t *testing.T) {
		s := newSelector(t, &config.RuntimeConfig{NonInteractive: true}, func(string, []string) (int, error) {
			t.Fatal("unexpected prompt")
			return 0, nil
		})

		_, err := s.Resolve(ctx, "bse")
		require.ErrorIs(t, err, domain.ErrUnknownChain)
	})
}

func TestFuzzySearcher(t *testing.T) {
	items := []string{"arbitrum", "base", "optimism"}
	search := fuzzySearcher(items)

	assert.True(t, search("", 0))
	assert.True(t, search("ARB", 0))
	assert.True(t, search("opt", 2))
	assert.True(t, search("bs", 1))
	assert.False(t, search("xyz", 1))
}

func TestConfirmerNonInteractive(t *testing.T) {
	c := NewConfirmerAdapter(&config.RuntimeConfig{NonInteractive: true})

	ok, err := c.Confirm(context.Background(), "continue")
	require.NoError(t, err)
	assert.True(t, ok)
}
