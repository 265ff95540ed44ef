// Package chains is the registry of chains with known Safe deployments.
package chains

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"github.com/trebuchet-org/safevanity/internal/domain"
	"github.com/trebuchet-org/safevanity/internal/domain/config"
	"github.com/trebuchet-org/safevanity/internal/usecase"
)

// maxSuggestions bounds the "did you mean" list for unknown chain names.
const maxSuggestions = 3

// Registry resolves chains by short name or chain ID.
type Registry struct {
	chains map[domain.ChainID]*domain.Chain
	names  map[string]domain.ChainID
	log    *slog.Logger
}

// NewRegistry creates a registry with the built-in chains, extended with the
// chains of the configured deployments file.
func NewRegistry(cfg *config.RuntimeConfig, log *slog.Logger) (*Registry, error) {
	r := &Registry{
		chains: make(map[domain.ChainID]*domain.Chain, len(builtinChains)+1),
		names:  make(map[string]domain.ChainID, len(builtinChains)+1),
		log:    log.With("component", "chains"),
	}

	for _, c := range builtinChains {
		explorer := c.explorer
		r.add(&domain.Chain{
			ID:         c.id,
			Name:       c.name,
			Deployment: c.deployment,
			Explorer:   &explorer,
			Singleton:  c.singleton,
		})
	}
	zkSync := zkSyncEra
	r.add(&zkSync)

	if cfg.DeploymentsFile != "" {
		extra, err := LoadFile(cfg.DeploymentsFile)
		if err != nil {
			return nil, err
		}
		for _, c := range extra {
			if _, ok := r.chains[c.ID]; ok {
				r.log.Debug("overriding built-in chain", "chain", c.ID, "file", cfg.DeploymentsFile)
			}
			r.add(c)
		}
		r.log.Debug("loaded deployments file", "file", cfg.DeploymentsFile, "chains", len(extra))
	}

	return r, nil
}

func (r *Registry) add(c *domain.Chain) {
	if old, ok := r.chains[c.ID]; ok && old.Name != "" && old.Name != c.Name {
		delete(r.names, old.Name)
	}
	r.chains[c.ID] = c
	if c.Name != "" {
		r.names[c.Name] = c.ID
	}
}

// Resolve looks up a chain by short name, decimal ID or 0x-prefixed hex ID.
//
// Chain IDs that are not in the registry resolve to a chain without a
// deployment. Unknown names fail with a domain.UnknownChainError.
func (r *Registry) Resolve(ctx context.Context, name string) (*domain.Chain, error) {
	key := strings.ToLower(strings.TrimSpace(name))

	id, ok := r.names[key]
	if !ok {
		parsed, err := domain.ParseChainID(key)
		if err != nil {
			return nil, domain.UnknownChainError{Name: name, Suggestions: r.suggest(key)}
		}
		id = parsed
	}

	chain, ok := r.chains[id]
	if !ok {
		r.log.Debug("chain has no known deployment", "chain", id)
		return &domain.Chain{ID: id, Singleton: domain.SingletonSafeL2}, nil
	}
	if chain.Unsupported {
		return nil, fmt.Errorf("%w: %s (%d)", domain.ErrUnsupportedChain, chain.DisplayName(), chain.ID)
	}
	return chain, nil
}

// List returns all registered chains ordered by chain ID.
func (r *Registry) List(ctx context.Context) []*domain.Chain {
	chains := lo.Values(r.chains)
	slices.SortFunc(chains, func(a, b *domain.Chain) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return chains
}

func (r *Registry) suggest(name string) []string {
	if name == "" {
		return nil
	}
	names := lo.Keys(r.names)
	slices.Sort(names)

	matches := fuzzy.Find(name, names)
	suggestions := make([]string, 0, maxSuggestions)
	for _, m := range matches {
		if len(suggestions) == maxSuggestions {
			break
		}
		suggestions = append(suggestions, m.Str)
	}
	return suggestions
}

// Ensure the adapter implements the interface
var _ usecase.ChainResolver = (*Registry)(nil)
