package interactive

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/safevanity/internal/adapters/chains"
	"github.com/trebuchet-org/safevanity/internal/domain"
	"github.com/trebuchet-org/safevanity/internal/domain/config"
	"github.com/trebuchet-org/safevanity/internal/usecase"
)

// selectFunc runs a selection prompt and returns the selected index
type selectFunc func(label string, items []string) (int, error)

// ChainSelectorAdapter resolves chains through the registry and lets the
// user pick one of the suggestions when a chain name is unknown.
type ChainSelectorAdapter struct {
	config   *config.RuntimeConfig
	registry *chains.Registry
	selector selectFunc
}

// NewChainSelectorAdapter creates a new chain selector adapter
func NewChainSelectorAdapter(cfg *config.RuntimeConfig, registry *chains.Registry) *ChainSelectorAdapter {
	return &ChainSelectorAdapter{
		config:   cfg,
		registry: registry,
		selector: promptSelect,
	}
}

// Resolve looks up a chain by short name or chain ID
func (s *ChainSelectorAdapter) Resolve(ctx context.Context, name string) (*domain.Chain, error) {
	chain, err := s.registry.Resolve(ctx, name)

	var unknown domain.UnknownChainError
	if err == nil || s.config.NonInteractive || !errors.As(err, &unknown) || len(unknown.Suggestions) == 0 {
		return chain, err
	}

	index, selErr := s.selector(fmt.Sprintf("Unknown chain %q, select a chain", name), unknown.Suggestions)
	if selErr != nil {
		return nil, err
	}
	return s.registry.Resolve(ctx, unknown.Suggestions[index])
}

// List returns all known chains
func (s *ChainSelectorAdapter) List(ctx context.Context) []*domain.Chain {
	return s.registry.List(ctx)
}

func promptSelect(label string, items []string) (int, error) {
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, Enter to select"),
	}

	prompt := promptui.Select{
		Label:     label,
		Items:     items,
		Templates: templates,
		Size:      10,
		Searcher:  fuzzySearcher(items),
	}

	index, _, err := prompt.Run()
	if err != nil {
		return 0, fmt.Errorf("selection cancelled: %w", err)
	}
	return index, nil
}

// fuzzySearcher matches items by substring or fuzzy match, ignoring case
func fuzzySearcher(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])
		if strings.Contains(item, input) {
			return true
		}
		return len(fuzzy.Find(input, []string{item})) > 0
	}
}

var _ usecase.ChainResolver = (*ChainSelectorAdapter)(nil)
