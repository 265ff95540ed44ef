package app

import (
	"github.com/trebuchet-org/safevanity/internal/domain/config"
	"github.com/trebuchet-org/safevanity/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Shared dependencies
	Progress usecase.ProgressSink

	// Use cases
	SearchVanitySafe   *usecase.SearchVanitySafe
	ComputeSafeAddress *usecase.ComputeSafeAddress
	ListChains         *usecase.ListChains
	DecodeCalldata     *usecase.DecodeCalldata
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	progress usecase.ProgressSink,
	searchVanitySafe *usecase.SearchVanitySafe,
	computeSafeAddress *usecase.ComputeSafeAddress,
	listChains *usecase.ListChains,
	decodeCalldata *usecase.DecodeCalldata,
) (*App, error) {
	return &App{
		Config:             cfg,
		Progress:           progress,
		SearchVanitySafe:   searchVanitySafe,
		ComputeSafeAddress: computeSafeAddress,
		ListChains:         listChains,
		DecodeCalldata:     decodeCalldata,
	}, nil
}
