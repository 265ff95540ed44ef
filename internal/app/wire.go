//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/safevanity/internal/adapters"
	"github.com/trebuchet-org/safevanity/internal/config"
	"github.com/trebuchet-org/safevanity/internal/logging"
	"github.com/trebuchet-org/safevanity/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewSearchVanitySafe,
		usecase.NewComputeSafeAddress,
		usecase.NewListChains,
		usecase.NewDecodeCalldata,

		// App
		NewApp,
	)
	return nil, nil
}
