package adapters

import (
	"io"
	"os"

	"github.com/google/wire"
	"github.com/trebuchet-org/safevanity/internal/adapters/chains"
	"github.com/trebuchet-org/safevanity/internal/adapters/interactive"
	"github.com/trebuchet-org/safevanity/internal/adapters/progress"
	"github.com/trebuchet-org/safevanity/internal/domain/config"
	"github.com/trebuchet-org/safevanity/internal/usecase"
)

// ProvideProgressSink provides the progress sink for the runtime config.
// Progress goes to stderr so stdout only carries the result.
func ProvideProgressSink(cfg *config.RuntimeConfig) usecase.ProgressSink {
	return progress.NewSink(cfg, ProvideProgressWriter())
}

// ProvideProgressWriter provides the writer progress is reported to
func ProvideProgressWriter() io.Writer {
	return os.Stderr
}

// ChainSet provides the chain registry
var ChainSet = wire.NewSet(
	chains.NewRegistry,
	interactive.NewChainSelectorAdapter,
	wire.Bind(new(usecase.ChainResolver), new(*interactive.ChainSelectorAdapter)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewConfirmerAdapter,
	wire.Bind(new(usecase.Confirmer), new(*interactive.ConfirmerAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	ProvideProgressSink,

	ChainSet,
	InteractiveSet,
)
