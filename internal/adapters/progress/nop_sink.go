package progress

import (
	"io"

	"github.com/trebuchet-org/safevanity/internal/domain/config"
	"github.com/trebuchet-org/safevanity/internal/usecase"
)

// NewNopSink creates a progress sink that discards all events
func NewNopSink() usecase.ProgressSink {
	return usecase.NopProgress{}
}

// NewSink picks the progress sink for the runtime configuration. Machine
// readable and quiet output never show a spinner.
func NewSink(cfg *config.RuntimeConfig, out io.Writer) usecase.ProgressSink {
	if cfg.Quiet || cfg.Params || cfg.NonInteractive || cfg.Format != config.FormatText {
		return NewNopSink()
	}
	return NewSpinnerSink(out)
}
