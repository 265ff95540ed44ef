package usecase

import (
	"context"

	"github.com/trebuchet-org/safevanity/internal/domain"
)

// ChainResolver resolves chains and their Safe deployments
type ChainResolver interface {
	// Resolve looks up a chain by short name or chain ID
	Resolve(ctx context.Context, name string) (*domain.Chain, error)
	// List returns all known chains
	List(ctx context.Context) []*domain.Chain
}

// Confirmer asks the user before starting long running work
type Confirmer interface {
	Confirm(ctx context.Context, message string) (bool, error)
}

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Message string
	Spinner bool
}

// Progress stages reported by the search
const (
	StageSearching = "searching"
	StageVerifying = "verifying"
	StageCompleted = "completed"
)

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	// Info and Error print a message without disturbing a running spinner
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}
