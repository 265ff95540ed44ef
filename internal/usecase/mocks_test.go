package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/stretchr/testify/mock"
	"github.com/trebuchet-org/safevanity/internal/adapters/chains"
	"github.com/trebuchet-org/safevanity/internal/domain"
	"github.com/trebuchet-org/safevanity/internal/usecase"
)

// MockChainResolver is a mock implementation of ChainResolver
type MockChainResolver struct {
	mock.Mock
}

func (m *MockChainResolver) Resolve(ctx context.Context, name string) (*domain.Chain, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chain), args.Error(1)
}

func (m *MockChainResolver) List(ctx context.Context) []*domain.Chain {
	args := m.Called(ctx)
	return args.Get(0).([]*domain.Chain)
}

// MockConfirmer is a mock implementation of Confirmer
type MockConfirmer struct {
	mock.Mock
}

func (m *MockConfirmer) Confirm(ctx context.Context, message string) (bool, error) {
	args := m.Called(ctx, message)
	return args.Bool(0), args.Error(1)
}

// MockProgressSink records progress events and messages
type MockProgressSink struct {
	mu     sync.Mutex
	events []usecase.ProgressEvent
	infos  []string
	errors []string
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.infos = append(m.infos, message)
}

func (m *MockProgressSink) Error(message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, message)
}

func (m *MockProgressSink) stages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	stages := make([]string, len(m.events))
	for i, e := range m.events {
		stages[i] = e.Stage
	}
	return stages
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var (
	ethereum = &domain.Chain{
		ID:         1,
		Name:       "eth",
		Deployment: &chains.V141,
		Explorer:   &domain.Explorer{URL: "https://etherscan.io", Selector: domain.EtherscanSelector},
		Singleton:  domain.SingletonSafe,
	}
	base = &domain.Chain{
		ID:         8453,
		Name:       "base",
		Deployment: &chains.V141,
		Explorer:   &domain.Explorer{URL: "https://basescan.org", Selector: domain.EtherscanSelector},
		Singleton:  domain.SingletonSafeL2,
	}
	chiado = &domain.Chain{
		ID:         10200,
		Name:       "chiado",
		Deployment: &chains.V130,
		Explorer:   &domain.Explorer{URL: "https://gnosis-chiado.blockscout.com", Selector: domain.BlockscoutSelector},
		Singleton:  domain.SingletonSafeL2,
	}
	devnet = &domain.Chain{ID: 31337, Singleton: domain.SingletonSafeL2}
)

func newResolver() *MockChainResolver {
	r := &MockChainResolver{}
	r.On("Resolve", mock.Anything, "eth").Return(ethereum, nil).Maybe()
	r.On("Resolve", mock.Anything, "base").Return(base, nil).Maybe()
	r.On("Resolve", mock.Anything, "chiado").Return(chiado, nil).Maybe()
	r.On("Resolve", mock.Anything, "31337").Return(devnet, nil).Maybe()
	return r
}
