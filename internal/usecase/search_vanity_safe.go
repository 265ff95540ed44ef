package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/trebuchet-org/safevanity/internal/domain"
	"github.com/trebuchet-org/safevanity/internal/domain/config"
	"github.com/trebuchet-org/safevanity/pkg/safe"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LongSearchNibbles is the prefix length from which the user is asked to
// confirm the search.
const LongSearchNibbles = 10

// SearchVanitySafeParams contains parameters for searching a vanity Safe
type SearchVanitySafeParams struct {
	Safe   SafeParams
	Prefix string
}

// SearchVanitySafeResult contains the result of a vanity search
type SearchVanitySafeResult struct {
	SafeDeployment
	Prefix   safe.Prefix
	Attempts uint64
	Workers  int
	Elapsed  time.Duration
}

// SearchVanitySafe is a use case for mining a Safe salt nonce whose proxy
// address starts with a prefix
type SearchVanitySafe struct {
	config    *config.RuntimeConfig
	chains    ChainResolver
	confirmer Confirmer
	progress  ProgressSink
	log       *slog.Logger
}

// NewSearchVanitySafe creates a new SearchVanitySafe use case
func NewSearchVanitySafe(
	cfg *config.RuntimeConfig,
	chains ChainResolver,
	confirmer Confirmer,
	progress ProgressSink,
	log *slog.Logger,
) *SearchVanitySafe {
	return &SearchVanitySafe{
		config:    cfg,
		chains:    chains,
		confirmer: confirmer,
		progress:  progress,
		log:       log.With("component", "search"),
	}
}

// Run executes the use case
func (uc *SearchVanitySafe) Run(ctx context.Context, params SearchVanitySafeParams) (*SearchVanitySafeResult, error) {
	prefix, err := safe.ParsePrefix(params.Prefix)
	if err != nil {
		return nil, err
	}

	chain, cfg, err := resolveConfiguration(ctx, uc.chains, uc.config.Chain, params.Safe)
	if err != nil {
		return nil, err
	}

	expected := message.NewPrinter(language.English).Sprintf("%.0f", prefix.ExpectedAttempts())
	if prefix.Nibbles() >= LongSearchNibbles {
		ok, err := uc.confirmer.Confirm(ctx, fmt.Sprintf("Prefix %s needs about %s attempts, continue", prefix, expected))
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrAborted
		}
	}

	dispatcher := safe.Dispatcher{Workers: uc.config.Threads, Logger: uc.log}
	uc.log.Info("searching", "chain", chain.DisplayName(), "prefix", prefix, "expected", expected, "workers", dispatcher.WorkerCount())
	uc.progress.Info(fmt.Sprintf("Expecting about %s attempts on %d workers", expected, dispatcher.WorkerCount()))
	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageSearching,
		Message: fmt.Sprintf("Searching for %s on %s", prefix, chain.DisplayName()),
		Spinner: true,
	})

	found, err := dispatcher.Run(ctx, safe.New(cfg), prefix)
	if err != nil {
		uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
		if errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("no address with prefix %s found before the timeout: %w", prefix, err)
		} else {
			err = fmt.Errorf("search for prefix %s: %w", prefix, err)
		}
		uc.progress.Error(err.Error())
		return nil, err
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageVerifying, Message: "Verifying transaction", Spinner: true})
	err = verifyTransaction(found.Safe)
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
	if err != nil {
		uc.progress.Error(err.Error())
		return nil, err
	}

	uc.log.Info("found", "address", found.Safe.CreationAddress(), "attempts", found.Attempts, "worker", found.Worker, "elapsed", found.Elapsed)

	return &SearchVanitySafeResult{
		SafeDeployment: SafeDeployment{
			Chain:    chain,
			Safe:     found.Safe,
			Explorer: explorerFor(chain, uc.config.Explorer),
		},
		Prefix:   prefix,
		Attempts: found.Attempts,
		Workers:  dispatcher.WorkerCount(),
		Elapsed:  found.Elapsed,
	}, nil
}

// verifyTransaction decodes the deployment transaction of s and checks that
// it deploys a proxy at the address s reports.
func verifyTransaction(s *safe.Safe) error {
	tx := s.Transaction()
	decoded, err := safe.DecodeTransaction(tx.Calldata)
	if err != nil {
		return fmt.Errorf("verify transaction: %w", err)
	}
	opts, err := decoded.Options(tx.To, s.Configuration().Proxy.InitCode)
	if err != nil {
		return fmt.Errorf("verify transaction: %w", err)
	}
	cfg, err := safe.NewConfiguration(opts)
	if err != nil {
		return fmt.Errorf("verify transaction: %w", err)
	}

	rebuilt := safe.New(cfg)
	rebuilt.SetSaltNonce(decoded.SaltNonce)
	if got, want := rebuilt.CreationAddress(), s.CreationAddress(); got != want {
		return fmt.Errorf("verify transaction: calldata deploys %s instead of %s", got, want)
	}
	return nil
}
