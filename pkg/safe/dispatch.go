package safe

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// errFound stops the remaining workers once one of them found a match.
var errFound = errors.New("match found")

// Dispatcher runs a vanity search on a pool of workers, each searching its
// own clone of the template Safe.
type Dispatcher struct {
	// Workers is the number of workers. Zero or less uses one worker per
	// logical CPU.
	Workers int
	// Logger receives worker lifecycle events. Nil discards them.
	Logger *slog.Logger
}

// Result is the outcome of a successful search.
type Result struct {
	// Safe is the winning clone, with its salt nonce set.
	Safe *Safe
	// Attempts is the number of nonces the winning worker tried.
	Attempts uint64
	// Worker is the index of the winning worker.
	Worker int
	// Elapsed is the wall time of the search.
	Elapsed time.Duration
}

// WorkerCount returns the number of workers Run starts.
func (d Dispatcher) WorkerCount() int {
	if d.Workers <= 0 {
		return runtime.NumCPU()
	}
	return d.Workers
}

// Run searches for a salt nonce whose creation address matches prefix and
// blocks until one worker finds it or ctx is done. The template is never
// modified. All workers have returned when Run returns.
func (d Dispatcher) Run(ctx context.Context, template *Safe, prefix Prefix) (*Result, error) {
	log := d.logger()
	workers := d.WorkerCount()
	start := time.Now()

	log.Debug("starting search", "prefix", prefix, "workers", workers)

	if workers == 1 {
		s := template.Clone()
		attempts, err := Search(ctx, s, prefix)
		if err != nil {
			return nil, err
		}
		return &Result{Safe: s, Attempts: attempts, Elapsed: time.Since(start)}, nil
	}

	found := make(chan *Result, 1)
	g, gctx := errgroup.WithContext(ctx)
	for i := range workers {
		s := template.Clone()
		g.Go(func() error {
			attempts, err := Search(gctx, s, prefix)
			if err != nil {
				log.Debug("worker stopped", "worker", i, "attempts", attempts)
				return err
			}
			select {
			case found <- &Result{Safe: s, Attempts: attempts, Worker: i}:
				log.Debug("worker found match", "worker", i, "attempts", attempts)
			default:
			}
			return errFound
		})
	}

	err := g.Wait()
	select {
	case res := <-found:
		res.Elapsed = time.Since(start)
		return res, nil
	default:
	}
	return nil, err
}

func (d Dispatcher) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
