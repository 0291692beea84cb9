package pkgroutine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"
	"sync"
)

// DefaultMaxGoroutine is used when NewManager receives a non-positive limit.
const DefaultMaxGoroutine int = 10

// Manager runs tasks with at most a fixed number in flight.
type Manager struct {
	mu   sync.Mutex
	errs []error
	wg   sync.WaitGroup
	sema chan struct{}
}

func NewManager(maxGoroutine int) *Manager {
	if maxGoroutine < 1 {
		maxGoroutine = DefaultMaxGoroutine
	}

	return &Manager{sema: make(chan struct{}, maxGoroutine)}
}

// Go blocks until a slot is free, then runs f in a new goroutine. If ctx ends
// first, f is never started and ctx's error is recorded. A panic in f is
// recorded as an error.
func (g *Manager) Go(ctx context.Context, f func(ctx context.Context) error) {
	select {
	case g.sema <- struct{}{}:
	case <-ctx.Done():
		slog.WarnContext(ctx, "goroutine canceled before start", "because", ctx.Err())
		g.record(ctx.Err())
		return
	}

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		defer func() { <-g.sema }()
		defer func() {
			if rvr := recover(); rvr != nil {
				slog.ErrorContext(ctx, "panic occurred in goroutine", "because", rvr, "stack", string(debug.Stack()))
				g.record(fmt.Errorf("goroutine panic: %v", rvr))
			}
		}()

		g.record(f(ctx))
	}()
}

// Wait blocks until every started task has returned.
func (g *Manager) Wait() error {
	g.wg.Wait()

	g.mu.Lock()
	defer g.mu.Unlock()
	return errors.Join(g.errs...)
}

func (g *Manager) record(err error) {
	if err == nil {
		return
	}
	g.mu.Lock()
	g.errs = append(g.errs, err)
	g.mu.Unlock()
}

// CloseAll closes every closer concurrently and returns the joined errors,
// each prefixed with the closer's name.
func CloseAll(ctx context.Context, closers map[string]io.Closer) error {
	mgr := NewManager(len(closers))
	for name, c := range closers {
		name, c := name, c
		mgr.Go(ctx, func(context.Context) error {
			if err := c.Close(); err != nil {
				return fmt.Errorf("close %s: %w", name, err)
			}
			return nil
		})
	}
	return mgr.Wait()
}
