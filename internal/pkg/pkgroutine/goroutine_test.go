package pkgroutine

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewManagerDefaultMax(t *testing.T) {
	mgr := NewManager(0)
	if got := cap(mgr.sema); got != DefaultMaxGoroutine {
		t.Fatalf("expected cap %d, got %d", DefaultMaxGoroutine, got)
	}
}

func TestManagerCollectsErrors(t *testing.T) {
	mgr := NewManager(2)
	errOne := errors.New("one")
	errTwo := errors.New("two")

	mgr.Go(context.Background(), func(context.Context) error { return errOne })
	mgr.Go(context.Background(), func(context.Context) error { return nil })
	mgr.Go(context.Background(), func(context.Context) error { return errTwo })

	joined := mgr.Wait()
	if !errors.Is(joined, errOne) || !errors.Is(joined, errTwo) {
		t.Fatalf("expected both errors, got %v", joined)
	}
}

func TestManagerLimitsConcurrency(t *testing.T) {
	mgr := NewManager(2)
	var inFlight, peak atomic.Int32

	for i := 0; i < 8; i++ {
		mgr.Go(context.Background(), func(context.Context) error {
			n := inFlight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			inFlight.Add(-1)
			return nil
		})
	}

	if err := mgr.Wait(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := peak.Load(); got > 2 {
		t.Fatalf("expected at most 2 tasks in flight, saw %d", got)
	}
}

func TestManagerRecordsPanics(t *testing.T) {
	mgr := NewManager(1)
	mgr.Go(context.Background(), func(context.Context) error {
		panic("boom")
	})

	err := mgr.Wait()
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected panic to be reported, got %v", err)
	}
}

func TestManagerCanceledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mgr := NewManager(1)
	mgr.sema <- struct{}{}

	ran := false
	mgr.Go(ctx, func(context.Context) error {
		ran = true
		return nil
	})

	<-mgr.sema
	if err := mgr.Wait(); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if ran {
		t.Fatalf("task should not have run")
	}
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestCloseAll(t *testing.T) {
	errDB := errors.New("db gone")
	var closed atomic.Int32

	err := CloseAll(context.Background(), map[string]io.Closer{
		"config": closerFunc(func() error { closed.Add(1); return nil }),
		"db":     closerFunc(func() error { closed.Add(1); return errDB }),
	})

	if closed.Load() != 2 {
		t.Fatalf("expected both closers to run, got %d", closed.Load())
	}
	if !errors.Is(err, errDB) || !strings.Contains(err.Error(), "close db") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCloseAllEmpty(t *testing.T) {
	if err := CloseAll(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
