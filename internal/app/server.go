package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/shandysiswandi/gofault/internal/pkg/pkgroutine"
)

func (a *App) Start() <-chan struct{} {
	terminateChan := make(chan struct{})

	a.goroutine.Go(a.ctx, func(ctx context.Context) error {
		slog.InfoContext(ctx, "http server listening", "address", a.httpServer.Addr)

		if err := a.httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to listen and serve http server", "error", err)
			os.Exit(1)
		}
		return nil
	})

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)

		<-sigint

		a.cancel()
		close(terminateChan)

		slog.Info("termination signal received")
	}()

	return terminateChan
}

func (a *App) Stop(ctx context.Context) {
	a.cancel()

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to close resources", "name", "HTTP Server", "error", err)
	}

	slog.InfoContext(ctx, "waiting for all goroutine to finish")
	if err := a.goroutine.Wait(); err != nil {
		slog.ErrorContext(ctx, "error from goroutines executions", "error", err)
	}

	if err := pkgroutine.CloseAll(ctx, a.closers); err != nil {
		slog.ErrorContext(ctx, "failed to close resources", "error", err)
	}

	slog.InfoContext(ctx, "application gracefully shutdown")
}
