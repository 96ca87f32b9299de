package app

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/shandysiswandi/simpleauth/internal/pkg/goroutine"
)

// Start launches the HTTP server and returns a channel closed on a termination
// signal or when the listener fails.
func (a *App) Start() <-chan struct{} {
	terminateChan := make(chan struct{})
	var once sync.Once
	terminate := func() { once.Do(func() { close(terminateChan) }) }

	a.goroutine.Go(a.ctx, a.listenTask(a.httpServer.Addr, a.httpServer.ListenAndServe, terminate))

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
		defer signal.Stop(sigint)

		select {
		case sig := <-sigint:
			slog.Info("termination signal received", "signal", sig.String())
		case <-a.ctx.Done():
		}

		terminate()
	}()

	return terminateChan
}

// listenTask runs serve and calls terminate once it returns or panics. Any
// failure other than a closed server is kept for Stop.
func (a *App) listenTask(addr string, serve func() error, terminate func()) func(context.Context) error {
	return func(context.Context) error {
		defer terminate()

		slog.Info("http server listening", "address", addr)

		err := serve()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		if errors.Is(err, syscall.EADDRINUSE) {
			slog.Error("http server address already in use", "address", addr, "error", err)
		} else {
			slog.Error("failed to listen and serve http server", "error", err)
		}
		a.listenErr.Store(err)

		return err
	}
}

// Serve runs the HTTP server on the provided listener for tests.
func (a *App) Serve(l net.Listener) <-chan error {
	errChan := make(chan error, 1)

	go func() {
		errChan <- a.httpServer.Serve(l)
		close(errChan)
	}()

	return errChan
}

// Addr returns the configured listen address.
func (a *App) Addr() string {
	return a.httpServer.Addr
}

// Stop gracefully shuts down the server and closes resources. It returns the
// listener failure or panic, if any, joined with shutdown errors.
func (a *App) Stop(ctx context.Context) error {
	if !a.stopped.CompareAndSwap(false, true) {
		return nil
	}

	errs := []error{a.listenErr.Load()}

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to close resources", "name", "HTTP Server", "error", err)
		errs = append(errs, err)
	}

	if a.cancel != nil {
		a.cancel()
	}

	slog.InfoContext(ctx, "waiting for all goroutine to finish")
	if err := a.goroutine.Wait(); err != nil {
		slog.ErrorContext(ctx, "error from goroutines executions", "error", err)
		if errors.Is(err, goroutine.ErrPanic) {
			errs = append(errs, goroutine.ErrPanic)
		}
	}
	slog.InfoContext(ctx, "all goroutines have finished")

	for _, closer := range a.closers {
		if err := closer.fn(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to close resources", "name", closer.name, "error", err)
			errs = append(errs, err)
		}
	}

	err := errors.Join(errs...)
	if err == nil {
		slog.InfoContext(ctx, "application gracefully shutdown")
	}
	return err
}
