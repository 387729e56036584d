package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DMarby/unsplash-tool/internal/logger"
)

// Http timeouts
// The handler timeout leaves room for a full upstream request timeout
const (
	ReadTimeout     = 5 * time.Second
	WriteTimeout    = time.Minute
	HandlerTimeout  = 45 * time.Second
	ShutdownTimeout = 30 * time.Second
)

// ErrCanceled is returned by WaitForInterrupt when the context is done before a signal arrives
var ErrCanceled = errors.New("canceled")

// WaitForInterrupt waits for an interrupt
func WaitForInterrupt(ctx context.Context) error {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(c)

	select {
	case sig := <-c:
		return fmt.Errorf("received signal %s", sig)
	case <-ctx.Done():
		return ErrCanceled
	}
}

// Serve runs the server until the context is done, then shuts it down gracefully
func Serve(ctx context.Context, log *logger.Logger, server *http.Server) error {
	errs := make(chan error, 1)
	go func() {
		errs <- server.ListenAndServe()
	}()

	log.Infof("http server listening on %s", server.Addr)

	select {
	case err := <-errs:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Warnf("error shutting down: %s", err)
	}

	return nil
}
