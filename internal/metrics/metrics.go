package metrics

import (
	"context"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/DMarby/unsplash-tool/internal/handler"
	"github.com/DMarby/unsplash-tool/internal/health"
	"github.com/DMarby/unsplash-tool/internal/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 5 * time.Second

// Router returns the handler serving metrics, healthchecks and profiling
func Router(healthChecker *health.Checker) http.Handler {
	router := http.NewServeMux()
	router.Handle("/metrics", promhttp.Handler())
	router.Handle("/health", handler.Health(healthChecker))

	router.HandleFunc("/debug/pprof/", pprof.Index)
	router.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	router.HandleFunc("/debug/pprof/profile", pprof.Profile)
	router.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	router.HandleFunc("/debug/pprof/trace", pprof.Trace)

	return router
}

// Serve runs an http server for metrics and healthchecks until the context is done
func Serve(ctx context.Context, log *logger.Logger, healthChecker *health.Checker, listenAddress string) error {
	server := &http.Server{
		Addr:              listenAddress,
		Handler:           Router(healthChecker),
		ReadHeaderTimeout: 5 * time.Second,
		ErrorLog:          logger.NewHTTPErrorLog(log),
	}

	errs := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errs <- err
		}
		close(errs)
	}()

	log.Infof("metrics http server listening on %s", listenAddress)

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Warnf("error shutting down metrics http server: %s", err)
	}

	return nil
}
