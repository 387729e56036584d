package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"time"

	"github.com/DMarby/unsplash-tool/internal/api"
	"github.com/DMarby/unsplash-tool/internal/cmd"
	"github.com/DMarby/unsplash-tool/internal/health"
	"github.com/DMarby/unsplash-tool/internal/hmac"
	"github.com/DMarby/unsplash-tool/internal/logger"
	"github.com/DMarby/unsplash-tool/internal/metrics"
	"github.com/DMarby/unsplash-tool/internal/tool"
	"github.com/DMarby/unsplash-tool/internal/tracing"
	"github.com/DMarby/unsplash-tool/internal/unsplash"

	"github.com/jamiealquiza/envy"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const serviceName = "unsplash-tool"

// Comandline flags
var (
	// Global
	listen        = flag.String("listen", ":8080", "listen address")
	metricsListen = flag.String("metrics-listen", "127.0.0.1:8082", "metrics listen address")
	loglevel      = zap.LevelFlag("log-level", zap.InfoLevel, "log level (default \"info\") (debug, info, warn, error, dpanic, panic, fatal)")

	// Unsplash
	accessKey      = flag.String("access-key", "", "unsplash access key, used when the host does not supply one")
	apiBaseURL     = flag.String("api-base-url", unsplash.DefaultBaseURL, "unsplash api base url")
	requestTimeout = flag.Duration("request-timeout", 30*time.Second, "timeout for requests to the unsplash api")

	// Health
	healthCheckInterval = flag.Duration("health-check-interval", health.DefaultInterval, "how often to check that the unsplash api is reachable")

	// HMAC
	hmacKey = flag.String("hmac-key", "", "hmac key the host uses to sign requests, signatures are not required when empty")

	// Tracing
	enableTracing = flag.Bool("tracing", false, "export traces over otlp, configured with the OTEL_EXPORTER_OTLP_* environment variables")
)

func main() {
	// Parse environment variables
	envy.Parse("UNSPLASH")

	// Parse commandline flags
	flag.Parse()

	// Initialize the logger
	log := logger.New(*loglevel)
	defer log.Sync()

	// Set GOMAXPROCS
	maxprocs.Set(maxprocs.Logger(log.Infof))

	// Set up context for shutting down
	shutdownCtx, shutdown := context.WithCancel(context.Background())
	defer shutdown()

	// Initialize tracing
	tracer := tracing.Noop(log, serviceName)
	if *enableTracing {
		var err error
		tracer, err = tracing.New(shutdownCtx, log, serviceName)
		if err != nil {
			log.Fatalf("error initializing tracing: %s", err)
		}
	}
	defer tracer.Shutdown(context.Background())

	if *accessKey == "" {
		log.Warnf("no access key configured, requests must supply the %s header", api.CredentialHeader)
	}

	// Initialize the unsplash client
	client := &unsplash.Client{
		HTTPClient: &http.Client{
			Timeout:   *requestTimeout,
			Transport: metrics.Transport(tracer.Transport(http.DefaultTransport)),
		},
		BaseURL: *apiBaseURL,
		Log:     log,
		Tracer:  tracer,
	}

	// Initialize and start the health checker
	checker := &health.Checker{
		Ctx:      shutdownCtx,
		Provider: client,
		Interval: *healthCheckInterval,
		Log:      log,
	}
	go checker.Run()

	// Start and listen on http
	api := &api.API{
		Tools: &tool.Toolset{
			Provider: client,
			Log:      log,
		},
		Credential:     unsplash.Credential(*accessKey),
		HealthChecker:  checker,
		Log:            log,
		Tracer:         tracer,
		HandlerTimeout: cmd.HandlerTimeout,
		HMAC: &hmac.HMAC{
			Key: []byte(*hmacKey),
		},
	}
	server := &http.Server{
		Addr:         *listen,
		Handler:      api.Router(),
		ReadTimeout:  cmd.ReadTimeout,
		WriteTimeout: cmd.WriteTimeout,
		ErrorLog:     logger.NewHTTPErrorLog(log),
	}

	g, ctx := errgroup.WithContext(shutdownCtx)

	g.Go(func() error {
		return cmd.Serve(ctx, log, server)
	})

	g.Go(func() error {
		return metrics.Serve(ctx, log, checker, *metricsListen)
	})

	// Wait for shutdown or error
	g.Go(func() error {
		return cmd.WaitForInterrupt(ctx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, cmd.ErrCanceled) {
		log.Infof("shutting down: %s", err)
	}
}
