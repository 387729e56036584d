package cmd_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/DMarby/unsplash-tool/internal/cmd"
	"github.com/DMarby/unsplash-tool/internal/logger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestWaitForInterruptCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, cmd.WaitForInterrupt(ctx), cmd.ErrCanceled)
}

func TestServe(t *testing.T) {
	log := logger.New(zap.FatalLevel)
	defer log.Sync()

	ctx, cancel := context.WithCancel(context.Background())

	server := &http.Server{
		Addr:    "127.0.0.1:0",
		Handler: http.NotFoundHandler(),
	}

	done := make(chan error, 1)
	go func() {
		done <- cmd.Serve(ctx, log, server)
	}()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServeListenError(t *testing.T) {
	log := logger.New(zap.FatalLevel)
	defer log.Sync()

	server := &http.Server{Addr: "256.0.0.1:http"}
	assert.Error(t, cmd.Serve(context.Background(), log, server))
}
