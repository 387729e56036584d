package metrics_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DMarby/unsplash-tool/internal/health"
	"github.com/DMarby/unsplash-tool/internal/logger"
	"github.com/DMarby/unsplash-tool/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type pinger struct{}

func (pinger) Ping(ctx context.Context) error {
	return nil
}

func TestRouter(t *testing.T) {
	log := logger.New(zap.FatalLevel)
	defer log.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	checker := &health.Checker{Ctx: ctx, Provider: pinger{}, Log: log}
	checker.Run()

	ts := httptest.NewServer(metrics.Router(checker))
	defer ts.Close()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer upstream.Close()

	client := &http.Client{Transport: metrics.Transport(nil)}
	res, err := client.Get(upstream.URL + "/search/photos")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusTeapot, res.StatusCode)

	res, err = http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, string(body), `unsplash_requests_total{code="418",endpoint="/search/photos"} 1`)

	res, err = http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer res.Body.Close()

	body, err = io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{"healthy":true,"provider":"healthy"}`, string(body))
}

func TestTransportError(t *testing.T) {
	failing := metrics.Transport(roundTripper(func(r *http.Request) (*http.Response, error) {
		return nil, errors.New("dial failed")
	}))

	r := httptest.NewRequest(http.MethodGet, "http://api.unsplash.test/photos", nil)
	_, err := failing.RoundTrip(r)
	assert.EqualError(t, err, "dial failed")
}

type roundTripper func(*http.Request) (*http.Response, error)

func (f roundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}
