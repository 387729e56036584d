package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	upstreamRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "unsplash_requests_total",
		Help: "Requests made to the Unsplash API by endpoint and status code",
	}, []string{"endpoint", "code"})

	upstreamRequestDurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "unsplash_request_duration_seconds",
		Help:    "Duration of requests made to the Unsplash API by endpoint",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{"endpoint"})
)

// Transport instruments requests made through the given round tripper
// Failed requests are counted with the code "error"
func Transport(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		start := time.Now()
		res, err := next.RoundTrip(r)

		endpoint := r.URL.Path
		if endpoint == "" {
			endpoint = "/"
		}

		code := "error"
		if err == nil {
			code = strconv.Itoa(res.StatusCode)
		}

		upstreamRequestsTotal.WithLabelValues(endpoint, code).Inc()
		upstreamRequestDurationSeconds.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

		return res, err
	})
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}
