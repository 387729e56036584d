package api

import (
	"net/http"
	"time"

	"github.com/DMarby/unsplash-tool/internal/handler"
	"github.com/DMarby/unsplash-tool/internal/health"
	"github.com/DMarby/unsplash-tool/internal/hmac"
	"github.com/DMarby/unsplash-tool/internal/logger"
	"github.com/DMarby/unsplash-tool/internal/tool"
	"github.com/DMarby/unsplash-tool/internal/tracing"
	"github.com/DMarby/unsplash-tool/internal/unsplash"
	"github.com/gorilla/mux"
)

// CredentialHeader lets the host runtime supply the access key per request
const CredentialHeader = "X-Unsplash-Access-Key"

// API is a http api
type API struct {
	Tools          *tool.Toolset
	Credential     unsplash.Credential
	HealthChecker  *health.Checker
	Log            *logger.Logger
	Tracer         *tracing.Tracer
	HandlerTimeout time.Duration
	HMAC           *hmac.HMAC
}

// Utility methods for logging
func (a *API) logError(r *http.Request, message string, err error) {
	a.Log.Errorw(message, handler.LogFields(r, "error", err)...)
}

// Router returns a http router
func (a *API) Router() http.Handler {
	router := mux.NewRouter()

	router.NotFoundHandler = handler.Handler(a.notFoundHandler)

	// Healthcheck
	router.Handle("/health", handler.Health(a.HealthChecker)).Methods("GET")

	// Tool routes, signed by the host when a key is configured
	v1 := router.PathPrefix("/v1").Subrouter()
	v1.Use(func(next http.Handler) http.Handler {
		return handler.VerifySignature(a.HMAC, next)
	})

	v1.Handle("/tools", handler.Handler(a.listToolsHandler)).Methods("GET").Name("tools")
	v1.Handle("/tools/{name}/invoke", handler.Handler(a.invokeHandler)).Methods("POST").Name("invoke")
	v1.Handle("/credentials/validate", handler.Handler(a.validateCredentialHandler)).Methods("POST").Name("validate")

	routeMatcher := &handler.MuxRouteMatcher{Router: router}

	// Set up handlers for adding a request id, handling panics, tracing, metrics, request logging, setting CORS headers, compression and handler execution timeout
	return handler.AddRequestID(
		handler.Recovery(a.Log,
			handler.Tracer(a.Tracer,
				handler.Metrics(
					handler.Logger(a.Log,
						handler.CORS([]string{handler.RequestIDHeader},
							handler.Compress(
								http.TimeoutHandler(router, a.HandlerTimeout, "Something went wrong. Timed out."),
							),
						),
					),
					routeMatcher,
				),
				routeMatcher,
			),
		),
	)
}

// credential returns the access key supplied with the request, falling back to the configured one
func (a *API) credential(r *http.Request) unsplash.Credential {
	if key := unsplash.Credential(r.Header.Get(CredentialHeader)); !key.Empty() {
		return key
	}

	return a.Credential
}

// Handle not found errors
var notFoundError = &handler.Error{
	Message: "page not found",
	Code:    http.StatusNotFound,
}

func (a *API) notFoundHandler(w http.ResponseWriter, r *http.Request) *handler.Error {
	return notFoundError
}
