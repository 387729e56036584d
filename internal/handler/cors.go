package handler

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS is a handler for setting CORS headers
// Browser based hosts may only read the tool declarations and invoke tools
func CORS(exposedHeaders []string, next http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", "Accept", RequestIDHeader, "X-Signature", "X-Unsplash-Access-Key"},
		ExposedHeaders: exposedHeaders,
	}).Handler(next)
}
