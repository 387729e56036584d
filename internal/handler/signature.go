package handler

import (
	"bytes"
	"io"
	"net/http"

	"github.com/DMarby/unsplash-tool/internal/hmac"
)

// maxSignedBodySize bounds how much of a request body is read for signature verification
const maxSignedBodySize = 1 << 20

// VerifySignature is a handler that rejects requests without a valid hmac signature
// It is a no-op when no key is configured
func VerifySignature(h *hmac.HMAC, next http.Handler) http.Handler {
	if !h.Enabled() {
		return next
	}

	return Handler(func(w http.ResponseWriter, r *http.Request) *Error {
		signature := r.Header.Get(hmac.Header)
		if signature == "" {
			return Unauthorized("Missing request signature")
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, maxSignedBodySize))
		if err != nil {
			return BadRequest("Unable to read request body")
		}
		r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(body))

		valid, err := h.ValidateRequest(r.Method, r.URL.Path, body, signature)
		if err != nil || !valid {
			return Unauthorized("Invalid request signature")
		}

		next.ServeHTTP(w, r)
		return nil
	})
}
