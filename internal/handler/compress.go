package handler

import (
	"io"
	"net/http"

	"github.com/andybalholm/brotli"
	"github.com/felixge/httpsnoop"
)

// Compress is a handler that compresses responses with brotli or gzip, depending on what the client accepts
// Photo lists are repetitive JSON and shrink considerably
func Compress(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead || r.Header.Get("Accept-Encoding") == "" {
			next.ServeHTTP(w, r)
			return
		}

		compressor := brotli.HTTPCompressor(w, r)
		defer compressor.Close()

		ww := httpsnoop.Wrap(w, httpsnoop.Hooks{
			Write: func(httpsnoop.WriteFunc) httpsnoop.WriteFunc {
				return compressor.Write
			},
			ReadFrom: func(httpsnoop.ReadFromFunc) httpsnoop.ReadFromFunc {
				return func(src io.Reader) (int64, error) {
					return io.Copy(compressor, src)
				}
			},
			WriteHeader: func(next httpsnoop.WriteHeaderFunc) httpsnoop.WriteHeaderFunc {
				return func(code int) {
					// The length of the compressed body is unknown
					w.Header().Del("Content-Length")
					next(code)
				}
			},
		})

		next.ServeHTTP(ww, r)
	})
}
