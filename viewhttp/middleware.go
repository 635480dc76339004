package viewhttp

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

const defaultRequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// RequestIDFromContext returns the request ID stored by RequestIDMiddleware,
// or an empty string.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// RequestIDConfig configures RequestIDMiddleware.
type RequestIDConfig struct {
	// HeaderName defaults to "X-Request-ID".
	HeaderName string

	// GenerateFunc returns a new ID. Defaults to a UUID v4.
	GenerateFunc func(r *http.Request) string

	// TrustIncoming reuses an ID already present on the request.
	TrustIncoming bool
}

// RequestIDMiddleware sets a request ID on the request context and on the
// response header.
func RequestIDMiddleware(cfg RequestIDConfig) func(http.Handler) http.Handler {
	headerName := cfg.HeaderName
	if headerName == "" {
		headerName = defaultRequestIDHeader
	}

	generate := cfg.GenerateFunc
	if generate == nil {
		generate = func(*http.Request) string { return uuid.NewString() }
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if cfg.TrustIncoming {
				id = r.Header.Get(headerName)
			}
			if id == "" {
				id = generate(r)
			}

			if id != "" {
				w.Header().Set(headerName, id)
				r = r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id))
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RecoveryMiddleware turns a panic in next into a 500 JSON error and logs
// the recovered value with the request ID.
func RecoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}
					logger.Error("handler panic",
						"panic", err,
						"method", r.Method,
						"path", r.URL.Path,
						"request_id", RequestIDFromContext(r.Context()))

					writeJSON(w, http.StatusInternalServerError, ErrorResponse{
						Error: http.StatusText(http.StatusInternalServerError),
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
