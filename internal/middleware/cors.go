package middleware

import (
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// CORS creates CORS middleware that handles CORS headers and OPTIONS
// preflight requests for the configured origins.
func CORS(allowedOrigins []string, logger *zap.Logger) func(http.Handler) http.Handler {
	logger.Info("cors_initialized", zap.Strings("allowed_origins", allowedOrigins))

	setHeaders := func(w http.ResponseWriter, origin string) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			allowed := false
			for _, allowedOrigin := range allowedOrigins {
				if origin == allowedOrigin {
					allowed = true
					break
				}
			}

			if r.Method == http.MethodOptions {
				if allowed && origin != "" {
					setHeaders(w, origin)
					w.Header().Set("Access-Control-Max-Age", "86400")
				}
				// 204 regardless; browsers reject when the headers are absent.
				w.WriteHeader(http.StatusNoContent)
				return
			}

			if allowed && origin != "" {
				setHeaders(w, origin)
			}

			next.ServeHTTP(w, r)
		})
	}
}

// CORSFromEnv creates CORS middleware from the FRONTEND_URL setting,
// a comma-separated origin list. http://localhost:3000 is always allowed.
func CORSFromEnv(frontendURL string, logger *zap.Logger) func(http.Handler) http.Handler {
	origins := []string{"http://localhost:3000"}
	for _, origin := range strings.Split(frontendURL, ",") {
		trimmed := strings.TrimSpace(origin)
		if trimmed == "" {
			continue
		}
		exists := false
		for _, existing := range origins {
			if existing == trimmed {
				exists = true
				break
			}
		}
		if !exists {
			origins = append(origins, trimmed)
		}
	}
	return CORS(origins, logger)
}
