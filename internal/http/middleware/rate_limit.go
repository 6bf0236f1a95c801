package middleware

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/appdotbuilder/elegant-wedding-invitation/internal/http/response"
	"github.com/appdotbuilder/elegant-wedding-invitation/internal/repository"
)

// RateLimit limits requests per client IP using the Postgres-backed counter.
// Fails open: a store error never blocks a request.
func RateLimit(repo repository.RateLimitRepository, requests int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := "ip:" + clientIP(r)

			ok, err := repo.CheckRateLimit(r.Context(), key, requests, window)
			if err == nil && !ok {
				response.RateLimit(w, "Too many requests. Try again later.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP extracts the real client IP from the request
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
