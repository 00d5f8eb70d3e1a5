package http

import (
	"net"
	"net/http"

	"go.uber.org/zap"
)

func RateLimitMiddleware(
	limiter *RateLimiter,
	logger *zap.Logger,
	next http.Handler,
) http.Handler {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			client = r.RemoteAddr
		}

		if !limiter.Allow(client) {
			logger.Debug("Rate limit exceeded", zap.String("client", client), zap.String("path", r.URL.Path))
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
