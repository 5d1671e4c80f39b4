package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Config holds middleware configuration.
type Config struct {
	Logger *zap.Logger

	CORS *CORSConfig

	// RateLimit of zero disables throttling.
	RateLimit      rate.Limit
	RateLimitBurst int

	RequestTimeout time.Duration
}

// Chain creates the middleware stack shared by every route. The first entry
// is the outermost: access logging sees the final status and request id.
func Chain(config *Config) func(http.Handler) http.Handler {
	stack := []func(http.Handler) http.Handler{
		Logger(config.Logger),
		RequestID,
		Recovery(config.Logger),
	}

	if config.CORS != nil {
		stack = append(stack, CORS(config.CORS))
	}

	if config.RateLimit > 0 {
		stack = append(stack, NewRateLimiter(config.RateLimit, config.RateLimitBurst).Middleware())
	}

	if config.RequestTimeout > 0 {
		stack = append(stack, Timeout(config.RequestTimeout))
	}

	return func(handler http.Handler) http.Handler {
		h := handler
		for i := len(stack) - 1; i >= 0; i-- {
			h = stack[i](h)
		}
		return h
	}
}
