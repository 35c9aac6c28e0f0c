package http

import (
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// NewLimiter creates a token bucket of burst tokens refilled at rps per second.
func NewLimiter(rps float64, burst int) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(rps), burst)
}

// RateLimit rejects requests with 429 once limiter runs out of tokens.
func RateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(limiter)))
				writeJSON(w, http.StatusTooManyRequests, ErrorResponse{Error: "rate limit exceeded"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func retryAfterSeconds(limiter *rate.Limiter) int {
	if limiter.Limit() <= 0 {
		return 1
	}
	wait := time.Duration(float64(time.Second) / float64(limiter.Limit()))
	secs := int((wait + time.Second - 1) / time.Second)
	if secs < 1 {
		return 1
	}
	return secs
}
