package middleware

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/2beens/gymquest/internal/telemetry/metrics"
	"github.com/2beens/gymquest/pkg"

	"github.com/go-redis/redis_rate/v9"
	log "github.com/sirupsen/logrus"
)

type RequestRateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// RateLimit allows allowedPerMin requests per minute for each client address.
// Limits are kept in redis under routerName, so all instances share them.
func RateLimit(
	rateLimiter RequestRateLimiter,
	routerName string,
	allowedPerMin int,
	metricsManager *metrics.Manager,
) func(next http.Handler) http.Handler {
	limit := redis_rate.PerMinute(allowedPerMin)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := routerName + ":" + clientAddr(r)
			res, err := rateLimiter.Allow(r.Context(), key, limit)
			if err != nil {
				log.Errorf("rate limit check for [%s]: %s", key, err)
				pkg.WriteJSONError(w, "rate limit check failed", http.StatusInternalServerError)
				return
			}

			if res.Allowed > 0 {
				next.ServeHTTP(w, r)
				return
			}

			if metricsManager != nil {
				metricsManager.CounterRateLimitedRequests.Inc()
			}
			retryAfter := int(res.RetryAfter.Seconds()) + 1
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			pkg.WriteJSONError(w, "too many requests", http.StatusTooManyRequests)
		})
	}
}

// clientAddr prefers the first X-Forwarded-For hop, set by the reverse proxy.
func clientAddr(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
