package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

// RateLimit allows limit requests per client IP in each fixed window of
// length per. A limit of zero or less disables the check. Rejected requests
// get a Retry-After header and are passed to reject, or answered with a bare
// 429 when reject is nil.
func RateLimit(limit int, per time.Duration, reject http.Handler) func(http.Handler) http.Handler {
	windows := cache.New(per, 2*per)
	retryAfter := strconv.Itoa(int(per.Seconds()))
	return func(next http.Handler) http.Handler {
		if limit <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !allow(windows, ClientIP(r), limit, per) {
				w.Header().Set("Retry-After", retryAfter)
				if reject != nil {
					reject.ServeHTTP(w, r)
					return
				}
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func allow(windows *cache.Cache, ip string, limit int, per time.Duration) bool {
	if err := windows.Add(ip, 1, per); err == nil {
		return true
	}
	count, err := windows.IncrementInt(ip, 1)
	if err != nil {
		// window expired between Add and Increment
		windows.Set(ip, 1, per)
		return true
	}
	return count <= limit
}
