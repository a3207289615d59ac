package http

import (
	"net"
	"net/http"

	"github.com/civilci/intake-portal/internal/logger"
)

// rateLimitSubmissions limits public case submissions per client address.
// It is a no-op when no limiter is configured and fails open when the
// limiter cannot be reached.
func (h *Handler) rateLimitSubmissions(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.limiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)
		key := clientAddress(r)

		allowed, err := h.limiter.Allow(r.Context(), key)
		if err != nil {
			log.Warn().Err(err).Str("client", key).Msg("rate limiter unavailable, allowing request")
			next.ServeHTTP(w, r)
			return
		}
		if !allowed {
			log.Info().Str("client", key).Msg("submission rate limit exceeded")
			writeError(w, r, ErrTooManySubmissions)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientAddress strips the port from r.RemoteAddr.
func clientAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
