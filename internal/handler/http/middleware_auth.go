package http

import (
	"net/http"

	"github.com/civilci/intake-portal/internal/logger"
	"github.com/civilci/intake-portal/internal/service"
	"github.com/civilci/intake-portal/internal/utils"
	"github.com/civilci/intake-portal/models"
)

// withActor resolves the bearer token, when one is sent, to a provisioned
// user and stores it in the request context with [utils.WithActor].
//
// A request without an "Authorization" header continues anonymously. A
// header that is malformed or carries a token the identity provider did not
// issue is rejected with 401 instead of being treated as anonymous.
func (h *Handler) withActor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		token, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, ErrInvalidAuthorizationHeader)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authenticate(ctx, token)
		if err != nil {
			log.Debug().Err(err).Msg("bearer token rejected")
			writeError(w, r, err)
			return
		}

		l := logger.FromContext(ctx)
		ctx = l.With().Str("user_id", user.ID).Logger().WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(utils.WithActor(ctx, &user)))
	})
}

// requireUser rejects anonymous requests with 401.
func (h *Handler) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.ActorFromContext(r.Context()); !ok {
			writeError(w, r, service.ErrUnauthenticated)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireAdmin guards role-gated routes that are not scoped to a case:
// 401 when anonymous, 403 for clients.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := utils.ActorFromContext(r.Context())
		switch {
		case !ok:
			writeError(w, r, service.ErrUnauthenticated)
			return
		case !actor.IsAdmin():
			writeError(w, r, service.ErrAdminOnly)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// actorFrom returns the actor stored by withActor, or nil.
func actorFrom(r *http.Request) *models.User {
	actor, _ := utils.ActorFromContext(r.Context())
	return actor
}
