package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	// must be registered before any route
	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5, "application/json"))

	// evidence uploads stream large bodies and get their own deadline
	router.Group(func(r chi.Router) {
		r.Use(timeout(h.uploadTimeout), h.withActor, h.requireUser)

		r.Post("/api/case-reviews/{caseID}/evidence", h.uploadEvidence)
	})

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(timeout(h.requestTimeout))

		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/healthz", h.healthz)
	})

	router.Group(func(r chi.Router) {
		r.Use(timeout(h.requestTimeout), h.withActor)

		// anonymous submissions are allowed
		r.With(h.rateLimitSubmissions).Post("/api/case-reviews", h.submitCase)

		r.Group(func(r chi.Router) {
			r.Use(h.requireUser)

			r.Get("/api/auth/user", h.currentUser)
			r.Get("/api/my-cases", h.listMyCases)

			r.Get("/api/case-reviews/{caseID}", h.getCase)
			r.Patch("/api/case-reviews/{caseID}/status", h.setCaseStatus)

			r.Post("/api/case-reviews/{caseID}/notes", h.addNote)
			r.Get("/api/case-reviews/{caseID}/notes", h.listNotes)

			r.Get("/api/case-reviews/{caseID}/evidence", h.listEvidence)
			r.Get("/api/evidence/{fileID}/download", h.downloadEvidence)
			r.Delete("/api/evidence/{fileID}", h.deleteEvidence)
		})

		// role-gated, not scoped to a case
		r.Group(func(r chi.Router) {
			r.Use(h.requireAdmin)

			r.Get("/api/case-reviews", h.listCases)
			r.Get("/api/admin/email-status", h.emailStatus)
			r.Post("/api/admin/email-test", h.emailTest)
		})
	})

	return router
}

// timeout bounds the request context to d. Zero disables the deadline.
func timeout(d time.Duration) func(http.Handler) http.Handler {
	if d <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return middleware.Timeout(d)
}
