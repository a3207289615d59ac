package http

import (
	"net/http"

	"github.com/civilci/intake-portal/internal/logger"
	"github.com/civilci/intake-portal/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(serverVersion)); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing version")
	}
}

// healthz answers 503 while the database is unreachable.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HealthService.Ping(r.Context()); err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("health check failed")
		writeJSON(w, r, models.HealthResponse{Status: "unavailable"}, http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, r, models.HealthResponse{Status: "ok"}, http.StatusOK)
}
