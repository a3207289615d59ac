package http

import "net/http"

func (h *Handler) emailStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.services.AdminService.EmailStatus(r.Context(), actorFrom(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, status, http.StatusOK)
}

// emailTest always answers 200 once the actor is an admin; delivery
// problems are reported in the body.
func (h *Handler) emailTest(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.AdminService.EmailTest(r.Context(), actorFrom(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, result, http.StatusOK)
}
