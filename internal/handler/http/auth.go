package http

import (
	"net/http"
)

type currentUserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	actor := actorFrom(r)
	writeJSON(w, r, currentUserResponse{
		ID:    actor.ID,
		Email: actor.Email,
		Role:  actor.Role.String(),
	}, http.StatusOK)
}
