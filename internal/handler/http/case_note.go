package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/civilci/intake-portal/models"
)

func (h *Handler) addNote(w http.ResponseWriter, r *http.Request) {
	var input models.NoteInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	note, err := h.services.NoteService.AddNote(r.Context(), actorFrom(r), chi.URLParam(r, "caseID"), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, note, http.StatusCreated)
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.services.NoteService.ListNotes(r.Context(), actorFrom(r), chi.URLParam(r, "caseID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, notes, http.StatusOK)
}
