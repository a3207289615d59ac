package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/civilci/intake-portal/internal/logger"
	"github.com/civilci/intake-portal/internal/utils"
	"github.com/civilci/intake-portal/models"
)

func (h *Handler) submitCase(w http.ResponseWriter, r *http.Request) {
	var input models.CaseReviewInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.CaseService.Submit(r.Context(), actorFrom(r), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().
		Str("case_id", created.ID).
		Str("urgency", string(created.Urgency)).
		Bool("anonymous", created.UserID == nil).
		Msg("case review submitted")

	writeJSON(w, r, created, http.StatusCreated)
}

// listCases serves the admin triage view. Query: sort=triage|newest and an
// optional status, which accepts the same spellings as status updates.
func (h *Handler) listCases(w http.ResponseWriter, r *http.Request) {
	filter, err := caseFilterFromQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	cases, err := h.services.CaseService.ListAll(r.Context(), actorFrom(r), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, cases, http.StatusOK)
}

func (h *Handler) listMyCases(w http.ResponseWriter, r *http.Request) {
	cases, err := h.services.CaseService.ListMine(r.Context(), actorFrom(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, cases, http.StatusOK)
}

func (h *Handler) getCase(w http.ResponseWriter, r *http.Request) {
	caseReview, err := h.services.CaseService.Get(r.Context(), actorFrom(r), chi.URLParam(r, "caseID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, caseReview, http.StatusOK)
}

func (h *Handler) setCaseStatus(w http.ResponseWriter, r *http.Request) {
	var update models.StatusUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.CaseService.SetStatus(r.Context(), actorFrom(r), chi.URLParam(r, "caseID"), update)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, updated, http.StatusOK)
}

func caseFilterFromQuery(r *http.Request) (models.CaseFilter, error) {
	query := r.URL.Query()
	filter := models.CaseFilter{Sort: models.SortTriage}

	switch sort := models.CaseSort(query.Get("sort")); sort {
	case "", models.SortTriage:
	case models.SortNewest:
		filter.Sort = models.SortNewest
	default:
		return models.CaseFilter{}, fmt.Errorf("%w: sort=%q", ErrInvalidQuery, sort)
	}

	if raw := query.Get("status"); raw != "" {
		status, err := models.ParseCaseStatus(raw)
		if err != nil {
			return models.CaseFilter{}, fmt.Errorf("%w: status=%q", ErrInvalidQuery, raw)
		}
		filter.Status = &status
	}

	return filter, nil
}

// maxJSONBodyBytes caps JSON request bodies.
const maxJSONBodyBytes = 64 << 10

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxJSONBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
