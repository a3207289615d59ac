package http

import (
	"errors"
	"net/http"

	"github.com/civilci/intake-portal/internal/logger"
	"github.com/civilci/intake-portal/internal/service"
	"github.com/civilci/intake-portal/internal/utils"
	"github.com/civilci/intake-portal/internal/validators"
	"github.com/civilci/intake-portal/models"
)

var errorStatusMap = map[error]int{
	validators.ErrValidation: http.StatusBadRequest,
	ErrInvalidJSON:           http.StatusBadRequest,
	ErrInvalidQuery:          http.StatusBadRequest,

	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	service.ErrUnauthenticated:    http.StatusUnauthorized,
	service.ErrAdminOnly:          http.StatusForbidden,

	service.ErrNotFound: http.StatusNotFound,
	ErrRouteNotFound:    http.StatusNotFound,
	ErrMethodNotAllowed: http.StatusMethodNotAllowed,

	ErrTooManySubmissions: http.StatusTooManyRequests,

	service.ErrStorageFailure: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorResponse builds the JSON body for err. Server errors never leak
// their cause; denied and missing resources share one message.
func errorResponse(err error, status int) models.ErrorResponse {
	var verr *validators.ValidationError
	switch {
	case errors.As(err, &verr):
		return models.ErrorResponse{Message: "Validation failed", Errors: verr.Fields}
	case status == http.StatusNotFound:
		return models.ErrorResponse{Message: "Not found"}
	case status >= http.StatusInternalServerError:
		return models.ErrorResponse{Message: "Internal server error"}
	}

	for target, s := range errorStatusMap {
		if s == status && errors.Is(err, target) {
			return models.ErrorResponse{Message: target.Error()}
		}
	}
	return models.ErrorResponse{Message: http.StatusText(status)}
}

// writeError logs err with the request logger and writes the mapped status
// and JSON body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, wErr := utils.WriteJSON(w, errorResponse(err, status), status); wErr != nil {
		log.Err(wErr).Msg("error writing error response")
	}
}
