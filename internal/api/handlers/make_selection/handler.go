package make_selection

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/LondonHouse-ReservationService/internal/api/handlers"
	"github.com/m04kA/LondonHouse-ReservationService/internal/domain"
	"github.com/m04kA/LondonHouse-ReservationService/internal/service/sessions"
	"github.com/m04kA/LondonHouse-ReservationService/internal/service/sessions/models"
)

const (
	fieldService = domain.FieldService
	fieldStylist = domain.FieldStylist
	fieldDate    = domain.FieldDate
	fieldTime    = domain.FieldTime
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUnknownField       = "unknown selection field, expected service, stylist, date or time"
	msgMissingValue       = "missing value for the selection field"
	msgSessionNotFound    = "session not found"
	msgServiceNotFound    = "service not found"
	msgStylistNotFound    = "stylist not found"
	msgDayNotOffered      = "day is not offered"
	msgSlotNotOffered     = "time slot is not offered"
	msgPickRejected       = "selection is not available on the current stage"
)

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/sessions/{sessionId}/selection/{field}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]
	field := strings.ToLower(vars["field"])

	switch field {
	case fieldService, fieldStylist, fieldDate, fieldTime:
	default:
		h.logger.Warn("PUT /sessions/{id}/selection - Unknown field: session_id=%s, field=%q", sessionID, field)
		handlers.RespondBadRequest(w, msgUnknownField)
		return
	}

	var req SelectionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/selection/%s - Invalid request body: %v", field, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := req.validate(field); err != nil {
		h.logger.Warn("PUT /sessions/{id}/selection/%s - %v: session_id=%s", field, err, sessionID)
		handlers.RespondBadRequest(w, msgMissingValue)
		return
	}

	var (
		session *models.SessionResponse
		err     error
	)
	switch field {
	case fieldService:
		session, err = h.service.SelectService(r.Context(), sessionID, *req.ServiceID)
	case fieldStylist:
		session, err = h.service.SelectStylist(r.Context(), sessionID, *req.StylistID)
	case fieldDate:
		session, err = h.service.SelectDate(r.Context(), sessionID, *req.Day)
	case fieldTime:
		session, err = h.service.SelectTime(r.Context(), sessionID, strings.TrimSpace(*req.Time))
	}

	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("PUT /sessions/{id}/selection/%s - Session not found: session_id=%s", field, sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sessions.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, sessions.ErrStylistNotFound):
			handlers.RespondNotFound(w, msgStylistNotFound)

		case errors.Is(err, sessions.ErrDayNotOffered):
			handlers.RespondNotFound(w, msgDayNotOffered)

		case errors.Is(err, sessions.ErrSlotNotOffered):
			handlers.RespondNotFound(w, msgSlotNotOffered)

		case errors.Is(err, sessions.ErrPickRejected):
			h.logger.Warn("PUT /sessions/{id}/selection/%s - Pick rejected: session_id=%s", field, sessionID)
			handlers.RespondConflict(w, msgPickRejected)

		default:
			h.logger.Error("PUT /sessions/{id}/selection/%s - Failed to apply selection: session_id=%s, error=%v",
				field, sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /sessions/{id}/selection/%s - Selection applied: session_id=%s", field, sessionID)
	handlers.RespondJSON(w, http.StatusOK, session)
}
