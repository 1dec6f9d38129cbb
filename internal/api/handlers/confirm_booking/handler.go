package confirm_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/LondonHouse-ReservationService/internal/api/handlers"
	"github.com/m04kA/LondonHouse-ReservationService/internal/service/sessions"
)

const (
	msgSessionNotFound    = "session not found"
	msgConfirmUnavailable = "booking can only be confirmed on the confirmation stage"
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

// Handle POST /api/v1/sessions/{sessionId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	result, err := h.service.Confirm(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/confirm - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sessions.ErrConfirmUnavailable):
			h.logger.Warn("POST /sessions/{id}/confirm - Not on confirmation stage: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgConfirmUnavailable)

		default:
			h.logger.Error("POST /sessions/{id}/confirm - Failed to confirm: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/confirm - Booking confirmed: session_id=%s, service=%q, stylist=%q",
		sessionID, result.Summary.ServiceName, result.Summary.StylistName)
	handlers.RespondJSON(w, http.StatusOK, result)
}
