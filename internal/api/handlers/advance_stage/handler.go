package advance_stage

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/LondonHouse-ReservationService/internal/api/handlers"
	"github.com/m04kA/LondonHouse-ReservationService/internal/service/sessions"
)

const msgSessionNotFound = "session not found"

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

// Handle POST /api/v1/sessions/{sessionId}/advance
// Незавершенный шаг не ошибка: клиент получает состояние без изменений.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	session, err := h.service.Advance(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/advance - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("POST /sessions/{id}/advance - Failed to advance: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/advance - session_id=%s, stage=%s, transitioning=%t",
		sessionID, session.StageName, session.Transitioning)
	handlers.RespondJSON(w, http.StatusOK, session)
}
