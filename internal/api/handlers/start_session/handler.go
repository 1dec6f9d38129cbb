package start_session

import (
	"net/http"

	"github.com/m04kA/LondonHouse-ReservationService/internal/api/handlers"
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

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.Start(r.Context())
	if err != nil {
		h.logger.Error("POST /sessions - Failed to start session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /sessions - Session started: session_id=%s", session.ID)
	handlers.RespondJSON(w, http.StatusCreated, session)
}
