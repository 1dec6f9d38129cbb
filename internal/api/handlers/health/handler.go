package health

import (
	"net/http"

	"github.com/m04kA/LondonHouse-ReservationService/internal/api/handlers"
)

// SessionCounter сообщает число открытых сессий
type SessionCounter interface {
	Count() int
}

type Response struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
}

type Handler struct {
	counter SessionCounter
}

func NewHandler(counter SessionCounter) *Handler {
	return &Handler{counter: counter}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Response{
		Status:   "ok",
		Sessions: h.counter.Count(),
	})
}
