package advance_stage

import (
	"context"

	"github.com/m04kA/LondonHouse-ReservationService/internal/service/sessions/models"
)

type SessionService interface {
	Advance(ctx context.Context, id string) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
