package exit_session

import (
	"context"

	"github.com/m04kA/LondonHouse-ReservationService/internal/service/sessions/models"
)

type SessionService interface {
	Exit(ctx context.Context, id string) (*models.ExitResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
