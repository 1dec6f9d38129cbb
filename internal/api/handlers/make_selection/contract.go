package make_selection

import (
	"context"

	"github.com/m04kA/LondonHouse-ReservationService/internal/service/sessions/models"
)

type SessionService interface {
	SelectService(ctx context.Context, id string, serviceID int64) (*models.SessionResponse, error)
	SelectStylist(ctx context.Context, id string, stylistID int64) (*models.SessionResponse, error)
	SelectDate(ctx context.Context, id string, day int) (*models.SessionResponse, error)
	SelectTime(ctx context.Context, id string, slot string) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
