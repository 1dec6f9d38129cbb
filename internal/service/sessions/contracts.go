package sessions

import (
	"context"
	"time"

	"github.com/m04kA/LondonHouse-ReservationService/internal/domain"
)

// Checkout интерфейс платежного коллаборатора
type Checkout interface {
	Checkout(ctx context.Context, selection domain.BookingSelection) error
}

// Metrics интерфейс для учета событий мастера
type Metrics interface {
	ObserveWizardEvent(event, stage string)
	SetActiveSessions(n int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now()
}
