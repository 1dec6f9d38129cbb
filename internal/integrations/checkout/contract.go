package checkout

import (
	"context"
	"database/sql"
	"time"

	"github.com/m04kA/LondonHouse-ReservationService/internal/domain"
)

// Handoff общий интерфейс всех реализаций checkout
type Handoff interface {
	Checkout(ctx context.Context, selection domain.BookingSelection) error
}

// DBExecutor интерфейс для выполнения запросов (*sql.DB или *sql.Tx)
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// MetricsRecorder интерфейс для учета результатов передачи в оплату
type MetricsRecorder interface {
	ObserveCheckout(mode string, err error)
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
