package wizard

import (
	"context"
	"time"

	"github.com/m04kA/LondonHouse-ReservationService/internal/domain"
)

// Checkout принимает итоговый выбор для оплаты.
// Ошибки коллаборатора не обрабатываются мастером, только логируются.
type Checkout interface {
	Checkout(ctx context.Context, selection domain.BookingSelection) error
}

// Navigator switches the shell away from the booking view
type Navigator interface {
	ExitWizard()
}

// NavigatorFunc adapts a plain function to Navigator
type NavigatorFunc func()

// ExitWizard calls f
func (f NavigatorFunc) ExitWizard() {
	if f != nil {
		f()
	}
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

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
