package checkout

import (
	"context"

	"github.com/m04kA/LondonHouse-ReservationService/internal/domain"
)

// Instrumented records the outcome of every handoff of the wrapped checkout
type Instrumented struct {
	next    Handoff
	mode    string
	metrics MetricsRecorder
}

func NewInstrumented(next Handoff, mode string, metrics MetricsRecorder) *Instrumented {
	return &Instrumented{next: next, mode: mode, metrics: metrics}
}

func (i *Instrumented) Checkout(ctx context.Context, selection domain.BookingSelection) error {
	err := i.next.Checkout(ctx, selection)
	if i.metrics != nil {
		i.metrics.ObserveCheckout(i.mode, err)
	}
	return err
}
