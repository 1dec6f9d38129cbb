package checkout

import (
	"context"

	"github.com/m04kA/LondonHouse-ReservationService/internal/domain"
)

// Placeholder acknowledges the handoff without any payment integration.
// It is the default mode while no gateway is connected.
type Placeholder struct {
	period       domain.BookingPeriod
	timeProvider TimeProvider
	log          Logger
}

func NewPlaceholder(period domain.BookingPeriod, log Logger) *Placeholder {
	return &Placeholder{
		period:       period,
		timeProvider: realTimeProvider{},
		log:          log,
	}
}

func (p *Placeholder) Checkout(_ context.Context, selection domain.BookingSelection) error {
	req, err := NewRequest(selection, p.period, p.timeProvider.Now())
	if err != nil {
		return err
	}

	p.log.Info("Connecting to Payment Gateway... request_id=%s, service=%q, price=%s, stylist=%q, date=%s, time=%s",
		req.ID, req.ServiceName, req.ServicePrice, req.StylistName, req.DateLabel, req.Time)
	return nil
}
