package checkout

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/LondonHouse-ReservationService/internal/domain"
)

// Request запрос на оплату, который получает внешний платежный воркер
type Request struct {
	ID           string    `json:"id"`
	ServiceID    int64     `json:"serviceId"`
	ServiceName  string    `json:"serviceName"`
	ServicePrice string    `json:"servicePrice"`
	StylistID    int64     `json:"stylistId"`
	StylistName  string    `json:"stylistName"`
	Day          int       `json:"day"`
	DateLabel    string    `json:"date"` // "Oct 16, 2026"
	Time         string    `json:"time"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewRequest собирает запрос из завершенного выбора
func NewRequest(selection domain.BookingSelection, period domain.BookingPeriod, now time.Time) (*Request, error) {
	if !selection.IsComplete() {
		return nil, ErrIncompleteSelection
	}

	return &Request{
		ID:           uuid.NewString(),
		ServiceID:    selection.Service.ID,
		ServiceName:  selection.Service.Name,
		ServicePrice: selection.Service.Price,
		StylistID:    selection.Stylist.ID,
		StylistName:  selection.Stylist.Name,
		Day:          selection.Date.Day,
		DateLabel:    period.DateLabel(selection.Date.Day),
		Time:         *selection.Time,
		CreatedAt:    now.UTC(),
	}, nil
}
