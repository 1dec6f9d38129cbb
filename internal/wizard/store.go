package wizard

import "github.com/m04kA/LondonHouse-ReservationService/internal/domain"

// SelectionStore holds the picks of a single wizard session.
// Setters overwrite unconditionally, catalog membership is the caller's concern.
type SelectionStore struct {
	selection domain.BookingSelection
}

func (s *SelectionStore) SetService(service domain.Service) {
	s.selection.Service = &service
}

func (s *SelectionStore) SetStylist(stylist domain.Stylist) {
	s.selection.Stylist = &stylist
}

func (s *SelectionStore) SetDate(day domain.OfferedDay) {
	s.selection.Date = &day
}

func (s *SelectionStore) SetTime(slot string) {
	s.selection.Time = &slot
}

// Selection returns a copy of the current picks
func (s *SelectionStore) Selection() domain.BookingSelection {
	var out domain.BookingSelection
	if s.selection.Service != nil {
		service := *s.selection.Service
		out.Service = &service
	}
	if s.selection.Stylist != nil {
		stylist := *s.selection.Stylist
		out.Stylist = &stylist
	}
	if s.selection.Date != nil {
		day := *s.selection.Date
		out.Date = &day
	}
	if s.selection.Time != nil {
		slot := *s.selection.Time
		out.Time = &slot
	}
	return out
}

// Clear drops every pick
func (s *SelectionStore) Clear() {
	s.selection = domain.BookingSelection{}
}
