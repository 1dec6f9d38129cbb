package domain

// BookingSelection accumulates the picks of one wizard session.
// A nil field means nothing has been picked yet.
type BookingSelection struct {
	Service *Service
	Stylist *Stylist
	Date    *OfferedDay
	Time    *string
}

// IsEmpty returns true if nothing has been picked
func (s BookingSelection) IsEmpty() bool {
	return s.Service == nil && s.Stylist == nil && s.Date == nil && s.Time == nil
}

// IsComplete returns true if every field has been picked
func (s BookingSelection) IsComplete() bool {
	return s.Service != nil && s.Stylist != nil && s.Date != nil && s.Time != nil
}

// Summary is the read-only overview shown on the confirmation stage
type Summary struct {
	ServiceName  string
	ServicePrice string
	StylistName  string
	Date         string // "Oct 16, 2026"
	Time         string
}

// Summarize builds the confirmation overview. Missing picks render as empty strings.
func (s BookingSelection) Summarize(period BookingPeriod) Summary {
	var summary Summary
	if s.Service != nil {
		summary.ServiceName = s.Service.Name
		summary.ServicePrice = s.Service.Price
	}
	if s.Stylist != nil {
		summary.StylistName = s.Stylist.Name
	}
	if s.Date != nil {
		summary.Date = period.DateLabel(s.Date.Day)
	}
	if s.Time != nil {
		summary.Time = *s.Time
	}
	return summary
}
