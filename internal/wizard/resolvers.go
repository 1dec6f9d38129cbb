package wizard

import "github.com/m04kA/LondonHouse-ReservationService/internal/domain"

// ServiceOption is a service card of the first stage
type ServiceOption struct {
	Service  domain.Service
	Selected bool
}

// StylistOption is a stylist card of the second stage
type StylistOption struct {
	Stylist  domain.Stylist
	Selected bool
}

// DayOption is a calendar cell of the third stage
type DayOption struct {
	Day      domain.OfferedDay
	Selected bool
}

// TimeSlotOption is a slot button of the third stage
type TimeSlotOption struct {
	Time     string
	Selected bool
}

// Selected flags below are derived from the current selection on every call.

func (w *Wizard) ServiceOptions() []ServiceOption {
	current := w.store.Selection().Service
	options := make([]ServiceOption, 0, len(w.catalog.Services))
	for _, s := range w.catalog.Services {
		options = append(options, ServiceOption{
			Service:  s,
			Selected: current != nil && current.ID == s.ID,
		})
	}
	return options
}

func (w *Wizard) StylistOptions() []StylistOption {
	current := w.store.Selection().Stylist
	options := make([]StylistOption, 0, len(w.catalog.Stylists))
	for _, s := range w.catalog.Stylists {
		options = append(options, StylistOption{
			Stylist:  s,
			Selected: current != nil && current.ID == s.ID,
		})
	}
	return options
}

func (w *Wizard) DayOptions() []DayOption {
	current := w.store.Selection().Date
	options := make([]DayOption, 0, len(w.catalog.Period.Days))
	for _, d := range w.catalog.Period.Days {
		options = append(options, DayOption{
			Day:      d,
			Selected: current != nil && current.Day == d.Day,
		})
	}
	return options
}

// TimeSlotOptions returns nothing until a date is picked.
// Every date offers the same slots.
func (w *Wizard) TimeSlotOptions() []TimeSlotOption {
	selection := w.store.Selection()
	if selection.Date == nil {
		return []TimeSlotOption{}
	}
	options := make([]TimeSlotOption, 0, len(w.catalog.TimeSlots))
	for _, slot := range w.catalog.TimeSlots {
		options = append(options, TimeSlotOption{
			Time:     slot,
			Selected: selection.Time != nil && *selection.Time == slot,
		})
	}
	return options
}

// PickService records the service. Only accepted on the service stage.
func (w *Wizard) PickService(service domain.Service) bool {
	if !w.interactive(domain.StageService) {
		return false
	}
	w.store.SetService(service)
	return true
}

// PickStylist records the stylist. Only accepted on the stylist stage.
func (w *Wizard) PickStylist(stylist domain.Stylist) bool {
	if !w.interactive(domain.StageStylist) {
		return false
	}
	w.store.SetStylist(stylist)
	return true
}

// PickDate records the day. Only accepted on the schedule stage.
func (w *Wizard) PickDate(day domain.OfferedDay) bool {
	if !w.interactive(domain.StageSchedule) {
		return false
	}
	w.store.SetDate(day)
	return true
}

// PickTime records the slot. Slots are hidden until a date is picked,
// so a time pick without a date is ignored.
func (w *Wizard) PickTime(slot string) bool {
	if !w.interactive(domain.StageSchedule) {
		return false
	}
	if w.store.Selection().Date == nil {
		return false
	}
	w.store.SetTime(slot)
	return true
}

// interactive reports whether the stage content currently accepts picks
func (w *Wizard) interactive(stage domain.WizardStage) bool {
	return w.Stage() == stage && !w.transiting
}
