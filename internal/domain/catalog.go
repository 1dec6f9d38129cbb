package domain

import "fmt"

// Service represents a salon treatment from the catalog
type Service struct {
	ID       int64
	Name     string
	Duration string // Opaque display value, e.g. "60 Min"
	Price    string // Opaque currency value, e.g. "₹2,500"
	Category string
}

// Stylist represents a member of staff who can be booked
type Stylist struct {
	ID    int64
	Name  string
	Title string
	Image string
}

// OfferedDay is a day of the active booking period that can be picked
type OfferedDay struct {
	Day     int
	Weekday string // Display label, e.g. "Mon"
}

// BookingPeriod describes the month the offered days belong to.
// Only used for display, no calendar arithmetic is performed.
type BookingPeriod struct {
	Month      string // "October"
	MonthShort string // "Oct"
	Year       int
	Days       []OfferedDay
}

// Catalog holds every option the wizard can offer
type Catalog struct {
	Services  []Service
	Stylists  []Stylist
	Period    BookingPeriod
	TimeSlots []string
}

// FindService returns the catalog service with the given ID
func (c *Catalog) FindService(id int64) (Service, bool) {
	for _, s := range c.Services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

// FindStylist returns the catalog stylist with the given ID
func (c *Catalog) FindStylist(id int64) (Stylist, bool) {
	for _, s := range c.Stylists {
		if s.ID == id {
			return s, true
		}
	}
	return Stylist{}, false
}

// FindDay returns the offered day with the given number
func (c *Catalog) FindDay(day int) (OfferedDay, bool) {
	for _, d := range c.Period.Days {
		if d.Day == day {
			return d, true
		}
	}
	return OfferedDay{}, false
}

// HasTimeSlot reports whether the slot is offered
func (c *Catalog) HasTimeSlot(slot string) bool {
	for _, s := range c.TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// Heading returns the period heading shown above the calendar, e.g. "October 2026"
func (p BookingPeriod) Heading() string {
	return fmt.Sprintf("%s %d", p.Month, p.Year)
}

// DateLabel formats an offered day for summaries, e.g. "Oct 16, 2026"
func (p BookingPeriod) DateLabel(day int) string {
	return fmt.Sprintf("%s %d, %d", p.MonthShort, day, p.Year)
}
