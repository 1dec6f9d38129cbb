package domain

import "time"

// Default wizard settings
const (
	DefaultSettleDelay = 400 * time.Millisecond
	DefaultSessionTTL  = 30 * time.Minute
)

// Views the navigation shell can switch between
const (
	ViewWebsite   = "website"
	ViewBooking   = "booking"
	ViewDashboard = "dashboard"
)

// Selection fields accepted by the API
const (
	FieldService = "service"
	FieldStylist = "stylist"
	FieldDate    = "date"
	FieldTime    = "time"
)
