package domain

// StatCard is a headline figure of the executive dashboard
type StatCard struct {
	Title  string
	Value  string
	Change string
	IsUp   bool
}

// RevenuePoint is one bar of the revenue trajectory chart
type RevenuePoint struct {
	Week    string
	Percent int
	Label   string
}

// StaffRevenue is a row of the top directors list
type StaffRevenue struct {
	Name    string
	Revenue string
	Percent int
}

// DashboardSnapshot is the static metrics display. It holds no decision logic.
type DashboardSnapshot struct {
	Period     string
	Stats      []StatCard
	Trajectory []RevenuePoint
	TopStaff   []StaffRevenue
}
