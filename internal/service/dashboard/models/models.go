package models

import "github.com/m04kA/LondonHouse-ReservationService/internal/domain"

// DashboardResponse статичные показатели салона
type DashboardResponse struct {
	Period     string             `json:"period"`
	Stats      []StatCardResponse `json:"stats"`
	Trajectory []RevenuePoint     `json:"trajectory"`
	TopStaff   []StaffRevenue     `json:"topStaff"`
}

type StatCardResponse struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change"`
	IsUp   bool   `json:"isUp"`
}

type RevenuePoint struct {
	Week    string `json:"week"`
	Percent int    `json:"percent"`
	Label   string `json:"label"`
}

type StaffRevenue struct {
	Name    string `json:"name"`
	Revenue string `json:"revenue"`
	Percent int    `json:"percent"`
}

// FromDomainSnapshot конвертирует снимок дашборда в ответ
func FromDomainSnapshot(s domain.DashboardSnapshot) *DashboardResponse {
	resp := &DashboardResponse{
		Period:     s.Period,
		Stats:      make([]StatCardResponse, 0, len(s.Stats)),
		Trajectory: make([]RevenuePoint, 0, len(s.Trajectory)),
		TopStaff:   make([]StaffRevenue, 0, len(s.TopStaff)),
	}
	for _, c := range s.Stats {
		resp.Stats = append(resp.Stats, StatCardResponse{
			Title:  c.Title,
			Value:  c.Value,
			Change: c.Change,
			IsUp:   c.IsUp,
		})
	}
	for _, p := range s.Trajectory {
		resp.Trajectory = append(resp.Trajectory, RevenuePoint{
			Week:    p.Week,
			Percent: p.Percent,
			Label:   p.Label,
		})
	}
	for _, r := range s.TopStaff {
		resp.TopStaff = append(resp.TopStaff, StaffRevenue{
			Name:    r.Name,
			Revenue: r.Revenue,
			Percent: r.Percent,
		})
	}
	return resp
}
