package models

import (
	"github.com/m04kA/LondonHouse-ReservationService/internal/domain"
	"github.com/m04kA/LondonHouse-ReservationService/internal/wizard"
)

// SessionResponse состояние сессии мастера для клиента.
// Варианты выбора заполняются только для активного шага.
type SessionResponse struct {
	ID            string            `json:"id"`
	View          string            `json:"view"`
	Stage         int               `json:"stage"`
	StageName     string            `json:"stageName"`
	StageLabel    string            `json:"stageLabel"`
	Transitioning bool              `json:"transitioning"`
	CanAdvance    bool              `json:"canAdvance"`
	CanRetreat    bool              `json:"canRetreat"`
	Progress      []StageProgress   `json:"progress"`
	Selection     SelectionResponse `json:"selection"`
	Services      []ServiceOption   `json:"services,omitempty"`
	Stylists      []StylistOption   `json:"stylists,omitempty"`
	Period        string            `json:"period,omitempty"`
	Days          []DayOption       `json:"days,omitempty"`
	TimeSlots     []TimeSlotOption  `json:"timeSlots,omitempty"`
	Summary       *SummaryResponse  `json:"summary,omitempty"`
}

type StageProgress struct {
	Stage     int    `json:"stage"`
	Label     string `json:"label"`
	Active    bool   `json:"active"`
	Completed bool   `json:"completed"`
}

type SelectionResponse struct {
	Service *ServiceResponse `json:"service"`
	Stylist *StylistResponse `json:"stylist"`
	Date    *DayResponse     `json:"date"`
	Time    *string          `json:"time"`
}

type ServiceResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Duration string `json:"duration"`
	Price    string `json:"price"`
	Category string `json:"category"`
}

type StylistResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title"`
	Image string `json:"image"`
}

type DayResponse struct {
	Day     int    `json:"day"`
	Weekday string `json:"weekday"`
}

type ServiceOption struct {
	ServiceResponse
	Selected bool `json:"selected"`
}

type StylistOption struct {
	StylistResponse
	Selected bool `json:"selected"`
}

type DayOption struct {
	DayResponse
	Selected bool `json:"selected"`
}

type TimeSlotOption struct {
	Time     string `json:"time"`
	Selected bool   `json:"selected"`
}

type SummaryResponse struct {
	ServiceName  string `json:"serviceName"`
	ServicePrice string `json:"servicePrice"`
	StylistName  string `json:"stylistName"`
	Date         string `json:"date"`
	Time         string `json:"time"`
}

// ExitResponse ответ после выхода из мастера
type ExitResponse struct {
	View string `json:"view"`
}

// ConfirmResponse ответ после подтверждения бронирования
type ConfirmResponse struct {
	View      string          `json:"view"`
	Confirmed bool            `json:"confirmed"`
	Summary   SummaryResponse `json:"summary"`
}

// CatalogResponse полный каталог вариантов
type CatalogResponse struct {
	Services  []ServiceResponse `json:"services"`
	Stylists  []StylistResponse `json:"stylists"`
	Period    string            `json:"period"`
	Days      []DayResponse     `json:"days"`
	TimeSlots []string          `json:"timeSlots"`
}

// FromWizard собирает ответ из текущего состояния мастера
func FromWizard(id string, w *wizard.Wizard) *SessionResponse {
	stage := w.Stage()

	resp := &SessionResponse{
		ID:            id,
		View:          domain.ViewBooking,
		Stage:         int(stage),
		StageName:     stage.String(),
		StageLabel:    stage.Label(),
		Transitioning: w.Transitioning(),
		CanAdvance:    w.CanAdvance(),
		CanRetreat:    w.CanRetreat(),
		Selection:     FromDomainSelection(w.Selection()),
	}

	for _, p := range w.Progress() {
		resp.Progress = append(resp.Progress, StageProgress{
			Stage:     int(p.Stage),
			Label:     p.Label,
			Active:    p.Active,
			Completed: p.Completed,
		})
	}

	switch stage {
	case domain.StageService:
		for _, opt := range w.ServiceOptions() {
			resp.Services = append(resp.Services, ServiceOption{
				ServiceResponse: fromDomainService(opt.Service),
				Selected:        opt.Selected,
			})
		}
	case domain.StageStylist:
		for _, opt := range w.StylistOptions() {
			resp.Stylists = append(resp.Stylists, StylistOption{
				StylistResponse: fromDomainStylist(opt.Stylist),
				Selected:        opt.Selected,
			})
		}
	case domain.StageSchedule:
		resp.Period = w.Catalog().Period.Heading()
		for _, opt := range w.DayOptions() {
			resp.Days = append(resp.Days, DayOption{
				DayResponse: fromDomainDay(opt.Day),
				Selected:    opt.Selected,
			})
		}
		for _, opt := range w.TimeSlotOptions() {
			resp.TimeSlots = append(resp.TimeSlots, TimeSlotOption{Time: opt.Time, Selected: opt.Selected})
		}
	case domain.StageConfirmation:
		if summary, ok := w.Summary(); ok {
			s := FromDomainSummary(summary)
			resp.Summary = &s
		}
	}

	return resp
}

// FromDomainSelection конвертирует выбор в ответ
func FromDomainSelection(s domain.BookingSelection) SelectionResponse {
	var resp SelectionResponse
	if s.Service != nil {
		service := fromDomainService(*s.Service)
		resp.Service = &service
	}
	if s.Stylist != nil {
		stylist := fromDomainStylist(*s.Stylist)
		resp.Stylist = &stylist
	}
	if s.Date != nil {
		day := fromDomainDay(*s.Date)
		resp.Date = &day
	}
	resp.Time = s.Time
	return resp
}

// FromDomainSummary конвертирует итоговую сводку в ответ
func FromDomainSummary(s domain.Summary) SummaryResponse {
	return SummaryResponse{
		ServiceName:  s.ServiceName,
		ServicePrice: s.ServicePrice,
		StylistName:  s.StylistName,
		Date:         s.Date,
		Time:         s.Time,
	}
}

// FromDomainCatalog конвертирует каталог в ответ
func FromDomainCatalog(c domain.Catalog) *CatalogResponse {
	resp := &CatalogResponse{
		Services:  make([]ServiceResponse, 0, len(c.Services)),
		Stylists:  make([]StylistResponse, 0, len(c.Stylists)),
		Period:    c.Period.Heading(),
		Days:      make([]DayResponse, 0, len(c.Period.Days)),
		TimeSlots: append([]string{}, c.TimeSlots...),
	}
	for _, s := range c.Services {
		resp.Services = append(resp.Services, fromDomainService(s))
	}
	for _, s := range c.Stylists {
		resp.Stylists = append(resp.Stylists, fromDomainStylist(s))
	}
	for _, d := range c.Period.Days {
		resp.Days = append(resp.Days, fromDomainDay(d))
	}
	return resp
}

func fromDomainService(s domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:       s.ID,
		Name:     s.Name,
		Duration: s.Duration,
		Price:    s.Price,
		Category: s.Category,
	}
}

func fromDomainStylist(s domain.Stylist) StylistResponse {
	return StylistResponse{
		ID:    s.ID,
		Name:  s.Name,
		Title: s.Title,
		Image: s.Image,
	}
}

func fromDomainDay(d domain.OfferedDay) DayResponse {
	return DayResponse{Day: d.Day, Weekday: d.Weekday}
}
