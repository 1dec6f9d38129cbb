package start_session

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LondonHouse-ReservationService/internal/domain"
	"github.com/m04kA/LondonHouse-ReservationService/internal/service/sessions"
	"github.com/m04kA/LondonHouse-ReservationService/internal/service/sessions/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle_StartsSession(t *testing.T) {
	catalog := domain.Catalog{
		Services:  []domain.Service{{ID: 1, Name: "Signature Haircut & Styling", Price: "₹2,500"}},
		Stylists:  []domain.Stylist{{ID: 1, Name: "Aria Sterling"}},
		Period:    domain.BookingPeriod{Month: "October", MonthShort: "Oct", Year: 2026, Days: []domain.OfferedDay{{Day: 16, Weekday: "Wed"}}},
		TimeSlots: []string{"01:00 PM"},
	}
	svc := sessions.NewService(catalog, 0, 0, nil, nil, nopLogger{})
	h := NewHandler(svc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil))

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.SessionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "booking", resp.View)
	assert.Equal(t, 1, resp.Stage)
	assert.Equal(t, "service", resp.StageName)
	require.Len(t, resp.Services, 1)
	assert.False(t, resp.Services[0].Selected)
	assert.Equal(t, 1, svc.Count())
}
