package sessions

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LondonHouse-ReservationService/internal/domain"
	"github.com/m04kA/LondonHouse-ReservationService/pkg/metrics"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Add(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type recordingCheckout struct {
	mu    sync.Mutex
	calls []domain.BookingSelection
	err   error
}

func (c *recordingCheckout) Checkout(_ context.Context, selection domain.BookingSelection) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, selection)
	return c.err
}

type recordingMetrics struct {
	mu     sync.Mutex
	events map[string]int
	active int
}

func (m *recordingMetrics) ObserveWizardEvent(event, stage string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.events == nil {
		m.events = make(map[string]int)
	}
	m.events[event+"/"+stage]++
}

func (m *recordingMetrics) SetActiveSessions(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active = n
}

func testCatalog() domain.Catalog {
	return domain.Catalog{
		Services: []domain.Service{
			{ID: 1, Name: "Signature Haircut & Styling", Duration: "60 Min", Price: "₹2,500", Category: "Hair"},
			{ID: 2, Name: "Balayage & Color Correction", Duration: "180 Min", Price: "₹8,500", Category: "Hair"},
		},
		Stylists: []domain.Stylist{
			{ID: 1, Name: "Aria Sterling", Title: "Creative Director"},
			{ID: 2, Name: "Julian Vance", Title: "Master Colorist"},
		},
		Period: domain.BookingPeriod{
			Month:      "October",
			MonthShort: "Oct",
			Year:       2026,
			Days: []domain.OfferedDay{
				{Day: 15, Weekday: "Tue"},
				{Day: 16, Weekday: "Wed"},
			},
		},
		TimeSlots: []string{"10:00 AM", "01:00 PM"},
	}
}

type fixture struct {
	service  *Service
	clock    *fakeClock
	checkout *recordingCheckout
	metrics  *recordingMetrics
}

func newFixture(t *testing.T, settleDelay time.Duration) *fixture {
	t.Helper()
	f := &fixture{
		clock:    &fakeClock{now: time.Date(2026, time.October, 1, 10, 0, 0, 0, time.UTC)},
		checkout: &recordingCheckout{},
		metrics:  &recordingMetrics{},
	}
	f.service = NewService(testCatalog(), settleDelay, 10*time.Minute, f.checkout, f.metrics, nopLogger{}).
		WithTimeProvider(f.clock)
	return f
}

// walk fills the happy path and reaches the confirmation stage
func (f *fixture) walk(t *testing.T, id string) {
	t.Helper()
	ctx := context.Background()

	_, err := f.service.SelectService(ctx, id, 1)
	require.NoError(t, err)
	_, err = f.service.Advance(ctx, id)
	require.NoError(t, err)
	_, err = f.service.SelectStylist(ctx, id, 1)
	require.NoError(t, err)
	_, err = f.service.Advance(ctx, id)
	require.NoError(t, err)
	_, err = f.service.SelectDate(ctx, id, 16)
	require.NoError(t, err)
	_, err = f.service.SelectTime(ctx, id, "01:00 PM")
	require.NoError(t, err)
	resp, err := f.service.Advance(ctx, id)
	require.NoError(t, err)
	require.Equal(t, int(domain.StageConfirmation), resp.Stage)
}

func TestService_Start(t *testing.T) {
	f := newFixture(t, 0)

	resp, err := f.service.Start(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, domain.ViewBooking, resp.View)
	assert.Equal(t, int(domain.StageService), resp.Stage)
	assert.Equal(t, "The Service", resp.StageLabel)
	assert.False(t, resp.CanAdvance)
	assert.False(t, resp.CanRetreat)
	assert.Len(t, resp.Services, 2)
	assert.Empty(t, resp.Stylists)
	assert.Nil(t, resp.Selection.Service)
	require.Len(t, resp.Progress, 4)
	assert.True(t, resp.Progress[0].Active)

	assert.Equal(t, 1, f.service.Count())
	assert.Equal(t, 1, f.metrics.active)
}

func TestService_UnknownSession(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	_, err := f.service.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = f.service.Advance(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = f.service.SelectService(ctx, "missing", 1)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = f.service.Exit(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestService_CatalogMisses(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	started, err := f.service.Start(ctx)
	require.NoError(t, err)

	_, err = f.service.SelectService(ctx, started.ID, 99)
	assert.ErrorIs(t, err, ErrServiceNotFound)

	_, err = f.service.SelectStylist(ctx, started.ID, 99)
	assert.ErrorIs(t, err, ErrStylistNotFound)

	_, err = f.service.SelectDate(ctx, started.ID, 1)
	assert.ErrorIs(t, err, ErrDayNotOffered)

	_, err = f.service.SelectTime(ctx, started.ID, "11:11 PM")
	assert.ErrorIs(t, err, ErrSlotNotOffered)
}

func TestService_PickRejected(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	started, err := f.service.Start(ctx)
	require.NoError(t, err)

	// Мастер еще на первом шаге
	_, err = f.service.SelectStylist(ctx, started.ID, 1)
	assert.ErrorIs(t, err, ErrPickRejected)

	_, err = f.service.SelectService(ctx, started.ID, 1)
	require.NoError(t, err)
	_, err = f.service.Advance(ctx, started.ID)
	require.NoError(t, err)
	_, err = f.service.SelectStylist(ctx, started.ID, 1)
	require.NoError(t, err)
	_, err = f.service.Advance(ctx, started.ID)
	require.NoError(t, err)

	// Время без даты
	_, err = f.service.SelectTime(ctx, started.ID, "10:00 AM")
	assert.ErrorIs(t, err, ErrPickRejected)

	assert.Equal(t, 1, f.metrics.events["pick_rejected/service"])
	assert.Equal(t, 1, f.metrics.events["pick_rejected/schedule"])
}

func TestService_AdvanceBlockedIsNotAnError(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	started, err := f.service.Start(ctx)
	require.NoError(t, err)

	resp, err := f.service.Advance(ctx, started.ID)
	require.NoError(t, err)
	assert.Equal(t, int(domain.StageService), resp.Stage)
	assert.Equal(t, 1, f.metrics.events["advance_blocked/service"])
}

func TestService_SettleDelay(t *testing.T) {
	f := newFixture(t, 400*time.Millisecond)
	ctx := context.Background()
	started, err := f.service.Start(ctx)
	require.NoError(t, err)

	_, err = f.service.SelectService(ctx, started.ID, 2)
	require.NoError(t, err)

	resp, err := f.service.Advance(ctx, started.ID)
	require.NoError(t, err)
	assert.True(t, resp.Transitioning)
	assert.Equal(t, int(domain.StageService), resp.Stage)

	// Во время перехода выбор не принимается
	_, err = f.service.SelectService(ctx, started.ID, 1)
	assert.ErrorIs(t, err, ErrPickRejected)

	f.clock.Add(400 * time.Millisecond)

	resp, err = f.service.Get(ctx, started.ID)
	require.NoError(t, err)
	assert.False(t, resp.Transitioning)
	assert.Equal(t, int(domain.StageStylist), resp.Stage)
	require.NotNil(t, resp.Selection.Service)
	assert.Equal(t, int64(2), resp.Selection.Service.ID)
}

func TestService_RetreatKeepsSelection(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	started, err := f.service.Start(ctx)
	require.NoError(t, err)
	f.walk(t, started.ID)

	for _, want := range []domain.WizardStage{domain.StageSchedule, domain.StageStylist, domain.StageService} {
		resp, err := f.service.Retreat(ctx, started.ID)
		require.NoError(t, err)
		assert.Equal(t, int(want), resp.Stage)
	}

	resp, err := f.service.Get(ctx, started.ID)
	require.NoError(t, err)
	require.NotNil(t, resp.Selection.Service)
	require.NotNil(t, resp.Selection.Stylist)
	require.NotNil(t, resp.Selection.Date)
	require.NotNil(t, resp.Selection.Time)
	assert.Equal(t, "01:00 PM", *resp.Selection.Time)
	assert.True(t, resp.Services[0].Selected)
	assert.False(t, resp.Services[1].Selected)
}

func TestService_ScheduleView(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	started, err := f.service.Start(ctx)
	require.NoError(t, err)

	_, err = f.service.SelectService(ctx, started.ID, 1)
	require.NoError(t, err)
	_, err = f.service.Advance(ctx, started.ID)
	require.NoError(t, err)
	_, err = f.service.SelectStylist(ctx, started.ID, 2)
	require.NoError(t, err)

	resp, err := f.service.Advance(ctx, started.ID)
	require.NoError(t, err)
	assert.Equal(t, "October 2026", resp.Period)
	assert.Len(t, resp.Days, 2)
	assert.Empty(t, resp.TimeSlots)

	resp, err = f.service.SelectDate(ctx, started.ID, 15)
	require.NoError(t, err)
	assert.True(t, resp.Days[0].Selected)
	assert.Len(t, resp.TimeSlots, 2)
	assert.False(t, resp.CanAdvance)
}

func TestService_Confirm(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	started, err := f.service.Start(ctx)
	require.NoError(t, err)
	f.walk(t, started.ID)

	view, err := f.service.Get(ctx, started.ID)
	require.NoError(t, err)
	require.NotNil(t, view.Summary)
	assert.Equal(t, "Oct 16, 2026", view.Summary.Date)

	resp, err := f.service.Confirm(ctx, started.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ViewWebsite, resp.View)
	assert.True(t, resp.Confirmed)
	assert.Equal(t, "Signature Haircut & Styling", resp.Summary.ServiceName)
	assert.Equal(t, "₹2,500", resp.Summary.ServicePrice)
	assert.Equal(t, "Aria Sterling", resp.Summary.StylistName)
	assert.Equal(t, "Oct 16, 2026", resp.Summary.Date)
	assert.Equal(t, "01:00 PM", resp.Summary.Time)

	require.Len(t, f.checkout.calls, 1)
	assert.True(t, f.checkout.calls[0].IsComplete())

	// Сессия закрыта после подтверждения
	_, err = f.service.Get(ctx, started.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Equal(t, 0, f.service.Count())
	assert.Equal(t, 0, f.metrics.active)
}

func TestService_ConfirmCheckoutFailureStillCloses(t *testing.T) {
	f := newFixture(t, 0)
	f.checkout.err = errors.New("gateway down")
	ctx := context.Background()
	started, err := f.service.Start(ctx)
	require.NoError(t, err)
	f.walk(t, started.ID)

	resp, err := f.service.Confirm(ctx, started.ID)
	require.NoError(t, err)
	assert.True(t, resp.Confirmed)
	assert.Equal(t, 0, f.service.Count())
}

func TestService_ConfirmBeforeLastStage(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	started, err := f.service.Start(ctx)
	require.NoError(t, err)

	_, err = f.service.Confirm(ctx, started.ID)
	assert.ErrorIs(t, err, ErrConfirmUnavailable)
	assert.Empty(t, f.checkout.calls)
	assert.Equal(t, 1, f.service.Count())
}

func TestService_ExitDiscardsSession(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	started, err := f.service.Start(ctx)
	require.NoError(t, err)

	_, err = f.service.SelectService(ctx, started.ID, 1)
	require.NoError(t, err)
	_, err = f.service.Advance(ctx, started.ID)
	require.NoError(t, err)

	resp, err := f.service.Exit(ctx, started.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ViewWebsite, resp.View)
	assert.Equal(t, 0, f.service.Count())
	assert.Equal(t, 1, f.metrics.events[metrics.EventExit+"/stylist"])

	// Новая сессия начинается с пустого выбора
	again, err := f.service.Start(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, started.ID, again.ID)
	assert.Equal(t, int(domain.StageService), again.Stage)
	assert.Nil(t, again.Selection.Service)
}

func TestService_SweepIdle(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	idle, err := f.service.Start(ctx)
	require.NoError(t, err)

	f.clock.Add(6 * time.Minute)
	busy, err := f.service.Start(ctx)
	require.NoError(t, err)

	f.clock.Add(5 * time.Minute)
	swept := f.service.SweepIdle(f.clock.Now())
	assert.Equal(t, 1, swept)

	_, err = f.service.Get(ctx, idle.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = f.service.Get(ctx, busy.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, f.metrics.active)
}

func TestService_RunStopsOnCancel(t *testing.T) {
	f := newFixture(t, 0)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		f.service.Run(ctx, time.Millisecond)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}

func TestService_ConcurrentRequests(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	started, err := f.service.Start(ctx)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				_, _ = f.service.SelectService(ctx, started.ID, int64(i%2+1))
			} else {
				_, _ = f.service.Get(ctx, started.ID)
			}
		}(i)
	}
	wg.Wait()

	resp, err := f.service.Get(ctx, started.ID)
	require.NoError(t, err)
	assert.Equal(t, int(domain.StageService), resp.Stage)
	require.NotNil(t, resp.Selection.Service)
}
