package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LondonHouse-ReservationService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

var testNow = time.Date(2026, time.October, 10, 12, 0, 0, 0, time.UTC)

func testPeriod() domain.BookingPeriod {
	return domain.BookingPeriod{Month: "October", MonthShort: "Oct", Year: 2026}
}

func completeSelection() domain.BookingSelection {
	slot := "01:00 PM"
	return domain.BookingSelection{
		Service: &domain.Service{ID: 1, Name: "Signature Haircut & Styling", Price: "₹2,500"},
		Stylist: &domain.Stylist{ID: 1, Name: "Aria Sterling"},
		Date:    &domain.OfferedDay{Day: 16, Weekday: "Wed"},
		Time:    &slot,
	}
}

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return client, mr
}

func TestNewRequest(t *testing.T) {
	req, err := NewRequest(completeSelection(), testPeriod(), testNow)
	require.NoError(t, err)

	assert.NotEmpty(t, req.ID)
	assert.Equal(t, int64(1), req.ServiceID)
	assert.Equal(t, "Signature Haircut & Styling", req.ServiceName)
	assert.Equal(t, "₹2,500", req.ServicePrice)
	assert.Equal(t, "Aria Sterling", req.StylistName)
	assert.Equal(t, 16, req.Day)
	assert.Equal(t, "Oct 16, 2026", req.DateLabel)
	assert.Equal(t, "01:00 PM", req.Time)
	assert.Equal(t, testNow, req.CreatedAt)
}

func TestNewRequest_Incomplete(t *testing.T) {
	selection := completeSelection()
	selection.Time = nil

	_, err := NewRequest(selection, testPeriod(), testNow)
	assert.ErrorIs(t, err, ErrIncompleteSelection)
}

func TestPlaceholder_Checkout(t *testing.T) {
	p := NewPlaceholder(testPeriod(), nopLogger{})

	assert.NoError(t, p.Checkout(context.Background(), completeSelection()))
	assert.ErrorIs(t, p.Checkout(context.Background(), domain.BookingSelection{}), ErrIncompleteSelection)
}

func TestQueue_Checkout(t *testing.T) {
	client, mr := setupTestRedis(t)
	q := NewQueue(client, "checkout:requests", testPeriod(), nopLogger{})
	q.timeProvider = fixedTime{t: testNow}

	require.NoError(t, q.Checkout(context.Background(), completeSelection()))

	items, err := mr.List("checkout:requests")
	require.NoError(t, err)
	require.Len(t, items, 1)

	var got Request
	require.NoError(t, json.Unmarshal([]byte(items[0]), &got))
	assert.Equal(t, "Signature Haircut & Styling", got.ServiceName)
	assert.Equal(t, "Oct 16, 2026", got.DateLabel)
	assert.Equal(t, "01:00 PM", got.Time)
	assert.True(t, testNow.Equal(got.CreatedAt))
}

func TestQueue_RedisUnavailable(t *testing.T) {
	client, mr := setupTestRedis(t)
	q := NewQueue(client, "checkout:requests", testPeriod(), nopLogger{})
	mr.Close()

	err := q.Checkout(context.Background(), completeSelection())
	assert.ErrorIs(t, err, ErrPublish)
}

func TestLedger_Checkout(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO checkout_requests").
		WithArgs(
			sqlmock.AnyArg(),
			int64(1),
			"Signature Haircut & Styling",
			"₹2,500",
			int64(1),
			"Aria Sterling",
			16,
			"Oct 16, 2026",
			"01:00 PM",
			testNow,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	l := NewLedger(db, testPeriod(), nopLogger{})
	l.timeProvider = fixedTime{t: testNow}

	require.NoError(t, l.Checkout(context.Background(), completeSelection()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedger_ExecError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO checkout_requests").WillReturnError(errors.New("connection refused"))

	l := NewLedger(db, testPeriod(), nopLogger{})
	err = l.Checkout(context.Background(), completeSelection())
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

type recordingMetrics struct {
	modes []string
	errs  []error
}

func (r *recordingMetrics) ObserveCheckout(mode string, err error) {
	r.modes = append(r.modes, mode)
	r.errs = append(r.errs, err)
}

func TestInstrumented(t *testing.T) {
	rec := &recordingMetrics{}
	c := NewInstrumented(NewPlaceholder(testPeriod(), nopLogger{}), "placeholder", rec)

	require.NoError(t, c.Checkout(context.Background(), completeSelection()))
	assert.Error(t, c.Checkout(context.Background(), domain.BookingSelection{}))

	assert.Equal(t, []string{"placeholder", "placeholder"}, rec.modes)
	assert.NoError(t, rec.errs[0])
	assert.ErrorIs(t, rec.errs[1], ErrIncompleteSelection)
}
