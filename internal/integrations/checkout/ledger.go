package checkout

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/LondonHouse-ReservationService/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Ledger записывает запросы на оплату в таблицу checkout_requests (outbox для платежного воркера).
// Состояние мастера при этом не сохраняется.
type Ledger struct {
	db           DBExecutor
	period       domain.BookingPeriod
	timeProvider TimeProvider
	log          Logger
}

func NewLedger(db DBExecutor, period domain.BookingPeriod, log Logger) *Ledger {
	return &Ledger{
		db:           db,
		period:       period,
		timeProvider: realTimeProvider{},
		log:          log,
	}
}

func (l *Ledger) Checkout(ctx context.Context, selection domain.BookingSelection) error {
	req, err := NewRequest(selection, l.period, l.timeProvider.Now())
	if err != nil {
		return err
	}

	query, args, err := psql.Insert("checkout_requests").
		Columns(
			"id",
			"service_id",
			"service_name",
			"service_price",
			"stylist_id",
			"stylist_name",
			"day",
			"date_label",
			"slot",
			"created_at",
		).
		Values(
			req.ID,
			req.ServiceID,
			req.ServiceName,
			req.ServicePrice,
			req.StylistID,
			req.StylistName,
			req.Day,
			req.DateLabel,
			req.Time,
			req.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Checkout - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := l.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Checkout - execute insert: %v", ErrExecQuery, err)
	}

	l.log.Info("Checkout request recorded: request_id=%s", req.ID)
	return nil
}
