package checkout

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/LondonHouse-ReservationService/internal/domain"
)

// Queue pushes checkout requests onto a Redis list consumed by the payment worker
type Queue struct {
	client       *redis.Client
	queue        string
	period       domain.BookingPeriod
	timeProvider TimeProvider
	log          Logger
}

func NewQueue(client *redis.Client, queue string, period domain.BookingPeriod, log Logger) *Queue {
	return &Queue{
		client:       client,
		queue:        queue,
		period:       period,
		timeProvider: realTimeProvider{},
		log:          log,
	}
}

func (q *Queue) Checkout(ctx context.Context, selection domain.BookingSelection) error {
	req, err := NewRequest(selection, q.period, q.timeProvider.Now())
	if err != nil {
		return err
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("%w: marshal request: %v", ErrPublish, err)
	}

	if err := q.client.RPush(ctx, q.queue, payload).Err(); err != nil {
		return fmt.Errorf("%w: rpush %s: %v", ErrPublish, q.queue, err)
	}

	q.log.Info("Checkout request queued: request_id=%s, queue=%s", req.ID, q.queue)
	return nil
}
