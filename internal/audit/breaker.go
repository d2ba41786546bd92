package audit

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

// BreakerStore stops calling a failing backend until it has had time to recover.
type BreakerStore struct {
	inner   Store
	breaker *gobreaker.CircuitBreaker
}

func NewBreakerStore(inner Store, logger *logrus.Logger) *BreakerStore {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "audit",
		MaxRequests: 1,
		Interval:    30 * time.Second,
		Timeout:     60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("audit circuit breaker state changed")
		},
	})
	return &BreakerStore{inner: inner, breaker: cb}
}

func (b *BreakerStore) Record(ctx context.Context, e Event) (Event, error) {
	out, err := b.breaker.Execute(func() (interface{}, error) {
		return b.inner.Record(ctx, e)
	})
	if err != nil {
		return Event{}, err
	}
	return out.(Event), nil
}

func (b *BreakerStore) Recent(ctx context.Context, limit int) ([]Event, error) {
	out, err := b.breaker.Execute(func() (interface{}, error) {
		return b.inner.Recent(ctx, limit)
	})
	if err != nil {
		return nil, err
	}
	return out.([]Event), nil
}

// State reports the breaker state, e.g. "closed" or "open".
func (b *BreakerStore) State() string {
	return b.breaker.State().String()
}

func (b *BreakerStore) Close() error {
	return b.inner.Close()
}
