package audit

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct {
	calls int
}

func (f *failingStore) Record(context.Context, Event) (Event, error) {
	f.calls++
	return Event{}, errors.New("disk full")
}

func (f *failingStore) Recent(context.Context, int) ([]Event, error) {
	f.calls++
	return nil, errors.New("disk full")
}

func (f *failingStore) Close() error { return nil }

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestBreakerPassesThrough(t *testing.T) {
	b := NewBreakerStore(NewMemoryStore(), quietLogger())
	ctx := context.Background()

	saved, err := b.Record(ctx, Event{Kind: KindAnalysis, Condition: "gerd"})
	require.NoError(t, err)

	recent, err := b.Recent(ctx, 5)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, saved, recent[0])
	assert.Equal(t, "closed", b.State())
	assert.NoError(t, b.Close())
}

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	inner := &failingStore{}
	b := NewBreakerStore(inner, quietLogger())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := b.Record(ctx, Event{Kind: KindAnalysis})
		assert.EqualError(t, err, "disk full")
	}
	assert.Equal(t, "open", b.State())

	_, err := b.Recent(ctx, 5)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 3, inner.calls)
}
