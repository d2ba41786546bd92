// Package audit keeps an anonymised trail of analyses and recommendations.
// Events carry no patient attributes: no age, gender or existing drug.
package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindAnalysis       Kind = "analysis"
	KindRecommendation Kind = "recommendation"
)

// Event is one audited outcome.
type Event struct {
	ID                   string    `json:"id"`
	Kind                 Kind      `json:"kind"`
	Condition            string    `json:"condition,omitempty"`
	TopMedication        string    `json:"top_medication,omitempty"`
	Certainty            string    `json:"certainty,omitempty"`
	DangerousInteraction bool      `json:"dangerous_interaction"`
	Unresolved           bool      `json:"unresolved"`
	At                   time.Time `json:"at"`
}

type Store interface {
	// Record persists the event, filling ID and At when empty.
	Record(ctx context.Context, e Event) (Event, error)
	// Recent returns the newest events first.
	Recent(ctx context.Context, limit int) ([]Event, error)
	Close() error
}

const (
	defaultLimit = 10
	maxLimit     = 50
)

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > maxLimit {
		return defaultLimit
	}
	return limit
}

func stamp(e Event) Event {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.At.IsZero() {
		e.At = time.Now().UTC()
	}
	e.At = e.At.UTC().Truncate(time.Second)
	return e
}
