// Package advisor is the request-level entry point: it runs symptom analysis
// through a shared cache, builds recommendations and records an audit trail.
package advisor

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Skufu/RxAdvisor/internal/audit"
	"github.com/Skufu/RxAdvisor/internal/knowledge"
	"github.com/Skufu/RxAdvisor/internal/recommend"
	"github.com/Skufu/RxAdvisor/internal/symptoms"
)

type Advisor struct {
	analyzer *cachedAnalyzer
	engine   *recommend.Engine
	store    audit.Store
	logger   *logrus.Logger
}

func New(kb *knowledge.Base, store audit.Store, logger *logrus.Logger, cacheSize int) (*Advisor, error) {
	analyzer, err := newCachedAnalyzer(symptoms.NewMatcher(kb), cacheSize, logger)
	if err != nil {
		return nil, err
	}
	return &Advisor{
		analyzer: analyzer,
		engine:   recommend.NewEngine(kb, analyzer),
		store:    store,
		logger:   logger,
	}, nil
}

// AnalyzeSymptoms ranks conditions for the text; ok is false on no match.
func (a *Advisor) AnalyzeSymptoms(ctx context.Context, text string) ([]symptoms.ConditionScore, bool) {
	results, ok := a.analyzer.Analyze(text)

	event := audit.Event{Kind: audit.KindAnalysis, Unresolved: !ok}
	if ok {
		event.Condition = results[0].Condition
		event.Certainty = certainty(results[0].MatchData.Score)
	}
	a.record(ctx, event)
	return results, ok
}

func (a *Advisor) Recommend(ctx context.Context, req recommend.Request) recommend.Recommendation {
	rec := a.engine.Recommend(req)

	event := audit.Event{
		Kind:       audit.KindRecommendation,
		Condition:  rec.PrimaryCondition,
		Certainty:  rec.AIAnalysis.CertaintyLevel,
		Unresolved: rec.Error,
	}
	if !rec.Error {
		event.TopMedication = rec.TopMedication()
		event.DangerousInteraction = rec.Safety.HasDangerousInteraction
		a.logger.WithFields(logrus.Fields{
			"condition":             rec.PrimaryCondition,
			"dangerous_interaction": rec.Safety.HasDangerousInteraction,
			"safety_notes":          len(rec.Safety.SafetyNotes),
		}).Info("recommendation built")
	} else {
		a.logger.Info("recommendation unresolved")
	}
	a.record(ctx, event)
	return rec
}

// RecentAudit lists the newest audit events.
func (a *Advisor) RecentAudit(ctx context.Context, limit int) ([]audit.Event, error) {
	events, err := a.store.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	return events, nil
}

// record never fails the caller; audit loss is logged.
func (a *Advisor) record(ctx context.Context, e audit.Event) {
	if _, err := a.store.Record(ctx, e); err != nil {
		a.logger.WithError(err).WithField("kind", e.Kind).Warn("audit record dropped")
	}
}

func certainty(score float64) string {
	if score > 70 {
		return "high"
	}
	return "moderate"
}
