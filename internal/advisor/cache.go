package advisor

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"

	"github.com/Skufu/RxAdvisor/internal/symptoms"
)

// cachedAnalyzer memoizes matcher output by normalized text. Analysis depends
// only on the normalized form once the raw text is non-empty.
type cachedAnalyzer struct {
	matcher *symptoms.Matcher
	cache   *lru.Cache[string, []symptoms.ConditionScore]
	logger  *logrus.Logger
}

func newCachedAnalyzer(m *symptoms.Matcher, size int, logger *logrus.Logger) (*cachedAnalyzer, error) {
	cache, err := lru.New[string, []symptoms.ConditionScore](size)
	if err != nil {
		return nil, fmt.Errorf("create analysis cache: %w", err)
	}
	return &cachedAnalyzer{matcher: m, cache: cache, logger: logger}, nil
}

func (c *cachedAnalyzer) Analyze(text string) ([]symptoms.ConditionScore, bool) {
	if text == "" {
		return nil, false
	}

	key := symptoms.Normalize(text)
	if hit, ok := c.cache.Get(key); ok {
		c.logger.WithField("cache_size", c.cache.Len()).Debug("analysis cache hit")
		return cloneScores(hit), len(hit) > 0
	}

	results, ok := c.matcher.Analyze(text)
	c.cache.Add(key, cloneScores(results))
	return results, ok
}

// cloneScores keeps callers from mutating cached matched-symptom slices.
func cloneScores(in []symptoms.ConditionScore) []symptoms.ConditionScore {
	if in == nil {
		return nil
	}
	out := make([]symptoms.ConditionScore, len(in))
	for i, s := range in {
		out[i] = s
		out[i].MatchData.MatchedSymptoms = append([]string(nil), s.MatchData.MatchedSymptoms...)
	}
	return out
}
