// Package symptoms ranks knowledge-base conditions against free-text symptom
// descriptions.
package symptoms

import (
	"sort"
	"strings"
	"unicode"

	"github.com/Skufu/RxAdvisor/internal/knowledge"
)

const (
	phraseWeight     = 1.0
	wordWeight       = 0.5
	emphasisWeight   = 0.7
	contextBonus     = 0.5
	coOccurrenceMin  = 3
	coOccurrenceGain = 1.0
	perMatchBonus    = 5.0
	maxMatchBonus    = 20.0
	scoreCap         = 98.0
	threshold        = 25.0
	maxResults       = 3
	minWordLength    = 4
)

var emphasisWords = map[string]bool{
	"severe":     true,
	"chronic":    true,
	"acute":      true,
	"recurring":  true,
	"persistent": true,
}

// MatchData is the scored evidence for one condition.
type MatchData struct {
	Score           float64  `json:"score"`
	MatchedSymptoms []string `json:"matched_symptoms"`
}

// ConditionScore is a ranked candidate condition.
type ConditionScore struct {
	Condition string    `json:"condition"`
	MatchData MatchData `json:"match_data"`
}

// Matcher scores free text against every condition of a knowledge base.
type Matcher struct {
	kb *knowledge.Base
}

func NewMatcher(kb *knowledge.Base) *Matcher {
	return &Matcher{kb: kb}
}

// Normalize lowercases text and strips everything that is not a word
// character or whitespace.
func Normalize(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_' || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, strings.ToLower(text))
}

// Analyze returns at most three conditions scoring at least 25, best first.
// The boolean is false when nothing clears the threshold, including for
// empty input.
func (m *Matcher) Analyze(text string) ([]ConditionScore, bool) {
	if text == "" {
		return nil, false
	}

	normalized := Normalize(text)
	words := make(map[string]bool)
	for _, w := range strings.Fields(normalized) {
		words[w] = true
	}
	expanded := m.expand(normalized)

	var scored []ConditionScore
	for _, c := range m.kb.Conditions() {
		if len(c.Symptoms) == 0 {
			continue
		}
		score, matched := m.scoreCondition(c, expanded, words)

		base := score / float64(len(c.Symptoms)) * 100
		bonus := min(maxMatchBonus, float64(len(matched))*perMatchBonus)

		scored = append(scored, ConditionScore{
			Condition: c.ID,
			MatchData: MatchData{
				Score:           min(scoreCap, base+bonus),
				MatchedSymptoms: dedupe(matched),
			},
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchData.Score > scored[j].MatchData.Score
	})

	var top []ConditionScore
	for _, s := range scored {
		if s.MatchData.Score < threshold {
			continue
		}
		top = append(top, s)
		if len(top) == maxResults {
			break
		}
	}
	if len(top) == 0 {
		return nil, false
	}
	return top, true
}

// expand appends the canonical term once for every synonym phrasing found in
// the text. The original text is kept.
func (m *Matcher) expand(text string) string {
	var b strings.Builder
	b.WriteString(text)
	for _, syn := range m.kb.Synonyms() {
		for _, phrase := range syn.Phrasings {
			if strings.Contains(text, phrase) {
				b.WriteByte(' ')
				b.WriteString(syn.Term)
			}
		}
	}
	return b.String()
}

func (m *Matcher) scoreCondition(c knowledge.Condition, expanded string, words map[string]bool) (float64, []string) {
	var score float64
	var matched []string

	for _, symptom := range c.Symptoms {
		if strings.Contains(expanded, symptom) {
			score += phraseWeight
			matched = append(matched, symptom)
			continue
		}

		hit := false
		for _, w := range strings.Fields(symptom) {
			if len(w) < minWordLength || !words[w] {
				continue
			}
			if emphasisWords[w] {
				score += emphasisWeight
			} else {
				score += wordWeight
			}
			if !hit {
				matched = append(matched, symptom)
				hit = true
			}
		}
	}

	for _, kw := range m.kb.ContextKeywords(c.ID) {
		if strings.Contains(expanded, kw) {
			score += contextBonus
			break
		}
	}

	if len(matched) >= coOccurrenceMin {
		score += coOccurrenceGain
	}
	return score, matched
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
