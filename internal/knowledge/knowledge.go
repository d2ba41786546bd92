// Package knowledge holds the static reference tables used to match symptoms
// and rank medications. A Base is immutable once built and safe for any
// number of concurrent readers.
package knowledge

import (
	"slices"
	"strings"
)

// AgeCategory buckets a patient age for dosing and score adjustments.
type AgeCategory string

const (
	AgePediatric AgeCategory = "pediatric"
	AgeAdult     AgeCategory = "adult"
	AgeElderly   AgeCategory = "elderly"
)

// Medication is a candidate drug with its base effectiveness in [0,1].
type Medication struct {
	Name          string
	Effectiveness float64
}

// Condition is one entry of the supported condition set.
type Condition struct {
	ID          string
	Symptoms    []string
	Medications []Medication
	Lifestyle   []string
	Monitoring  []string
}

// Synonym maps a canonical symptom term to alternate phrasings.
type Synonym struct {
	Term      string
	Phrasings []string
}

// Adjustment is a signed score delta applied to any medication whose name
// contains DrugClass, compared case-insensitively.
type Adjustment struct {
	DrugClass string
	Delta     float64
}

// Matches reports whether the adjustment applies to the medication name.
func (a Adjustment) Matches(medication string) bool {
	return strings.Contains(strings.ToLower(medication), strings.ToLower(a.DrugClass))
}

// InteractionKey identifies a dangerous (condition, existing drug) pair.
// Drug is lowercased.
type InteractionKey struct {
	Condition string
	Drug      string
}

// Advisory is a free-text safety note raised by an existing drug. It never
// flags a dangerous interaction. Drug matches as a lowercase substring of the
// existing drug. An empty Condition applies to every condition; a non-empty
// Medications list requires at least one candidate medication name to contain
// one of its entries.
type Advisory struct {
	Condition   string
	Drug        string
	Medications []string
	Note        string
}

// Applies reports whether the advisory fires for the request.
func (a Advisory) Applies(condition, existingDrug string, candidates []Medication) bool {
	if a.Condition != "" && a.Condition != condition {
		return false
	}
	if !strings.Contains(strings.ToLower(existingDrug), a.Drug) {
		return false
	}
	if len(a.Medications) == 0 {
		return true
	}
	for _, m := range candidates {
		name := strings.ToLower(m.Name)
		for _, needle := range a.Medications {
			if strings.Contains(name, needle) {
				return true
			}
		}
	}
	return false
}

// Tables is the raw material for a Base. Slice order is significant: it is the
// tie-break order for both condition matching and medication ranking.
type Tables struct {
	Conditions           []Condition
	Synonyms             []Synonym
	ContextKeywords      map[string][]string
	Interactions         map[InteractionKey]string
	Advisories           []Advisory
	AgeAdjustments       map[AgeCategory][]Adjustment
	GenderAdjustments    map[string][]Adjustment
	ConditionAdjustments map[string][]Adjustment
	DefaultLifestyle     []string
	DefaultMonitoring    []string
}

// Base is the read-only lookup surface over Tables. Accessors hand out copies,
// so callers may keep or modify what they get back.
type Base struct {
	tables Tables
	index  map[string]int
}

// New indexes the given tables. The caller must not mutate t afterwards.
func New(t Tables) *Base {
	index := make(map[string]int, len(t.Conditions))
	for i, c := range t.Conditions {
		index[c.ID] = i
	}
	return &Base{tables: t, index: index}
}

var defaultBase = New(defaultTables())

// Default returns the process-wide knowledge base.
func Default() *Base {
	return defaultBase
}

// Conditions returns every condition in table order.
func (b *Base) Conditions() []Condition {
	out := make([]Condition, len(b.tables.Conditions))
	for i, c := range b.tables.Conditions {
		out[i] = cloneCondition(c)
	}
	return out
}

// Condition looks up a condition by id.
func (b *Base) Condition(id string) (Condition, bool) {
	i, ok := b.index[id]
	if !ok {
		return Condition{}, false
	}
	return cloneCondition(b.tables.Conditions[i]), true
}

// Symptoms returns the symptom phrases for a condition, or nil when unknown.
func (b *Base) Symptoms(condition string) []string {
	c, _ := b.Condition(condition)
	return c.Symptoms
}

// Medications returns the medication effectiveness list for a condition in
// table order, or nil when unknown.
func (b *Base) Medications(condition string) []Medication {
	c, _ := b.Condition(condition)
	return c.Medications
}

// Lifestyle returns condition-specific lifestyle advice, falling back to the
// generic list.
func (b *Base) Lifestyle(condition string) []string {
	if c, ok := b.Condition(condition); ok && len(c.Lifestyle) > 0 {
		return c.Lifestyle
	}
	return slices.Clone(b.tables.DefaultLifestyle)
}

// Monitoring returns condition-specific monitoring advice, falling back to the
// generic list.
func (b *Base) Monitoring(condition string) []string {
	if c, ok := b.Condition(condition); ok && len(c.Monitoring) > 0 {
		return c.Monitoring
	}
	return slices.Clone(b.tables.DefaultMonitoring)
}

// Synonyms returns the synonym table in table order.
func (b *Base) Synonyms() []Synonym {
	out := make([]Synonym, len(b.tables.Synonyms))
	for i, syn := range b.tables.Synonyms {
		out[i] = Synonym{Term: syn.Term, Phrasings: slices.Clone(syn.Phrasings)}
	}
	return out
}

// ContextKeywords returns the keywords that earn a condition a contextual bonus.
func (b *Base) ContextKeywords(condition string) []string {
	return slices.Clone(b.tables.ContextKeywords[condition])
}

// Interaction returns the warning for an exact (condition, drug) pair. drug is
// lowercased before lookup; no substring matching is done.
func (b *Base) Interaction(condition, drug string) (string, bool) {
	w, ok := b.tables.Interactions[InteractionKey{Condition: condition, Drug: strings.ToLower(drug)}]
	return w, ok
}

// Advisories returns the safety-note rules in table order.
func (b *Base) Advisories() []Advisory {
	out := make([]Advisory, len(b.tables.Advisories))
	for i, a := range b.tables.Advisories {
		out[i] = a
		out[i].Medications = slices.Clone(a.Medications)
	}
	return out
}

func (b *Base) AgeAdjustments(category AgeCategory) []Adjustment {
	return slices.Clone(b.tables.AgeAdjustments[category])
}

func (b *Base) GenderAdjustments(gender string) []Adjustment {
	return slices.Clone(b.tables.GenderAdjustments[gender])
}

func (b *Base) ConditionAdjustments(condition string) []Adjustment {
	return slices.Clone(b.tables.ConditionAdjustments[condition])
}

func cloneCondition(c Condition) Condition {
	c.Symptoms = slices.Clone(c.Symptoms)
	c.Medications = slices.Clone(c.Medications)
	c.Lifestyle = slices.Clone(c.Lifestyle)
	c.Monitoring = slices.Clone(c.Monitoring)
	return c
}
