// Package recommend turns a condition and patient attributes into a ranked,
// personalized medication recommendation with safety warnings.
package recommend

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/Skufu/RxAdvisor/internal/knowledge"
	"github.com/Skufu/RxAdvisor/internal/symptoms"
)

const (
	maxRecommendations = 3
	highCertaintyScore = 70.0
	interactionPenalty = -0.5
)

// Analyzer ranks conditions from free text.
type Analyzer interface {
	Analyze(text string) ([]symptoms.ConditionScore, bool)
}

type Engine struct {
	kb       *knowledge.Base
	analyzer Analyzer
	now      func() time.Time
}

func NewEngine(kb *knowledge.Base, analyzer Analyzer) *Engine {
	return &Engine{kb: kb, analyzer: analyzer, now: time.Now}
}

// patientContext is what the adjustment passes see for one request.
type patientContext struct {
	condition    string
	gender       string
	category     knowledge.AgeCategory
	existingDrug string
	dangerous    bool
}

// adjustmentPass yields the labelled deltas it contributes to one medication.
type adjustmentPass func(pc patientContext, medication string) []ScoreAdjustment

func (e *Engine) passes() []adjustmentPass {
	return []adjustmentPass{
		func(pc patientContext, med string) []ScoreAdjustment {
			return tableAdjustments(fmt.Sprintf("Age category (%s)", pc.category), e.kb.AgeAdjustments(pc.category), med)
		},
		func(pc patientContext, med string) []ScoreAdjustment {
			return tableAdjustments(fmt.Sprintf("Gender (%s)", pc.gender), e.kb.GenderAdjustments(pc.gender), med)
		},
		func(pc patientContext, med string) []ScoreAdjustment {
			return tableAdjustments(fmt.Sprintf("Condition specific (%s)", pc.condition), e.kb.ConditionAdjustments(pc.condition), med)
		},
		interactionAdjustment,
	}
}

func tableAdjustments(factor string, table []knowledge.Adjustment, medication string) []ScoreAdjustment {
	var out []ScoreAdjustment
	for _, adj := range table {
		if adj.Matches(medication) {
			out = append(out, ScoreAdjustment{Factor: factor, Adjustment: adj.Delta})
		}
	}
	return out
}

func interactionAdjustment(pc patientContext, medication string) []ScoreAdjustment {
	if pc.existingDrug == "" || !pc.dangerous || !strings.EqualFold(medication, pc.existingDrug) {
		return nil
	}
	return []ScoreAdjustment{{Factor: "Drug interaction", Adjustment: interactionPenalty}}
}

// Recommend builds a recommendation. Unresolvable conditions are reported in
// the result with Error set rather than as a Go error.
func (e *Engine) Recommend(req Request) Recommendation {
	condition := strings.ToLower(strings.TrimSpace(req.HealthProblem))
	gender := strings.ToLower(strings.TrimSpace(req.Gender))
	existing := strings.TrimSpace(req.ExistingDrug)

	var analysis []symptoms.ConditionScore
	analyzed := false
	if req.SymptomText != "" && e.analyzer != nil {
		analyzed = true
		var ok bool
		analysis, ok = e.analyzer.Analyze(req.SymptomText)
		if ok && (condition == "" || condition == UnknownCondition) {
			condition = analysis[0].Condition
		}
	}

	ai := AIAnalysis{IsAIEnhanced: true, SymptomAnalysis: analysis}
	if analyzed {
		ai.CertaintyLevel = "moderate"
		if len(analysis) > 0 && analysis[0].MatchData.Score > highCertaintyScore {
			ai.CertaintyLevel = "high"
		}
	}

	timestamp := e.now().Format(time.RFC3339)
	meds := e.kb.Medications(condition)
	if condition == "" || len(meds) == 0 {
		return Recommendation{
			Timestamp:  timestamp,
			Error:      true,
			Message:    unresolvedMessage,
			AIAnalysis: ai,
		}
	}

	ranked := make([]knowledge.Medication, len(meds))
	copy(ranked, meds)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Effectiveness > ranked[j].Effectiveness
	})

	safety := e.checkSafety(condition, existing, ranked)
	category := CategorizeAge(req.Age)
	pc := patientContext{
		condition:    condition,
		gender:       gender,
		category:     category,
		existingDrug: existing,
		dangerous:    safety.HasDangerousInteraction,
	}

	top := ranked[:min(maxRecommendations, len(ranked))]
	recs := make([]MedicationRecommendation, 0, len(top))
	for _, med := range top {
		recs = append(recs, e.personalize(pc, med))
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].ConfidenceScore > recs[j].ConfidenceScore
	})

	patient := &Patient{Gender: req.Gender, Age: req.Age, AgeCategory: category}
	if existing != "" {
		patient.ExistingMedication = &existing
	}

	return Recommendation{
		Timestamp:        timestamp,
		Patient:          patient,
		PrimaryCondition: condition,
		AIAnalysis:       ai,
		Recommendations:  recs,
		Safety:           safety,
		AdditionalRecommendations: &Advice{
			LifestyleChanges: e.kb.Lifestyle(condition),
			Monitoring:       e.kb.Monitoring(condition),
		},
	}
}

func (e *Engine) checkSafety(condition, existing string, ranked []knowledge.Medication) *Safety {
	safety := &Safety{SafetyNotes: []string{}}
	if existing == "" {
		return safety
	}

	if warning, ok := e.kb.Interaction(condition, existing); ok {
		safety.HasDangerousInteraction = true
		safety.InteractionWarning = &warning
		alt := ranked[0].Name
		safety.AlternativeMedication = &alt
	}

	for _, adv := range e.kb.Advisories() {
		if adv.Applies(condition, existing, ranked) {
			safety.SafetyNotes = append(safety.SafetyNotes, adv.Note)
		}
	}
	return safety
}

func (e *Engine) personalize(pc patientContext, med knowledge.Medication) MedicationRecommendation {
	score := med.Effectiveness
	trail := []ScoreAdjustment{}
	for _, pass := range e.passes() {
		for _, adj := range pass(pc, med.Name) {
			score += adj.Adjustment
			trail = append(trail, adj)
		}
	}

	return MedicationRecommendation{
		Medication:              med.Name,
		ConfidenceScore:         roundScore(score),
		IsDangerousWithExisting: len(interactionAdjustment(pc, med.Name)) > 0,
		ScoreAdjustments:        trail,
		DosingGuidance:          DosingGuidance(med.Name, pc.category, pc.gender, pc.condition),
	}
}

// roundScore clamps to [0,1] and rounds to two decimals.
func roundScore(score float64) float64 {
	score = math.Max(0, math.Min(1, score))
	return math.Round(score*100) / 100
}
