package recommend

import (
	"github.com/Skufu/RxAdvisor/internal/knowledge"
	"github.com/Skufu/RxAdvisor/internal/symptoms"
)

const (
	DefaultGender = "adult"
	DefaultAge    = 30

	// UnknownCondition lets a caller defer the condition to symptom analysis.
	UnknownCondition = "unknown"

	unresolvedMessage = "Could not determine a valid health condition for medication recommendation."
)

type Request struct {
	HealthProblem string
	Gender        string
	Age           int
	ExistingDrug  string
	SymptomText   string
}

type Patient struct {
	Gender             string                `json:"gender"`
	Age                int                   `json:"age"`
	AgeCategory        knowledge.AgeCategory `json:"age_category"`
	ExistingMedication *string               `json:"existing_medication"`
}

type AIAnalysis struct {
	IsAIEnhanced    bool                      `json:"is_ai_enhanced"`
	SymptomAnalysis []symptoms.ConditionScore `json:"symptom_analysis"`
	CertaintyLevel  string                    `json:"certainty_level,omitempty"`
}

// ScoreAdjustment is one entry of a medication's adjustment trail.
type ScoreAdjustment struct {
	Factor     string  `json:"factor"`
	Adjustment float64 `json:"adjustment"`
}

type MedicationRecommendation struct {
	Medication              string            `json:"medication"`
	ConfidenceScore         float64           `json:"confidence_score"`
	IsDangerousWithExisting bool              `json:"is_dangerous_with_existing_medication"`
	ScoreAdjustments        []ScoreAdjustment `json:"score_adjustments"`
	DosingGuidance          string            `json:"dosing_guidance"`
}

type Safety struct {
	HasDangerousInteraction bool     `json:"has_dangerous_interaction"`
	InteractionWarning      *string  `json:"interaction_warning"`
	AlternativeMedication   *string  `json:"alternative_medication"`
	SafetyNotes             []string `json:"safety_notes"`
}

type Advice struct {
	LifestyleChanges []string `json:"lifestyle_changes"`
	Monitoring       []string `json:"monitoring"`
}

// Recommendation is the engine output. When Error is set only Timestamp,
// Message and AIAnalysis are populated.
type Recommendation struct {
	Timestamp                 string                     `json:"timestamp"`
	Error                     bool                       `json:"error,omitempty"`
	Message                   string                     `json:"message,omitempty"`
	Patient                   *Patient                   `json:"patient,omitempty"`
	PrimaryCondition          string                     `json:"primary_condition,omitempty"`
	AIAnalysis                AIAnalysis                 `json:"ai_analysis"`
	Recommendations           []MedicationRecommendation `json:"recommendations,omitempty"`
	Safety                    *Safety                    `json:"safety,omitempty"`
	AdditionalRecommendations *Advice                    `json:"additional_recommendations,omitempty"`
}

// TopMedication returns the highest ranked medication name, or "".
func (r Recommendation) TopMedication() string {
	if len(r.Recommendations) == 0 {
		return ""
	}
	return r.Recommendations[0].Medication
}
