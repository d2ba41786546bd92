package recommend

import (
	"fmt"
	"strings"

	"github.com/Skufu/RxAdvisor/internal/knowledge"
)

// DosingGuidance returns the first applicable dosing rule: elderly, then
// pediatric, then hypertension diuretics, then standard dosing.
func DosingGuidance(medication string, category knowledge.AgeCategory, gender, condition string) string {
	switch {
	case category == knowledge.AgeElderly:
		return fmt.Sprintf("Consider starting %s at lower dose (typically 50%% of standard adult dose) and titrate slowly. Monitor closely for side effects.", medication)
	case category == knowledge.AgePediatric:
		return fmt.Sprintf("Pediatric dosing of %s should be calculated based on weight. Consult pediatric dosing references.", medication)
	case condition == "hypertension" && strings.Contains(strings.ToLower(medication), "diuretic"):
		return fmt.Sprintf("Start with low dose of %s, especially in elderly patients. Monitor electrolytes and kidney function.", medication)
	default:
		return fmt.Sprintf("Standard dosing of %s as prescribed by healthcare provider.", medication)
	}
}
