package plan

import "strings"

// Risk keyword fragments, matched as lowercase substrings against every
// condition and the limitations text. The high-risk list is checked first and
// short-circuits.
var (
	highRiskFragments = []string{
		"heart",
		"recent surgery",
		"stroke",
		"heart failure",
		"uncontrolled hypertension",
	}
	moderateRiskFragments = []string{
		"diabetes",
		"arthritis",
		"osteoporosis",
		"obesity",
		"copd",
	}
)

// Exclusion tags derived from free-text condition matching. They are advisory
// metadata carried on the plan for display; the selector does not hard-filter
// on them.
const (
	TagAvoidSpinalFlexion = "avoid_spinal_flexion"
	TagAvoidHighImpact    = "avoid_high_impact"
	TagNoHeavyIsometrics  = "no_heavy_isometrics"
)

// AssessRisk classifies a profile's medical risk from its conditions and
// free-text limitations. Any high-risk fragment match returns High, any
// moderate fragment returns Moderate, any other reported condition returns
// Low, and the sentinel or an empty list returns None. Pure function, no
// failure modes.
func AssessRisk(conditions []string, limitations string) RiskLevel {
	texts := make([]string, 0, len(conditions)+1)
	for _, cond := range conditions {
		texts = append(texts, strings.ToLower(cond))
	}
	texts = append(texts, strings.ToLower(limitations))

	if matchesAny(texts, highRiskFragments) {
		return RiskHigh
	}
	if matchesAny(texts, moderateRiskFragments) {
		return RiskModerate
	}
	if hasReportedConditions(conditions) {
		return RiskLow
	}
	return RiskNone
}

// ExclusionTags derives the advisory exclusion tag set from conditions and
// limitations. The result is sorted by tag constant declaration order so
// output is deterministic.
func ExclusionTags(conditions []string, limitations string) []string {
	var b strings.Builder
	for _, cond := range conditions {
		b.WriteString(strings.ToLower(cond))
		b.WriteString(" ")
	}
	b.WriteString(strings.ToLower(limitations))
	text := b.String()

	var tags []string
	if strings.Contains(text, "back") || strings.Contains(text, "disc") {
		tags = append(tags, TagAvoidSpinalFlexion)
	}
	if strings.Contains(text, "hip") || strings.Contains(text, "knee") || strings.Contains(text, "fracture") {
		tags = append(tags, TagAvoidHighImpact)
	}
	if strings.Contains(text, "cardiac") || strings.Contains(text, "heart") {
		tags = append(tags, TagNoHeavyIsometrics)
	}
	return tags
}

func matchesAny(texts, fragments []string) bool {
	for _, fragment := range fragments {
		for _, text := range texts {
			if strings.Contains(text, fragment) {
				return true
			}
		}
	}
	return false
}

func hasReportedConditions(conditions []string) bool {
	if len(conditions) == 0 {
		return false
	}
	if len(conditions) == 1 && strings.EqualFold(conditions[0], NoConditions) {
		return false
	}
	return true
}
