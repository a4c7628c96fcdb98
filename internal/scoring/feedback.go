package scoring

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Feedback composes a pipe-delimited summary of a candidate's match: the
// missing skills, the experience gap or surplus, and the matched skills.
// Pure formatting; never fails.
func Feedback(missing, matched []string, candidateYears float64, requiredYears int) string {
	parts := make([]string, 0, 3)

	if len(missing) > 0 {
		parts = append(parts, fmt.Sprintf("Missing skills: %s", strings.Join(missing, ", ")))
	} else {
		parts = append(parts, "All required skills are present.")
	}

	required := float64(requiredYears)
	if candidateYears < required {
		parts = append(parts, fmt.Sprintf("Experience is %s years below the required experience.",
			formatYears(required-candidateYears)))
	} else {
		parts = append(parts, fmt.Sprintf("Experience exceeds the required experience by %s years.",
			formatYears(candidateYears-required)))
	}

	if len(matched) > 0 {
		parts = append(parts, fmt.Sprintf("Matched skills: %s", strings.Join(matched, ", ")))
	} else {
		parts = append(parts, "No skills matched.")
	}

	return strings.Join(parts, " | ")
}

// formatYears renders a year delta with at most one decimal place, since
// experience values carry one-decimal precision.
func formatYears(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}
