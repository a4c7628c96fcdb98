// Package scoring turns skill overlap and experience comparison into a
// final match percentage and human-readable feedback.
package scoring

import "math"

// Default policy constants. The penalty and bonus are percentage points
// per year of experience gap or surplus.
const (
	DefaultPenaltyPerYear = 2.0
	DefaultBonusPerYear   = 1.0
	DefaultBonusCap       = 5.0
)

// Config holds the tunable scoring constants.
type Config struct {
	PenaltyPerYear float64
	BonusPerYear   float64
	BonusCap       float64
}

// DefaultConfig returns the standard scoring constants.
func DefaultConfig() Config {
	return Config{
		PenaltyPerYear: DefaultPenaltyPerYear,
		BonusPerYear:   DefaultBonusPerYear,
		BonusCap:       DefaultBonusCap,
	}
}

// MatchPercentage computes the final match score in [0,100]. The base is
// the matched-skill ratio as a percentage. Candidates below the required
// experience lose PenaltyPerYear points per missing year, floored at 0;
// candidates at or above it gain BonusPerYear points per surplus year up
// to BonusCap, capped at 100. An empty job skill set scores 0.
func (c Config) MatchPercentage(matchedCount, jobSkillCount int, candidateYears float64, requiredYears int) float64 {
	if jobSkillCount == 0 {
		return 0
	}

	base := round2(float64(matchedCount) / float64(jobSkillCount) * 100)
	required := float64(requiredYears)

	var final float64
	if candidateYears < required {
		final = base - (required-candidateYears)*c.PenaltyPerYear
		if final < 0 {
			final = 0
		}
	} else {
		bonus := (candidateYears - required) * c.BonusPerYear
		if bonus > c.BonusCap {
			bonus = c.BonusCap
		}
		final = base + bonus
		if final > 100 {
			final = 100
		}
	}

	return round2(final)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
