package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchPercentage_EmptyJobSkills(t *testing.T) {
	c := DefaultConfig()

	assert.Equal(t, 0.0, c.MatchPercentage(0, 0, 10, 0))
	assert.Equal(t, 0.0, c.MatchPercentage(5, 0, 10, 0))
}

func TestMatchPercentage_Base(t *testing.T) {
	c := DefaultConfig()

	// 2/3 skills, experience exactly at requirement: no adjustment.
	got := c.MatchPercentage(2, 3, 5, 5)

	assert.InDelta(t, 66.67, got, 0.001)
}

func TestMatchPercentage_PenaltyPerMissingYear(t *testing.T) {
	c := DefaultConfig()

	// 100% skills, 2 years short: -2 points per year.
	got := c.MatchPercentage(3, 3, 3, 5)

	assert.InDelta(t, 96.0, got, 0.001)
}

func TestMatchPercentage_PenaltyFloorsAtZero(t *testing.T) {
	c := DefaultConfig()

	got := c.MatchPercentage(0, 3, 0, 30)

	assert.Equal(t, 0.0, got)
}

func TestMatchPercentage_BonusCapped(t *testing.T) {
	c := DefaultConfig()

	// 10 surplus years, bonus capped at +5.
	got := c.MatchPercentage(1, 2, 15, 5)

	assert.InDelta(t, 55.0, got, 0.001)
}

func TestMatchPercentage_CapsAtHundred(t *testing.T) {
	c := DefaultConfig()

	got := c.MatchPercentage(3, 3, 12, 10)

	assert.Equal(t, 100.0, got)
}

func TestMatchPercentage_BonusNonDecreasing(t *testing.T) {
	c := DefaultConfig()
	atRequirement := c.MatchPercentage(2, 4, 5, 5)

	for _, surplus := range []float64{0.5, 1, 2, 5, 10} {
		got := c.MatchPercentage(2, 4, 5+surplus, 5)
		assert.GreaterOrEqual(t, got, atRequirement)
		assert.LessOrEqual(t, got, atRequirement+DefaultBonusCap)
	}
}

func TestMatchPercentage_PenaltyLinear(t *testing.T) {
	c := DefaultConfig()

	oneShort := c.MatchPercentage(4, 4, 4, 5)
	twoShort := c.MatchPercentage(4, 4, 3, 5)

	assert.InDelta(t, DefaultPenaltyPerYear, oneShort-twoShort, 0.001)
}

func TestMatchPercentage_CustomConfig(t *testing.T) {
	c := Config{PenaltyPerYear: 5, BonusPerYear: 2, BonusCap: 10}

	assert.InDelta(t, 45.0, c.MatchPercentage(1, 2, 3, 4), 0.001)
	assert.InDelta(t, 58.0, c.MatchPercentage(1, 2, 8, 4), 0.001)
}

func TestFeedback_AllClauses(t *testing.T) {
	got := Feedback([]string{"AWS", "Terraform"}, []string{"Go", "SQL"}, 3, 5)

	assert.Equal(t,
		"Missing skills: AWS, Terraform | Experience is 2 years below the required experience. | Matched skills: Go, SQL",
		got)
}

func TestFeedback_NothingMissing(t *testing.T) {
	got := Feedback(nil, []string{"Go"}, 6, 5)

	assert.Equal(t,
		"All required skills are present. | Experience exceeds the required experience by 1 years. | Matched skills: Go",
		got)
}

func TestFeedback_NothingMatched(t *testing.T) {
	got := Feedback([]string{"Go"}, nil, 0, 0)

	assert.Equal(t,
		"Missing skills: Go | Experience exceeds the required experience by 0 years. | No skills matched.",
		got)
}

func TestFeedback_FractionalGap(t *testing.T) {
	got := Feedback(nil, []string{"Go"}, 2.5, 4)

	assert.Contains(t, got, "Experience is 1.5 years below the required experience.")
}
