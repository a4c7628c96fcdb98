package experience

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequiredYears(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        int
	}{
		{"plus suffix", "At least 3+ years of experience in Python", 3},
		{"plain", "5 years of backend development", 5},
		{"singular", "1 year of Go", 1},
		{"case insensitive", "2 YEARS required", 2},
		{"first match wins", "3 years preferred, 7 years ideal", 3},
		{"absent", "Looking for a motivated engineer", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RequiredYears(tt.description))
		})
	}
}

func TestTotalYears_SingleRange(t *testing.T) {
	// 13 inclusive months: (2021-2020)*12 + (1-1) + 1.
	got := TotalYears("Software Engineer\nJan 2020 - Jan 2021")

	assert.InDelta(t, 1.1, got, 0.001)
}

func TestTotalYears_SequentialRangesSum(t *testing.T) {
	text := "Acme Corp Jan 2019 - Dec 2019\nGlobex Jan 2020 - Dec 2020"

	got := TotalYears(text)

	assert.InDelta(t, 2.0, got, 0.001)
}

func TestTotalYears_EnDash(t *testing.T) {
	got := TotalYears("Mar 2018 – Feb 2019")

	assert.InDelta(t, 1.0, got, 0.001)
}

func TestTotalYears_InvertedRangeSkipped(t *testing.T) {
	text := "Dec 2021 - Jan 2020\nJan 2019 - Dec 2019"

	got := TotalYears(text)

	// Only the valid 12-month range counts.
	assert.InDelta(t, 1.0, got, 0.001)
}

func TestTotalYears_NoRanges(t *testing.T) {
	assert.Equal(t, 0.0, TotalYears("No dates anywhere in this text."))
}

func TestTotalYears_OverlappingRangesDoubleCount(t *testing.T) {
	// Concurrent positions are summed without deduplication.
	text := "Jan 2020 - Dec 2020\nJan 2020 - Dec 2020"

	got := TotalYears(text)

	assert.InDelta(t, 2.0, got, 0.001)
}

func TestTotalYears_RoundsToOneDecimal(t *testing.T) {
	// 5 inclusive months = 0.41666... years.
	got := TotalYears("Jan 2021 - May 2021")

	assert.InDelta(t, 0.4, got, 0.001)
}
