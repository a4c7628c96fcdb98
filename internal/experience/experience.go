// Package experience computes experience durations from free text: the
// required years stated in a job description and the total worked years
// evidenced by date ranges in a resume.
package experience

import (
	"math"
	"regexp"
	"strconv"
	"time"
)

// requiredPattern matches phrases like "3+ years" or "5 years".
var requiredPattern = regexp.MustCompile(`(?i)(\d+)\+?\s*years?`)

// dateRangePattern matches ranges like "Jan 2019 - Mar 2021", with either
// a hyphen or an en-dash between the endpoints.
var dateRangePattern = regexp.MustCompile(
	`\b(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec) (\d{4})\s*[-–]\s*(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec) (\d{4})`)

// RequiredYears extracts the required years of experience from a job
// description. Returns 0 when no such phrase appears.
func RequiredYears(description string) int {
	m := requiredPattern.FindStringSubmatch(description)
	if m == nil {
		return 0
	}
	years, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return years
}

// TotalYears sums the durations of all month-year date ranges found in
// resume text and returns the total in years, rounded to one decimal
// place. Each range is counted inclusively of both endpoint months.
// Ranges whose start falls after their end, or that fail to parse, are
// skipped individually without aborting the rest. Overlapping ranges are
// summed without deduplication, so concurrent positions inflate the
// total.
func TotalYears(text string) float64 {
	totalMonths := 0

	for _, m := range dateRangePattern.FindAllStringSubmatch(text, -1) {
		start, err := time.Parse("Jan 2006", m[1]+" "+m[2])
		if err != nil {
			continue
		}
		end, err := time.Parse("Jan 2006", m[3]+" "+m[4])
		if err != nil {
			continue
		}
		if start.After(end) {
			continue
		}

		// +1 counts the final month as worked.
		months := (end.Year()-start.Year())*12 + int(end.Month()-start.Month()) + 1
		if months > 0 {
			totalMonths += months
		}
	}

	return math.Round(float64(totalMonths)/12*10) / 10
}
