package skills

import (
	"regexp"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// DefaultThreshold is the fuzzy-match score a resume skill must exceed to
// count as covering a job skill. Resumes phrase skills inconsistently
// ("Node.js" vs "NodeJS"), so exact matching would undercount.
const DefaultThreshold = 80

// ExtractJobSkills returns the vocabulary skills that appear in the job
// description as whole-word, case-insensitive matches. Substring hits do
// not count: "Java" in the vocabulary does not match "JavaScript" in the
// description. The result carries no duplicates and follows vocabulary
// order.
func ExtractJobSkills(description string, vocab *Vocabulary) []string {
	if vocab == nil || vocab.Len() == 0 {
		return nil
	}
	lower := strings.ToLower(description)

	var found []string
	for _, skill := range vocab.skills {
		re, err := regexp.Compile(`\b` + regexp.QuoteMeta(strings.ToLower(skill)) + `\b`)
		if err != nil {
			continue
		}
		if re.MatchString(lower) {
			found = append(found, skill)
		}
	}
	return found
}

// Matcher fuzzy-compares job skills against resume skills.
type Matcher struct {
	// Threshold is the 0-100 token-sort-ratio score a candidate skill
	// must exceed to count as a match.
	Threshold int
}

// NewMatcher returns a Matcher with the given threshold, or the default
// when threshold is not positive.
func NewMatcher(threshold int) Matcher {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return Matcher{Threshold: threshold}
}

// Compare splits jobSkills into the subset covered by resumeSkills
// (matched) and the rest (missing). A job skill is covered when its best
// token-sort-ratio score against any resume skill exceeds the threshold.
// The two results are disjoint and their union is exactly the deduplicated
// job skill set. An empty resume skill list makes every job skill missing
// without any fuzzy comparison.
func (m Matcher) Compare(jobSkills, resumeSkills []string) (matched, missing []string) {
	matched = make([]string, 0, len(jobSkills))
	missing = make([]string, 0, len(jobSkills))

	seen := make(map[string]bool, len(jobSkills))
	for _, jobSkill := range jobSkills {
		if seen[jobSkill] {
			continue
		}
		seen[jobSkill] = true

		if m.bestScore(jobSkill, resumeSkills) > m.Threshold {
			matched = append(matched, jobSkill)
		} else {
			missing = append(missing, jobSkill)
		}
	}
	return matched, missing
}

// bestScore returns the highest token-sort-ratio score of jobSkill against
// the candidates, or 0 when there are none.
func (m Matcher) bestScore(jobSkill string, candidates []string) int {
	best := 0
	for _, candidate := range candidates {
		if score := fuzzy.TokenSortRatio(jobSkill, candidate); score > best {
			best = score
		}
	}
	return best
}
