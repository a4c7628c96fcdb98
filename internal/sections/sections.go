// Package sections splits raw resume text into labeled sections using
// heading-keyword detection and stop-keyword boundaries.
package sections

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind identifies a resume section type.
type Kind string

const (
	Skills     Kind = "skills"
	Experience Kind = "experience"
	Education  Kind = "education"
)

// Policy holds the heading and stop keyword tables used to locate section
// boundaries. Keywords are matched case-insensitively on word boundaries.
// The tables are English-only; keeping them as data rather than inline
// literals leaves room for localized tables later.
type Policy struct {
	Headings map[Kind][]string
	Stops    map[Kind][]string
}

// DefaultPolicy returns the built-in keyword tables.
func DefaultPolicy() Policy {
	return Policy{
		Headings: map[Kind][]string{
			Skills:     {"technical skills", "skills", "technologies", "expertise", "proficiencies"},
			Experience: {"work experience", "professional experience", "employment history", "experience"},
			Education:  {"education", "academic background", "degrees", "certifications"},
		},
		Stops: map[Kind][]string{
			Skills:     {"work experience", "education", "projects", "certifications", "summary", "professional experience", "employment history"},
			Experience: {"education", "projects", "certifications", "summary", "technical skills", "skills"},
			Education:  {"experience", "work", "projects", "technical skills", "summary"},
		},
	}
}

// NotFound returns the sentinel text reported when a section is absent.
func NotFound(kind Kind) string {
	return fmt.Sprintf("%s section not found in resume.", titleCase(string(kind)))
}

// Extract returns the text belonging to the requested section, or the
// NotFound sentinel when no heading matches or the section has no content.
// The first matching heading wins; capture starts on the following line
// and stops at the first line matching a stop keyword for that section.
// Extract is pure and never fails.
func (p Policy) Extract(text string, kind Kind) string {
	headingRe := keywordPattern(p.Headings[kind])
	stopRe := keywordPattern(p.Stops[kind])
	if headingRe == nil {
		return NotFound(kind)
	}

	var captured []string
	capturing := false

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		if !capturing {
			if headingRe.MatchString(line) {
				capturing = true // heading line itself is discarded
			}
			continue
		}

		if stopRe != nil && stopRe.MatchString(line) {
			break
		}
		captured = append(captured, line)
	}

	section := strings.TrimSpace(strings.Join(captured, "\n"))
	if section == "" {
		return NotFound(kind)
	}
	return section
}

// skillDelimiters splits captured skills content into discrete tokens:
// commas, standalone dashes, newlines, and bullet characters.
var skillDelimiters = regexp.MustCompile(`,|\s-\s|\n|•`)

// SkillTokens extracts the skills section and splits it into individual
// skill tokens. Tokens that are themselves section-header terms are
// discarded, as are the first two tokens when more than two remain (the
// leading tokens tend to be residual label fragments from the heading
// line). An empty result means no skills were found.
func (p Policy) SkillTokens(text string) []string {
	section := p.Extract(text, Skills)
	if section == NotFound(Skills) {
		return nil
	}

	headerTerm := keywordPattern(p.Headings[Skills])
	var tokens []string
	for _, raw := range skillDelimiters.Split(section, -1) {
		token := strings.TrimSpace(raw)
		if token == "" {
			continue
		}
		if headerTerm != nil && headerTerm.MatchString(token) {
			continue
		}
		tokens = append(tokens, token)
	}

	if len(tokens) > 2 {
		tokens = tokens[2:]
	}
	return tokens
}

// keywordPattern builds a case-insensitive word-boundary alternation for
// the given keywords. Returns nil for an empty list.
func keywordPattern(keywords []string) *regexp.Regexp {
	if len(keywords) == 0 {
		return nil
	}
	quoted := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		quoted = append(quoted, regexp.QuoteMeta(kw))
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
