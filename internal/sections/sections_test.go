package sections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleResume = `John Doe
Summary
Seasoned backend engineer.

Technical Skills
Python, SQL, AWS

Work Experience
Software Engineer at Acme
Jan 2019 - Mar 2021

Education
B.S. Computer Science, State University
`

func TestExtract_SkillsSection(t *testing.T) {
	p := DefaultPolicy()

	got := p.Extract(sampleResume, Skills)

	assert.Equal(t, "Python, SQL, AWS", got)
}

func TestExtract_EducationSection(t *testing.T) {
	p := DefaultPolicy()

	got := p.Extract(sampleResume, Education)

	assert.Equal(t, "B.S. Computer Science, State University", got)
}

func TestExtract_StopsAtNextSection(t *testing.T) {
	p := DefaultPolicy()

	got := p.Extract(sampleResume, Skills)

	// Content from the following sections must not leak in.
	assert.NotContains(t, got, "Acme")
	assert.NotContains(t, got, "Experience")
}

func TestExtract_HeadingNotFound(t *testing.T) {
	p := DefaultPolicy()

	got := p.Extract("Just a plain paragraph with no headings.", Education)

	assert.Equal(t, "Education section not found in resume.", got)
}

func TestExtract_HeadingWithNoContent(t *testing.T) {
	p := DefaultPolicy()
	text := "Skills\nWork Experience\nSoftware Engineer"

	got := p.Extract(text, Skills)

	assert.Equal(t, "Skills section not found in resume.", got)
}

func TestExtract_FirstHeadingWins(t *testing.T) {
	p := DefaultPolicy()
	text := "Education\nB.S. Mathematics\n\nEducation\nPh.D. Physics"

	got := p.Extract(text, Education)

	// Capture begins after the first heading; the later identical heading
	// line is ordinary content, not a new start.
	assert.Contains(t, got, "B.S. Mathematics")
}

func TestExtract_CaseInsensitiveHeadings(t *testing.T) {
	p := DefaultPolicy()
	text := "TECHNICAL SKILLS\nGo, Docker\nEDUCATION\nB.S."

	got := p.Extract(text, Skills)

	assert.Equal(t, "Go, Docker", got)
}

func TestSkillTokens_SplitsOnDelimiters(t *testing.T) {
	p := DefaultPolicy()
	text := "Technical Skills\nlabel, fragment, Python, SQL - AWS\n• Docker\nWork Experience\nAcme"

	got := p.SkillTokens(text)

	// The first two tokens are dropped as residual label fragments.
	assert.Equal(t, []string{"Python", "SQL", "AWS", "Docker"}, got)
}

func TestSkillTokens_DropsHeaderTerms(t *testing.T) {
	p := DefaultPolicy()
	text := "Skills\nTechnical Skills, one, two, Python, Kubernetes"

	got := p.SkillTokens(text)

	for _, token := range got {
		assert.NotEqual(t, "Technical Skills", token)
	}
	assert.Contains(t, got, "Python")
	assert.Contains(t, got, "Kubernetes")
}

func TestSkillTokens_NoSkillsSection(t *testing.T) {
	p := DefaultPolicy()

	got := p.SkillTokens("No recognizable headings here.")

	assert.Empty(t, got)
}

func TestSkillTokens_KeepsShortLists(t *testing.T) {
	p := DefaultPolicy()
	text := "Skills\nGo, Rust"

	got := p.SkillTokens(text)

	// Two or fewer tokens are kept as-is; the label-fragment trim only
	// applies when at least three tokens remain.
	assert.Equal(t, []string{"Go", "Rust"}, got)
}
