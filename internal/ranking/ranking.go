// Package ranking orchestrates the screening pipeline: it extracts
// structured attributes from job and resume text and produces a ranked,
// explainable candidate list for a job posting.
package ranking

import (
	"fmt"
	"sort"

	"github.com/jmatsuda/resume-screener/internal/experience"
	"github.com/jmatsuda/resume-screener/internal/scoring"
	"github.com/jmatsuda/resume-screener/internal/sections"
	"github.com/jmatsuda/resume-screener/internal/skills"
)

// educationNotProvided is reported for candidates without education data.
const educationNotProvided = "Education not provided"

// JobAttributes are the structured fields derived from a job description.
type JobAttributes struct {
	Skills        []string `json:"skills"`
	RequiredYears int      `json:"required_years"`
}

// ResumeAttributes are the structured fields derived from resume text.
type ResumeAttributes struct {
	Skills          []string `json:"skills"`
	ExperienceYears float64  `json:"experience_years"`
	Education       string   `json:"education"`
}

// Candidate is one resume to be ranked: an identifier (typically the
// filename), the decoded resume text, and optionally pre-extracted
// education content.
type Candidate struct {
	ID        string
	Text      string
	Education string
}

// MatchResult is the scored outcome for one candidate. Results are
// computed on demand and never persisted.
type MatchResult struct {
	ID              string   `json:"id"`
	Skills          []string `json:"skills"`
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
	CandidateYears  float64  `json:"candidate_experience"`
	RequiredYears   int      `json:"required_experience"`
	Education       string   `json:"education"`
	MatchPercentage float64  `json:"match_percentage"`
	Feedback        string   `json:"feedback"`
}

// Ranker bundles the injected policy values the pipeline depends on. The
// vocabulary is read-only after construction, so a single Ranker is safe
// for concurrent use.
type Ranker struct {
	Sections sections.Policy
	Matcher  skills.Matcher
	Scoring  scoring.Config
	vocab    *skills.Vocabulary
}

// NewRanker builds a Ranker with default policy tables and the given
// vocabulary.
func NewRanker(vocab *skills.Vocabulary) *Ranker {
	return &Ranker{
		Sections: sections.DefaultPolicy(),
		Matcher:  skills.NewMatcher(0),
		Scoring:  scoring.DefaultConfig(),
		vocab:    vocab,
	}
}

// ExtractJobAttributes derives the skill set and required experience from
// a job description. Derived once at job creation and immutable after.
func (r *Ranker) ExtractJobAttributes(description string) JobAttributes {
	return JobAttributes{
		Skills:        skills.ExtractJobSkills(description, r.vocab),
		RequiredYears: experience.RequiredYears(description),
	}
}

// ExtractResumeAttributes derives skills, total experience, and education
// from decoded resume text. Extraction failures surface as sentinel
// values (empty skills, 0 years, "not found" text), never as errors.
func (r *Ranker) ExtractResumeAttributes(text string) ResumeAttributes {
	return ResumeAttributes{
		Skills:          r.Sections.SkillTokens(text),
		ExperienceYears: experience.TotalYears(text),
		Education:       r.Sections.Extract(text, sections.Education),
	}
}

// Rank scores every candidate against the job description and returns the
// results sorted descending by match percentage; ties keep input order.
// Candidates with no extractable skills, including ones with empty
// resume text, are still ranked (full missing set, typically near 0%)
// rather than dropped: a partial ranked list would misrepresent the
// candidate pool. Only a missing vocabulary is an error.
func (r *Ranker) Rank(jobDescription string, candidates []Candidate) ([]MatchResult, error) {
	if r.vocab == nil {
		return nil, fmt.Errorf("ranking requires a skill vocabulary")
	}

	job := r.ExtractJobAttributes(jobDescription)

	results := make([]MatchResult, 0, len(candidates))
	for _, candidate := range candidates {
		results = append(results, r.scoreCandidate(job, candidate))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchPercentage > results[j].MatchPercentage
	})
	return results, nil
}

// scoreCandidate runs the per-candidate pipeline: section extraction,
// experience calculation, skill comparison, scoring, and feedback. It
// never fails; absent content surfaces as sentinel values in the result.
func (r *Ranker) scoreCandidate(job JobAttributes, candidate Candidate) MatchResult {
	resumeSkills := r.Sections.SkillTokens(candidate.Text)
	candidateYears := experience.TotalYears(candidate.Text)

	matched, missing := r.Matcher.Compare(job.Skills, resumeSkills)

	education := candidate.Education
	if education == "" {
		education = educationNotProvided
	}

	percentage := r.Scoring.MatchPercentage(len(matched), len(job.Skills), candidateYears, job.RequiredYears)

	return MatchResult{
		ID:              candidate.ID,
		Skills:          resumeSkills,
		MatchedSkills:   matched,
		MissingSkills:   missing,
		CandidateYears:  candidateYears,
		RequiredYears:   job.RequiredYears,
		Education:       education,
		MatchPercentage: percentage,
		Feedback:        scoring.Feedback(missing, matched, candidateYears, job.RequiredYears),
	}
}
