package db

import (
	"time"

	"github.com/google/uuid"
)

// JobPosting is a stored job with its derived screening attributes. The
// extracted fields are computed once when the job is created and never
// updated afterwards.
type JobPosting struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	ExtractedSkills []string  `json:"extracted_skills"`
	RequiredYears   int       `json:"required_years"`
	CreatedAt       time.Time `json:"created_at"`
}

// Resume is a stored candidate resume. Each resume belongs to exactly one
// job posting; the extracted fields are derived once at upload time.
type Resume struct {
	ID              uuid.UUID `json:"id"`
	JobID           uuid.UUID `json:"job_id"`
	Filename        string    `json:"filename"`
	RawText         string    `json:"-"`
	Skills          []string  `json:"skills"`
	ExperienceYears float64   `json:"experience_years"`
	Education       string    `json:"education"`
	CreatedAt       time.Time `json:"created_at"`
}

// DisplayName returns the identifier shown for the resume in ranked
// output.
func (r *Resume) DisplayName() string {
	if r.Filename == "" {
		return "Unknown Filename"
	}
	return r.Filename
}
