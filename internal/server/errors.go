// Package server provides the HTTP REST API for the resume screener.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jmatsuda/resume-screener/internal/ingestion"
)

// ErrJobNotFound indicates the referenced job posting does not exist.
type ErrJobNotFound struct {
	JobID uuid.UUID
}

func (e *ErrJobNotFound) Error() string {
	return fmt.Sprintf("job not found: %s", e.JobID)
}

// ErrResumeNotFound indicates the referenced resume does not exist.
type ErrResumeNotFound struct {
	ResumeID uuid.UUID
}

func (e *ErrResumeNotFound) Error() string {
	return fmt.Sprintf("resume not found: %s", e.ResumeID)
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Not-found conditions and rejected uploads are client-visible and
// distinct from internal computation failures.
func HTTPStatus(err error) int {
	var (
		jobNotFound    *ErrJobNotFound
		resumeNotFound *ErrResumeNotFound
		validation     *ErrValidation
		badFormat      *ingestion.UnsupportedFormatError
		emptyFile      *ingestion.EmptyFileError
	)
	switch {
	case errors.As(err, &jobNotFound), errors.As(err, &resumeNotFound):
		return http.StatusNotFound
	case errors.As(err, &validation), errors.As(err, &badFormat), errors.As(err, &emptyFile):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
