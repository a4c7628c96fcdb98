package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jmatsuda/resume-screener/internal/fetch"
)

// CreateJobRequest is the request body for POST /jobs.
type CreateJobRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// CreateJobResponse echoes the stored job with its derived attributes.
type CreateJobResponse struct {
	JobID           uuid.UUID `json:"job_id"`
	Title           string    `json:"title"`
	ExtractedSkills []string  `json:"extracted_skills"`
	RequiredYears   int       `json:"required_years"`
}

// handleCreateJob stores a job posting. Skills and required experience
// are derived from the description once, here; the stored values never
// change afterwards.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var req CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	attrs := s.ranker.ExtractJobAttributes(req.Description)

	job, err := s.db.CreateJob(r.Context(), req.Title, req.Description, attrs.Skills, attrs.RequiredYears)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, CreateJobResponse{
		JobID:           job.ID,
		Title:           job.Title,
		ExtractedSkills: job.ExtractedSkills,
		RequiredYears:   job.RequiredYears,
	})
}

// CreateJobFromURLRequest is the request body for POST /jobs/from-url.
type CreateJobFromURLRequest struct {
	Title string `json:"title" validate:"required"`
	URL   string `json:"url" validate:"required,url"`
}

// handleCreateJobFromURL fetches a job posting page, extracts its
// description text, and stores it as a job. Known ATS platforms get
// platform-specific content extraction.
func (s *Server) handleCreateJobFromURL(w http.ResponseWriter, r *http.Request) {
	var req CreateJobFromURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	description, err := fetch.JobPosting(r.Context(), req.URL, nil)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Failed to fetch job posting: "+err.Error())
		return
	}

	attrs := s.ranker.ExtractJobAttributes(description)

	job, err := s.db.CreateJob(r.Context(), req.Title, description, attrs.Skills, attrs.RequiredYears)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, CreateJobResponse{
		JobID:           job.ID,
		Title:           job.Title,
		ExtractedSkills: job.ExtractedSkills,
		RequiredYears:   job.RequiredYears,
	})
}

// handleGetJob retrieves a job posting by ID.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	job, err := s.db.GetJob(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if job == nil {
		nf := &ErrJobNotFound{JobID: jobID}
		s.errorResponse(w, HTTPStatus(nf), "Job not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, job)
}

// handleListJobs lists job postings with pagination.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	limit := parseQueryInt(r, "limit", 50, 100)
	offset := parseQueryInt(r, "offset", 0, 0)

	jobs, err := s.db.ListJobs(r.Context(), limit, offset)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"jobs":  jobs,
		"count": len(jobs),
	})
}

// handleDeleteJob deletes a job posting and its resumes.
func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	deleted, err := s.db.DeleteJob(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Job deleted"})
}

// parseQueryInt parses a non-negative integer query parameter, falling
// back to defaultValue and clamping to maxValue when maxValue > 0.
func parseQueryInt(r *http.Request, key string, defaultValue, maxValue int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return defaultValue
	}
	if maxValue > 0 && value > maxValue {
		return maxValue
	}
	return value
}
