package server

import (
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/jmatsuda/resume-screener/internal/db"
	"github.com/jmatsuda/resume-screener/internal/ingestion"
)

// maxUploadBytes bounds the size of a single resume upload.
const maxUploadBytes = 10 << 20

// UploadResumeResponse echoes the stored resume and its extracted data.
type UploadResumeResponse struct {
	ResumeID        uuid.UUID `json:"resume_id"`
	Filename        string    `json:"filename"`
	Skills          []string  `json:"skills"`
	ExperienceYears float64   `json:"experience_years"`
	Education       string    `json:"education"`
}

// handleUploadResume accepts a multipart PDF or DOCX upload for a job,
// decodes it to text, extracts the screening attributes, and stores the
// resume. Extraction sentinels ("not found" text, zero years, empty
// skills) are stored as-is; only decoding failures reject the upload.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
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
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing file field: "+err.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read upload: "+err.Error())
		return
	}

	text, err := ingestion.ExtractText(header.Filename, data)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	text = ingestion.CleanText(text)

	attrs := s.ranker.ExtractResumeAttributes(text)

	resume, err := s.db.CreateResume(r.Context(), &db.Resume{
		JobID:           jobID,
		Filename:        header.Filename,
		RawText:         text,
		Skills:          attrs.Skills,
		ExperienceYears: attrs.ExperienceYears,
		Education:       attrs.Education,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, UploadResumeResponse{
		ResumeID:        resume.ID,
		Filename:        resume.Filename,
		Skills:          resume.Skills,
		ExperienceYears: resume.ExperienceYears,
		Education:       resume.Education,
	})
}

// handleListResumes lists the resumes uploaded for a job.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	resumes, err := s.db.ListResumesByJob(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"resumes": resumes,
		"count":   len(resumes),
	})
}

// handleGetResume retrieves a stored resume by ID.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	resumeID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID")
		return
	}

	resume, err := s.db.GetResume(r.Context(), resumeID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if resume == nil {
		nf := &ErrResumeNotFound{ResumeID: resumeID}
		s.errorResponse(w, HTTPStatus(nf), "Resume not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, resume)
}
