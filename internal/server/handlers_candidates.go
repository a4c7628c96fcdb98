package server

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/jmatsuda/resume-screener/internal/db"
	"github.com/jmatsuda/resume-screener/internal/ranking"
)

// RankedCandidatesResponse is the response for GET /jobs/{id}/candidates.
type RankedCandidatesResponse struct {
	JobID            uuid.UUID             `json:"job_id"`
	ExtractedSkills  []string              `json:"extracted_job_skills"`
	RequiredYears    int                   `json:"required_experience"`
	RankedCandidates []ranking.MatchResult `json:"ranked_candidates"`
}

// handleRankedCandidates ranks every resume uploaded for a job against
// its description and returns the sorted, explained list. Results are
// recomputed per request; rankings are never persisted. A failure while
// scoring any single candidate fails the whole request, since a partial
// list would misrepresent the candidate pool.
func (s *Server) handleRankedCandidates(w http.ResponseWriter, r *http.Request) {
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

	resumes, err := s.db.ListResumesByJob(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	results, err := s.ranker.Rank(job.Description, candidatesFromResumes(resumes))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Ranking failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, RankedCandidatesResponse{
		JobID:            job.ID,
		ExtractedSkills:  job.ExtractedSkills,
		RequiredYears:    job.RequiredYears,
		RankedCandidates: results,
	})
}

// candidatesFromResumes adapts stored resumes into ranking input. The
// stored education is reused; skills and experience are recomputed from
// the raw text by the ranking pipeline.
func candidatesFromResumes(resumes []db.Resume) []ranking.Candidate {
	candidates := make([]ranking.Candidate, 0, len(resumes))
	for i := range resumes {
		resume := &resumes[i]
		candidates = append(candidates, ranking.Candidate{
			ID:        resume.DisplayName(),
			Text:      resume.RawText,
			Education: resume.Education,
		})
	}
	return candidates
}
