package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateResume stores an uploaded resume with its extracted attributes
// and returns the stored record.
func (db *DB) CreateResume(ctx context.Context, resume *Resume) (*Resume, error) {
	if resume.Skills == nil {
		resume.Skills = []string{}
	}

	stored := *resume
	err := db.pool.QueryRow(ctx,
		`INSERT INTO resumes (job_id, filename, raw_text, skills, experience_years, education)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		resume.JobID, resume.Filename, resume.RawText, resume.Skills, resume.ExperienceYears, resume.Education,
	).Scan(&stored.ID, &stored.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create resume: %w", err)
	}
	return &stored, nil
}

// GetResume retrieves a resume by ID. Returns (nil, nil) when no resume
// with that ID exists.
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*Resume, error) {
	var resume Resume
	err := db.pool.QueryRow(ctx,
		`SELECT id, job_id, filename, raw_text, skills, experience_years, education, created_at
		 FROM resumes WHERE id = $1`,
		id,
	).Scan(&resume.ID, &resume.JobID, &resume.Filename, &resume.RawText,
		&resume.Skills, &resume.ExperienceYears, &resume.Education, &resume.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return &resume, nil
}

// ListResumesByJob returns all resumes uploaded for a job, oldest first
// so ranking ties resolve in upload order.
func (db *DB) ListResumesByJob(ctx context.Context, jobID uuid.UUID) ([]Resume, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, job_id, filename, raw_text, skills, experience_years, education, created_at
		 FROM resumes WHERE job_id = $1 ORDER BY created_at ASC`,
		jobID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	resumes := make([]Resume, 0)
	for rows.Next() {
		var resume Resume
		if err := rows.Scan(&resume.ID, &resume.JobID, &resume.Filename, &resume.RawText,
			&resume.Skills, &resume.ExperienceYears, &resume.Education, &resume.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		resumes = append(resumes, resume)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read resumes: %w", err)
	}
	return resumes, nil
}
