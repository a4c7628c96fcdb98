package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateJob inserts a job posting along with its derived attributes and
// returns the stored record.
func (db *DB) CreateJob(ctx context.Context, title, description string, extractedSkills []string, requiredYears int) (*JobPosting, error) {
	if extractedSkills == nil {
		extractedSkills = []string{}
	}

	job := &JobPosting{
		Title:           title,
		Description:     description,
		ExtractedSkills: extractedSkills,
		RequiredYears:   requiredYears,
	}
	err := db.pool.QueryRow(ctx,
		`INSERT INTO jobs (title, description, extracted_skills, required_years)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		title, description, extractedSkills, requiredYears,
	).Scan(&job.ID, &job.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return job, nil
}

// GetJob retrieves a job posting by ID. Returns (nil, nil) when no job
// with that ID exists.
func (db *DB) GetJob(ctx context.Context, id uuid.UUID) (*JobPosting, error) {
	var job JobPosting
	err := db.pool.QueryRow(ctx,
		`SELECT id, title, description, extracted_skills, required_years, created_at
		 FROM jobs WHERE id = $1`,
		id,
	).Scan(&job.ID, &job.Title, &job.Description, &job.ExtractedSkills, &job.RequiredYears, &job.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return &job, nil
}

// ListJobs returns job postings, newest first.
func (db *DB) ListJobs(ctx context.Context, limit, offset int) ([]JobPosting, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, description, extracted_skills, required_years, created_at
		 FROM jobs ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]JobPosting, 0)
	for rows.Next() {
		var job JobPosting
		if err := rows.Scan(&job.ID, &job.Title, &job.Description, &job.ExtractedSkills, &job.RequiredYears, &job.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read jobs: %w", err)
	}
	return jobs, nil
}

// DeleteJob removes a job posting and, via cascade, its resumes. Returns
// whether a job was actually deleted.
func (db *DB) DeleteJob(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete job: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
