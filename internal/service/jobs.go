package service

import (
	"context"

	"github.com/lodestone-games/studio-site/internal/core"
	"github.com/lodestone-games/studio-site/internal/domain/model"
)

// JobPostingServiceOptions groups dependencies for JobPostingService.
type JobPostingServiceOptions struct {
	JobRepo core.JobPostingRepository
}

// JobPostingService orchestrates job posting CRUD.
type JobPostingService struct {
	jobs core.JobPostingRepository
}

// NewJobPostingService constructs a new JobPostingService.
func NewJobPostingService(opts JobPostingServiceOptions) *JobPostingService {
	return &JobPostingService{jobs: opts.JobRepo}
}

// Create creates a job posting.
func (s *JobPostingService) Create(ctx context.Context, req *model.CreateJobPostingRequest) (*model.JobPosting, error) {
	return s.jobs.Create(ctx, req)
}

// Update applies a partial update to a job posting.
func (s *JobPostingService) Update(ctx context.Context, id string, req model.UpdateJobPostingRequest) (*model.JobPosting, error) {
	return s.jobs.Update(ctx, id, req)
}

// Delete removes a job posting by ID.
func (s *JobPostingService) Delete(ctx context.Context, id string) (bool, error) {
	return s.jobs.Delete(ctx, id)
}

// GetByID retrieves a job posting by ID.
func (s *JobPostingService) GetByID(ctx context.Context, id string) (*model.JobPosting, error) {
	return s.jobs.GetByID(ctx, id)
}

// GetBySlug retrieves a job posting by slug.
func (s *JobPostingService) GetBySlug(ctx context.Context, slug string) (*model.JobPosting, error) {
	return s.jobs.GetBySlug(ctx, slug)
}

// List returns a page of job postings, closed included.
func (s *JobPostingService) List(ctx context.Context, limit, offset int) ([]*model.JobPosting, error) {
	return s.jobs.List(ctx, limit, offset)
}

// ListOpen returns a page of open job postings.
func (s *JobPostingService) ListOpen(ctx context.Context, limit, offset int) ([]*model.JobPosting, error) {
	return s.jobs.ListOpen(ctx, limit, offset)
}
