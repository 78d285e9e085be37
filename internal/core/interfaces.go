package core

import (
	"context"
	"time"

	"github.com/lodestone-games/studio-site/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// These interfaces define the contracts between the service layer and data layer.
// Service implementations should depend on these interfaces, not concrete implementations.

// NewsRepository defines the interface for news post data operations.
type NewsRepository interface {
	Create(ctx context.Context, req *model.CreateNewsPostRequest) (*model.NewsPost, error)
	GetByID(ctx context.Context, id string) (*model.NewsPost, error)
	GetBySlug(ctx context.Context, slug string) (*model.NewsPost, error)
	List(ctx context.Context, limit, offset int) ([]*model.NewsPost, error)
	ListPublished(ctx context.Context, limit, offset int) ([]*model.NewsPost, error)
	Update(ctx context.Context, id string, req model.UpdateNewsPostRequest) (*model.NewsPost, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// JobPostingRepository defines the interface for job posting data operations.
type JobPostingRepository interface {
	Create(ctx context.Context, req *model.CreateJobPostingRequest) (*model.JobPosting, error)
	GetByID(ctx context.Context, id string) (*model.JobPosting, error)
	GetBySlug(ctx context.Context, slug string) (*model.JobPosting, error)
	List(ctx context.Context, limit, offset int) ([]*model.JobPosting, error)
	ListOpen(ctx context.Context, limit, offset int) ([]*model.JobPosting, error)
	Update(ctx context.Context, id string, req model.UpdateJobPostingRequest) (*model.JobPosting, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ContactRepository defines the interface for contact message data operations.
type ContactRepository interface {
	Create(ctx context.Context, req *model.CreateContactMessageRequest) (*model.ContactMessage, error)
	List(ctx context.Context, limit, offset int) ([]*model.ContactMessage, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// CacheRepository defines the interface for TTL cache operations.
type CacheRepository interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) (bool, error)
}
