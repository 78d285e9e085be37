// Package mocks provides mock implementations for testing the studio site services.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockNewsRepository(ctrl)
//	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(post, nil)
package mocks

// Generate mock for NewsRepository interface from internal/core package.
// This creates MockNewsRepository with methods for all NewsRepository interface methods:
// Create, GetByID, GetBySlug, List, ListPublished, Update, Delete
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=news_repository_mock.go github.com/lodestone-games/studio-site/internal/core NewsRepository

// Generate mock for JobPostingRepository interface from internal/core package.
// This creates MockJobPostingRepository with methods for all JobPostingRepository interface methods:
// Create, GetByID, GetBySlug, List, ListOpen, Update, Delete
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=job_posting_repository_mock.go github.com/lodestone-games/studio-site/internal/core JobPostingRepository

// Generate mock for ContactRepository interface from internal/core package.
// This creates MockContactRepository with methods for all ContactRepository interface methods:
// Create, List, Delete
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=contact_repository_mock.go github.com/lodestone-games/studio-site/internal/core ContactRepository

// Generate mock for CacheRepository interface from internal/core package.
// This creates MockCacheRepository with methods for all CacheRepository interface methods:
// Set, Get, Delete
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=cache_repository_mock.go github.com/lodestone-games/studio-site/internal/core CacheRepository
