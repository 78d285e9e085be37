package data

import "errors"

// Shared sentinel errors for data-layer repositories.
var (
	// News repository sentinels.
	ErrNewsNotFound   = errors.New("news post not found")
	ErrNewsSlugExists = errors.New("news post slug already exists")

	// Job posting repository sentinels.
	ErrJobPostingNotFound   = errors.New("job posting not found")
	ErrJobPostingSlugExists = errors.New("job posting slug already exists")

	// Contact repository sentinels.
	ErrContactNotFound = errors.New("contact message not found")
)
