package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const maxJobTitleLen = 255

// JobPosting represents an open position listed on the careers page.
type JobPosting struct {
	ID          string    `json:"id"          db:"id"`
	Slug        string    `json:"slug"        db:"slug"`
	Title       string    `json:"title"       db:"title"`
	Team        string    `json:"team"        db:"team"`
	Location    string    `json:"location"    db:"location"`
	Description string    `json:"description" db:"description"`
	Open        bool      `json:"open"        db:"open"`
	CreatedAt   time.Time `json:"created_at"  db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"  db:"updated_at"`
}

// CreateJobPostingRequest represents parameters to create a JobPosting.
type CreateJobPostingRequest struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Team        string `json:"team"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Open        *bool  `json:"open,omitempty"`
}

// UpdateJobPostingRequest represents parameters to update a JobPosting.
type UpdateJobPostingRequest struct {
	Slug        *string `json:"slug,omitempty"`
	Title       *string `json:"title,omitempty"`
	Team        *string `json:"team,omitempty"`
	Location    *string `json:"location,omitempty"`
	Description *string `json:"description,omitempty"`
	Open        *bool   `json:"open,omitempty"`
}

// Validate validates CreateJobPostingRequest.
func (r *CreateJobPostingRequest) Validate() error {
	r.Slug = strings.TrimSpace(strings.ToLower(r.Slug))
	if err := validateSlug(r.Slug); err != nil {
		return err
	}
	title := strings.TrimSpace(r.Title)
	if title == "" {
		return errors.New("title is required and cannot be empty")
	}
	if utf8.RuneCountInString(title) > maxJobTitleLen {
		return errors.New("title cannot exceed 255 characters")
	}
	if strings.TrimSpace(r.Description) == "" {
		return errors.New("description is required and cannot be empty")
	}
	return nil
}

// HasUpdates reports whether any field is set in UpdateJobPostingRequest.
func (r *UpdateJobPostingRequest) HasUpdates() bool {
	return r.Slug != nil || r.Title != nil || r.Team != nil || r.Location != nil ||
		r.Description != nil ||
		r.Open != nil
}

// Validate validates UpdateJobPostingRequest, ensuring at least one field is set.
func (r *UpdateJobPostingRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Slug != nil {
		*r.Slug = strings.TrimSpace(strings.ToLower(*r.Slug))
		if err := validateSlug(*r.Slug); err != nil {
			return err
		}
	}
	if r.Title != nil {
		title := strings.TrimSpace(*r.Title)
		if title == "" {
			return errors.New("title cannot be empty")
		}
		if utf8.RuneCountInString(title) > maxJobTitleLen {
			return errors.New("title cannot exceed 255 characters")
		}
	}
	if r.Description != nil && strings.TrimSpace(*r.Description) == "" {
		return errors.New("description cannot be empty")
	}
	return nil
}
