package model

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/net/html"
)

const (
	maxNewsTitleLen = 255
	maxNewsSlugLen  = 128
	// excerptMaxRunes is the plain-text excerpt length shown on listing pages.
	excerptMaxRunes = 280
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// NewsPost represents a news article on the studio site.
type NewsPost struct {
	ID          string     `json:"id"                     db:"id"`
	Slug        string     `json:"slug"                   db:"slug"`
	Title       string     `json:"title"                  db:"title"`
	Body        string     `json:"body"                   db:"body"`
	Excerpt     string     `json:"excerpt"                db:"excerpt"`
	Published   bool       `json:"published"              db:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty" db:"published_at"`
	CreatedAt   time.Time  `json:"created_at"             db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"             db:"updated_at"`
}

// CreateNewsPostRequest represents parameters to create a NewsPost.
type CreateNewsPostRequest struct {
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Published *bool  `json:"published,omitempty"`
}

// UpdateNewsPostRequest represents parameters to update a NewsPost.
type UpdateNewsPostRequest struct {
	Slug      *string `json:"slug,omitempty"`
	Title     *string `json:"title,omitempty"`
	Body      *string `json:"body,omitempty"`
	Published *bool   `json:"published,omitempty"`
}

// Validate validates CreateNewsPostRequest.
func (r *CreateNewsPostRequest) Validate() error {
	r.Slug = strings.TrimSpace(strings.ToLower(r.Slug))
	if err := validateSlug(r.Slug); err != nil {
		return err
	}
	title := strings.TrimSpace(r.Title)
	if title == "" {
		return errors.New("title is required and cannot be empty")
	}
	if utf8.RuneCountInString(title) > maxNewsTitleLen {
		return errors.New("title cannot exceed 255 characters")
	}
	if strings.TrimSpace(r.Body) == "" {
		return errors.New("body is required and cannot be empty")
	}
	return nil
}

// HasUpdates reports whether any field is set in UpdateNewsPostRequest.
func (r *UpdateNewsPostRequest) HasUpdates() bool {
	return r.Slug != nil || r.Title != nil || r.Body != nil || r.Published != nil
}

// Validate validates UpdateNewsPostRequest, ensuring at least one field is set.
func (r *UpdateNewsPostRequest) Validate() error {
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
		if utf8.RuneCountInString(title) > maxNewsTitleLen {
			return errors.New("title cannot exceed 255 characters")
		}
	}
	if r.Body != nil && strings.TrimSpace(*r.Body) == "" {
		return errors.New("body cannot be empty")
	}
	return nil
}

func validateSlug(slug string) error {
	if slug == "" {
		return errors.New("slug is required and cannot be empty")
	}
	if utf8.RuneCountInString(slug) > maxNewsSlugLen {
		return errors.New("slug cannot exceed 128 characters")
	}
	if !slugPattern.MatchString(slug) {
		return errors.New("slug must contain only lowercase letters, digits, and hyphens")
	}
	return nil
}

// DeriveExcerpt strips markup from a post body and truncates the plain text
// for listing pages. Bodies are authored as HTML in the admin editor.
func DeriveExcerpt(body string) string {
	var sb strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(body))
	skipDepth := 0
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return truncateRunes(collapseWhitespace(sb.String()), excerptMaxRunes)
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if tag := string(name); tag == "script" || tag == "style" {
				skipDepth++
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if tag := string(name); (tag == "script" || tag == "style") && skipDepth > 0 {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth == 0 {
				sb.Write(tokenizer.Text())
				sb.WriteByte(' ')
			}
		}
	}
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return strings.TrimSpace(string(runes[:n])) + "…"
}
