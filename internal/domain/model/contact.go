package model

import (
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxContactNameLen    = 120
	maxContactSubjectLen = 255
	maxContactBodyLen    = 5000
)

// ContactMessage represents a message submitted through the public contact form.
type ContactMessage struct {
	ID        string    `json:"id"         db:"id"`
	Name      string    `json:"name"       db:"name"`
	Email     string    `json:"email"      db:"email"`
	Subject   string    `json:"subject"    db:"subject"`
	Body      string    `json:"body"       db:"body"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CreateContactMessageRequest represents a contact form submission.
type CreateContactMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Validate validates CreateContactMessageRequest.
func (r *CreateContactMessageRequest) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errors.New("name is required and cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxContactNameLen {
		return errors.New("name cannot exceed 120 characters")
	}
	email := strings.TrimSpace(r.Email)
	if email == "" {
		return errors.New("email is required and cannot be empty")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errors.New("email is not a valid address")
	}
	if utf8.RuneCountInString(strings.TrimSpace(r.Subject)) > maxContactSubjectLen {
		return errors.New("subject cannot exceed 255 characters")
	}
	body := strings.TrimSpace(r.Body)
	if body == "" {
		return errors.New("body is required and cannot be empty")
	}
	if utf8.RuneCountInString(body) > maxContactBodyLen {
		return errors.New("body cannot exceed 5000 characters")
	}
	return nil
}
