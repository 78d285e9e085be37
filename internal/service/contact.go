package service

import (
	"context"
	"log/slog"

	"github.com/lodestone-games/studio-site/internal/core"
	"github.com/lodestone-games/studio-site/internal/domain/model"
)

// ContactServiceOptions groups dependencies for ContactService.
type ContactServiceOptions struct {
	ContactRepo core.ContactRepository
	Logger      *slog.Logger
}

// ContactService handles contact form submissions and their admin review.
type ContactService struct {
	contacts core.ContactRepository
	logger   *slog.Logger
}

// NewContactService constructs a new ContactService.
func NewContactService(opts ContactServiceOptions) *ContactService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ContactService{
		contacts: opts.ContactRepo,
		logger:   logger.With("component", "contact_service"),
	}
}

// Submit stores a contact form submission.
func (s *ContactService) Submit(ctx context.Context, req *model.CreateContactMessageRequest) (*model.ContactMessage, error) {
	msg, err := s.contacts.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "contact message received", "id", msg.ID)
	return msg, nil
}

// List returns a page of contact messages, newest first.
func (s *ContactService) List(ctx context.Context, limit, offset int) ([]*model.ContactMessage, error) {
	return s.contacts.List(ctx, limit, offset)
}

// Delete removes a contact message by ID.
func (s *ContactService) Delete(ctx context.Context, id string) (bool, error) {
	return s.contacts.Delete(ctx, id)
}
