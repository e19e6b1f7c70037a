package services

import (
	"context"

	"github.com/nasheeman/portal/internal/app/models"
	"github.com/nasheeman/portal/internal/app/models/dto"
	"github.com/nasheeman/portal/internal/pkg/logger"
)

// contactStore is the persistence surface the contact service needs.
type contactStore interface {
	Create(ctx context.Context, contact *models.Contact) error
	GetAll(ctx context.Context) ([]*models.Contact, error)
	SetRead(ctx context.Context, id int64, read bool) error
	UnreadCount(ctx context.Context) (int, error)
	Delete(ctx context.Context, id int64) error
}

// ContactService manages public contact messages and their read state.
type ContactService struct {
	contactRepo contactStore
}

// NewContactService creates a new contact service
func NewContactService(contactRepo contactStore) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
	}
}

// Submit stores a public contact message. New messages start unread.
func (s *ContactService) Submit(ctx context.Context, req *dto.ContactRequest) (*models.Contact, error) {
	contact := &models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Subject: optional(req.Subject),
		Message: req.Message,
	}

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}

	logger.Info().Int64("contact_id", contact.ID).Str("email", contact.Email).Msg("Contact message received")
	return contact, nil
}

// List returns messages newest first.
func (s *ContactService) List(ctx context.Context) ([]*models.Contact, error) {
	return s.contactRepo.GetAll(ctx)
}

// MarkRead flags a message read. Marking a read message again is a no-op.
func (s *ContactService) MarkRead(ctx context.Context, id int64) error {
	return s.contactRepo.SetRead(ctx, id, true)
}

// MarkUnread flags a message unread. Marking an unread message again is a no-op.
func (s *ContactService) MarkUnread(ctx context.Context, id int64) error {
	return s.contactRepo.SetRead(ctx, id, false)
}

// UnreadCount returns the number of unread messages.
func (s *ContactService) UnreadCount(ctx context.Context) (int, error) {
	return s.contactRepo.UnreadCount(ctx)
}

// Delete removes a message.
func (s *ContactService) Delete(ctx context.Context, id int64) error {
	return s.contactRepo.Delete(ctx, id)
}
