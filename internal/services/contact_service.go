package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"folio.dev/internal/models"
)

// ErrInvalidContact is returned when a contact form fails validation
var ErrInvalidContact = errors.New("invalid contact form")

// ContactService accepts contact form submissions. Nothing is delivered:
// a submission waits for the configured delay and then succeeds.
type ContactService struct {
	delay time.Duration
	now   func() time.Time
}

// NewContactService creates a new ContactService
func NewContactService(delay time.Duration) *ContactService {
	return &ContactService{delay: delay, now: time.Now}
}

// Validate checks that every field is filled in and the email is well formed
func (s *ContactService) Validate(form models.ContactForm) error {
	var missing []string
	if strings.TrimSpace(form.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(form.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(form.Subject) == "" {
		missing = append(missing, "subject")
	}
	if strings.TrimSpace(form.Message) == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidContact, strings.Join(missing, ", "))
	}

	if _, err := mail.ParseAddress(form.Email); err != nil {
		return fmt.Errorf("%w: invalid email address", ErrInvalidContact)
	}
	return nil
}

// Submit validates form and simulates sending it
func (s *ContactService) Submit(ctx context.Context, form models.ContactForm) (*models.ContactReceipt, error) {
	if err := s.Validate(form); err != nil {
		return nil, err
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	receipt := &models.ContactReceipt{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(form.Name),
		SubmittedAt: s.now(),
	}
	log.Printf("Contact form %s accepted from %s", receipt.ID, receipt.Name)
	return receipt, nil
}
