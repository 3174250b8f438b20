package attendee

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mwsasi/kandy-summer/internal/notification"
	"github.com/mwsasi/kandy-summer/internal/validate"
)

var (
	// ErrMissingDocument occurs when a registration arrives without an
	// identity document.
	ErrMissingDocument = errors.New("ID proof is required for free tickets")

	// ErrDocumentTooLarge occurs when the encoded identity document exceeds
	// the configured ceiling.
	ErrDocumentTooLarge = errors.New("ID proof too large")

	// ErrDuplicateEmail occurs only when repeat registration is disabled by
	// configuration; the default policy allows the same email to register
	// multiple times.
	ErrDuplicateEmail = errors.New("this email has already registered")
)

// ServiceConfig tunes registration behavior.
type ServiceConfig struct {
	// SubmitDelay reproduces the deliberate processing pause of the original
	// submission flow. Zero disables it.
	SubmitDelay time.Duration

	// AllowRepeatEmail permits multiple registrations with the same email.
	AllowRepeatEmail bool

	// MaxDocumentBytes caps the encoded identity document size. Zero means
	// unlimited.
	MaxDocumentBytes int
}

// Service accepts and validates new registrations.
type Service struct {
	repo     *Repository
	cfg      ServiceConfig
	notifier notification.Notifier
	now      func() time.Time
}

// NewService creates a registration service.
func NewService(repo *Repository, cfg ServiceConfig, notifier notification.Notifier) *Service {
	return &Service{repo: repo, cfg: cfg, notifier: notifier, now: time.Now}
}

// RegisterInput carries the registration form fields plus the encoded
// identity document.
type RegisterInput struct {
	FullName    string `json:"fullName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required"`
	TicketCount int    `json:"ticketCount" validate:"gte=1,lte=4"`
	IDProof     string `json:"idProof"`
	Notes       string `json:"notes"`
}

// Register validates the input, stamps a fresh id and registration time, and
// appends the attendee to the collection.
func (s *Service) Register(ctx context.Context, input RegisterInput) (Attendee, error) {
	if strings.TrimSpace(input.IDProof) == "" {
		return Attendee{}, ErrMissingDocument
	}
	if s.cfg.MaxDocumentBytes > 0 && len(input.IDProof) > s.cfg.MaxDocumentBytes {
		return Attendee{}, ErrDocumentTooLarge
	}
	if err := validate.Struct(input); err != nil {
		return Attendee{}, err
	}

	if !s.cfg.AllowRepeatEmail {
		existing, err := s.repo.All(ctx)
		if err != nil {
			return Attendee{}, err
		}
		for _, a := range existing {
			if strings.EqualFold(a.Email, input.Email) {
				return Attendee{}, ErrDuplicateEmail
			}
		}
	}

	if err := wait(ctx, s.cfg.SubmitDelay); err != nil {
		return Attendee{}, err
	}

	a := Attendee{
		ID:           uuid.New().String(),
		FullName:     input.FullName,
		Email:        input.Email,
		Phone:        input.Phone,
		TicketCount:  input.TicketCount,
		IDProof:      input.IDProof,
		Notes:        input.Notes,
		RegisteredAt: s.now().UTC(),
		IsVerified:   false,
	}

	if err := s.repo.Append(ctx, a); err != nil {
		return Attendee{}, err
	}

	if s.notifier != nil {
		_ = s.notifier.Send(ctx, notification.Message{
			Kind:        notification.KindRegistration,
			Destination: a.Email,
			Body:        "Your free tickets for Kandy Summer Fest are reserved.",
		})
	}

	return a, nil
}

// wait pauses for the configured delay, honoring context cancellation.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
