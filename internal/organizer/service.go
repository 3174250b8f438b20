package organizer

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mwsasi/kandy-summer/internal/validate"
)

var (
	// ErrPasswordMismatch occurs when the signup confirmation differs from
	// the password.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrDuplicateAccount occurs when an account with the same email already
	// exists.
	ErrDuplicateAccount = errors.New("an account with this email already exists")

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the response does not reveal which accounts exist.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Service manages organizer accounts and credential checks.
type Service struct {
	repo *Repository

	// authDelay reproduces the deliberate processing pause of the login and
	// signup flows. Zero disables it.
	authDelay time.Duration
}

// NewService creates an account service.
func NewService(repo *Repository, authDelay time.Duration) *Service {
	return &Service{repo: repo, authDelay: authDelay}
}

// SignupInput carries the signup form fields.
type SignupInput struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginInput carries the login form fields.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Signup creates a new account with a hashed credential. The caller opens a
// session with the returned organizer.
func (s *Service) Signup(ctx context.Context, input SignupInput) (Organizer, error) {
	if err := validate.Struct(input); err != nil {
		return Organizer{}, err
	}
	if input.Password != input.ConfirmPassword {
		return Organizer{}, ErrPasswordMismatch
	}

	if err := wait(ctx, s.authDelay); err != nil {
		return Organizer{}, err
	}

	if _, exists, err := s.repo.FindByEmail(ctx, input.Email); err != nil {
		return Organizer{}, err
	} else if exists {
		return Organizer{}, ErrDuplicateAccount
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return Organizer{}, err
	}

	o := Organizer{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Append(ctx, o); err != nil {
		return Organizer{}, err
	}

	return o, nil
}

// Login verifies credentials against the stored hash.
func (s *Service) Login(ctx context.Context, input LoginInput) (Organizer, error) {
	if err := validate.Struct(input); err != nil {
		return Organizer{}, err
	}

	if err := wait(ctx, s.authDelay); err != nil {
		return Organizer{}, err
	}

	o, exists, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		return Organizer{}, err
	}
	if !exists {
		return Organizer{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(o.PasswordHash, []byte(input.Password)); err != nil {
		return Organizer{}, ErrInvalidCredentials
	}
	return o, nil
}

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
