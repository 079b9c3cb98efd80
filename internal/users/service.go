package users

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrMissingFields is returned when a registration request omits a
// required field.
var ErrMissingFields = errors.New("name, email and password are required")

// ErrEmailTaken is returned when the email is already registered.
var ErrEmailTaken = errors.New("email already in use")

// ErrBadCredentials is returned when the password does not match.
var ErrBadCredentials = errors.New("incorrect password")

// Service provides account management on a Storage backend.
type Service struct {
	storage Storage
	logger  *zap.Logger
}

// NewService creates a new user Service.
func NewService(storage Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Register creates a new customer account with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, name, email, password string) (*User, error) {
	if name == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}

	if _, err := s.storage.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         RoleCustomer,
	}
	if err := s.storage.Create(ctx, u); err != nil {
		s.logger.Error("failed to save user", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	s.logger.Info("user registered", zap.Uint("user_id", u.ID), zap.String("email", u.Email))
	return u, nil
}

// Authenticate verifies the email/password pair and returns the matching
// user. Unknown email maps to ErrNotFound, wrong password to
// ErrBadCredentials.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	u, err := s.storage.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrBadCredentials
	}
	return u, nil
}

// Get returns a single user by ID.
func (s *Service) Get(ctx context.Context, id uint) (*User, error) {
	return s.storage.GetByID(ctx, id)
}

// List returns all users.
func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.storage.List(ctx)
}

// Delete removes a user account.
func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.storage.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("user deleted", zap.Uint("user_id", id))
	return nil
}
