package credentials

import (
	"context"
	"time"

	"go.uber.org/zap"

	"careerportal/internal/crypto"
	"careerportal/internal/models"
)

// RegisterResult says what Register did.
type RegisterResult int

const (
	// Failed means hashing or storage failed; nothing was written.
	Failed RegisterResult = iota
	Created
	// AlreadyExists is not an error: the first registration wins.
	AlreadyExists
)

func (r RegisterResult) String() string {
	switch r {
	case Created:
		return "created"
	case AlreadyExists:
		return "already_exists"
	default:
		return "failed"
	}
}

// Store is the credential store used by the portal flows.
type Store struct {
	repo   CredentialRepository
	logger *zap.Logger
	now    func() time.Time
}

type Option func(*Store)

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithClock overrides the registration timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func NewStore(repo CredentialRepository, opts ...Option) *Store {
	s := &Store{repo: repo, logger: zap.NewNop(), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.Named("credentials")
	return s
}

// Register hashes the password and inserts the user unless the email is
// already taken. Format checks belong to the caller.
func (s *Store) Register(ctx context.Context, email, password, firstName, lastName string) RegisterResult {
	hash, err := crypto.HashPassword(password)
	if err != nil {
		s.logger.Error("Error registering user", zap.String("email", email), zap.Error(err))
		return Failed
	}
	inserted, err := s.repo.Insert(ctx, models.RegisteredUser{
		Email:        email,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
		RegisteredAt: s.now().UTC(),
	})
	if err != nil {
		s.logger.Error("Error registering user", zap.String("email", email), zap.Error(err))
		return Failed
	}
	if !inserted {
		s.logger.Debug("User already registered", zap.String("email", email))
		return AlreadyExists
	}
	s.logger.Info("User registered successfully", zap.String("email", email))
	return Created
}

// ValidateCredentials reports whether email is registered with password.
// Unknown emails still pay for a hash comparison.
func (s *Store) ValidateCredentials(ctx context.Context, email, password string) bool {
	u, ok := s.GetUserByEmail(ctx, email)
	if !ok {
		crypto.BurnPasswordCheck(password)
		return false
	}
	return crypto.CheckPasswordHash(password, u.PasswordHash)
}

func (s *Store) IsEmailRegistered(ctx context.Context, email string) bool {
	_, ok := s.GetUserByEmail(ctx, email)
	return ok
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.RegisteredUser, bool) {
	u, err := s.repo.Find(ctx, email)
	if err != nil {
		s.logger.Error("Error getting user by email", zap.String("email", email), zap.Error(err))
		return nil, false
	}
	return u, u != nil
}

// Users returns every registered user, or nil when storage is unreadable.
func (s *Store) Users(ctx context.Context) []models.RegisteredUser {
	users, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("Error retrieving registered users", zap.Error(err))
		return nil
	}
	return users
}

// ClearAll unconditionally drops every registration.
func (s *Store) ClearAll(ctx context.Context) {
	if err := s.repo.Clear(ctx); err != nil {
		s.logger.Error("Error clearing users", zap.Error(err))
		return
	}
	s.logger.Info("All registered users cleared")
}

func (s *Store) Close() error { return s.repo.Close() }
