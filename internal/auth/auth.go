// Package auth authenticates customers with bcrypt passwords and opaque
// session tokens, and operators with API keys or basic credentials.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"directorybolt/internal/config"
	"directorybolt/pkg/domain"
	"directorybolt/pkg/logger"
	"directorybolt/pkg/serrors"
	"directorybolt/pkg/storage"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores input past 72 bytes.
const maxPasswordBytes = 72

// Options configure password hashing and sessions.
type Options struct {
	SessionTTL        time.Duration
	BcryptCost        int
	MinPasswordLength int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SessionTTL:        cfg.Auth.SessionTTL,
		BcryptCost:        cfg.Auth.BcryptCost,
		MinPasswordLength: cfg.Auth.MinPasswordLength,
	}
}

type service struct {
	options Options
	storage storage.Storage
	// dummyHash is compared against for unknown emails.
	dummyHash []byte
}

// NormalizeEmail lower-cases and validates an email address.
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", serrors.With(serrors.ErrBadRequest, "invalid email")
	}

	return email, nil
}

func (s *service) validatePassword(password string) error {
	if len(password) < s.options.MinPasswordLength {
		return serrors.With(serrors.ErrBadRequest, "password must be at least %d characters", s.options.MinPasswordLength)
	}
	if len(password) > maxPasswordBytes {
		return serrors.With(serrors.ErrBadRequest, "password must be at most %d bytes", maxPasswordBytes)
	}

	return nil
}

func (s *service) Register(ctx context.Context, email, password, fullName string) (*domain.User, error) {
	email, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if err := s.validatePassword(password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.options.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	user, err := s.storage.CreateUser(ctx, domain.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(fullName),
		Tier:         domain.TierFree,
	})
	if errors.Is(err, storage.ErrDuplicate) {
		return nil, serrors.Wrap(serrors.ErrConflict, err, "email already registered")
	}
	if err != nil {
		return nil, fmt.Errorf("could not create user: %w", err)
	}

	return user, nil
}

func (s *service) Login(ctx context.Context, email, password string, meta SessionMeta) (*LoginResult, error) {
	invalid := serrors.With(serrors.ErrUnauthorized, "invalid email or password")

	email, err := NormalizeEmail(email)
	if err != nil {
		return nil, invalid
	}

	user, err := s.storage.UserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil || user.PasswordHash == "" {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))

		return nil, invalid
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, invalid
	}

	token, err := NewToken()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := domain.Session{
		TokenHash: HashToken(token),
		UserID:    user.ID,
		ExpiresAt: now.Add(s.options.SessionTTL),
		UserAgent: meta.UserAgent,
		IP:        meta.IP,
	}
	if err := s.storage.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("could not create session: %w", err)
	}
	if err := s.storage.TouchUserLogin(ctx, user.ID, now); err != nil {
		logger.Warn(ctx, "could not update last login", zap.Error(err))
	}
	user.LastLoginAt = now

	return &LoginResult{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		User:      user,
	}, nil
}

func (s *service) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, serrors.With(serrors.ErrUnauthorized, "missing session token")
	}

	hash := HashToken(token)
	session, err := s.storage.SessionByTokenHash(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("could not get session: %w", err)
	}
	if session == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "invalid session")
	}
	if session.Expired(time.Now()) {
		if err := s.storage.DeleteSession(ctx, hash); err != nil {
			logger.Warn(ctx, "could not delete expired session", zap.Error(err))
		}

		return nil, serrors.With(serrors.ErrUnauthorized, "session expired")
	}

	user, err := s.storage.UserByID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "invalid session")
	}

	return user, nil
}

func (s *service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.storage.DeleteSession(ctx, HashToken(token)); err != nil {
		return fmt.Errorf("could not delete session: %w", err)
	}

	return nil
}

func (s *service) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := s.storage.DeleteExpiredSessions(ctx, time.Now())
	if err != nil {
		return 0, fmt.Errorf("could not delete expired sessions: %w", err)
	}
	if n > 0 {
		logger.Info(ctx, "purged expired sessions", zap.Int64("count", n))
	}

	return n, nil
}

// New creates an auth Service backed by the provided storage.
func New(storage storage.Storage, options Options) (Service, error) {
	dummy, err := bcrypt.GenerateFromPassword([]byte("directorybolt"), options.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("could not prepare password hashing: %w", err)
	}

	return &service{
		options:   options,
		storage:   storage,
		dummyHash: dummy,
	}, nil
}
