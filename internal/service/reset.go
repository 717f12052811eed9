package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/model"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/repository"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/validation"
)

type ResetOutcome int

const (
	// ResetIssued: no token existed, a new one was created and sent.
	ResetIssued ResetOutcome = iota
	// ResetActive: a valid token already exists, nothing was created.
	ResetActive
	// ResetReissued: the stale token was replaced by a new one and sent.
	ResetReissued
)

func (o ResetOutcome) String() string {
	switch o {
	case ResetActive:
		return "active"
	case ResetReissued:
		return "reissued"
	default:
		return "issued"
	}
}

// ResetTicket identifies a pending reset so the caller can go on to verification.
type ResetTicket struct {
	Username  string
	Email     string
	Outcome   ResetOutcome
	ExpiresAt time.Time

	// DeliveryErr is set when the token is stored but the email could not be sent.
	DeliveryErr error
}

// VerifiedReset proves that the caller entered the stored token.
type VerifiedReset struct {
	Username string
	Email    string
	token    string
}

type PasswordResetService struct {
	userRepository  repository.UserRepository
	tokenRepository repository.TokenRepository
	notifier        Notifier
	tokenExpiry     time.Duration
	now             func() time.Time
}

func NewPasswordResetService(
	userRepository repository.UserRepository,
	tokenRepository repository.TokenRepository,
	notifier Notifier,
	tokenExpiry time.Duration,
) *PasswordResetService {
	return &PasswordResetService{
		userRepository:  userRepository,
		tokenRepository: tokenRepository,
		notifier:        notifier,
		tokenExpiry:     tokenExpiry,
		now:             time.Now,
	}
}

// RequestReset issues a reset token for the account registered with email.
// While a valid token exists no new one is created: the ticket is returned
// together with ErrTokenActive so the caller can continue with Verify.
func (s *PasswordResetService) RequestReset(ctx context.Context, email string) (*ResetTicket, error) {
	err := validation.ValidateEmail(email)
	if err != nil {
		return nil, err
	}
	email = strings.TrimSpace(email)

	user, err := s.userRepository.ByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrEmailNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	ticket := &ResetTicket{Username: user.Username, Email: user.Email}
	now := s.now().UTC()

	existing, err := s.tokenRepository.ByUser(user.Username, user.Email)
	switch {
	case errors.Is(err, repository.ErrTokenNotFound):
		ticket.Outcome = ResetIssued
	case err != nil:
		return nil, fmt.Errorf("failed to get token: %w", err)
	case !existing.IsExpired(now, s.tokenExpiry):
		ticket.Outcome = ResetActive
		ticket.ExpiresAt = existing.ExpiresAt(s.tokenExpiry)
		return ticket, ErrTokenActive
	default:
		ticket.Outcome = ResetReissued
	}

	token := &model.Token{
		Username:  user.Username,
		Email:     user.Email,
		Token:     uuid.NewString(),
		CreatedAt: now,
	}

	if ticket.Outcome == ResetIssued {
		err = s.tokenRepository.Create(token)
	} else {
		err = s.tokenRepository.Replace(token)
	}
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateToken) {
			return nil, fmt.Errorf("token for %s: %w", user.Username, ErrIntegrityViolation)
		}
		return nil, fmt.Errorf("failed to store token: %w", err)
	}
	ticket.ExpiresAt = token.ExpiresAt(s.tokenExpiry)

	slog.Info("reset token issued", "username", user.Username, "outcome", ticket.Outcome.String())

	// The token stays valid even when the email cannot be delivered.
	err = s.notifier.SendTokenEmail(ctx, user.Email, user.Username, token.Token)
	if err != nil {
		slog.Warn("failed to send reset token email", "error", err, "username", user.Username)
		ticket.DeliveryErr = err
	}

	return ticket, nil
}

// Verify compares value with the stored token. A mismatch changes nothing,
// so the caller may retry while the token is valid.
func (s *PasswordResetService) Verify(ctx context.Context, ticket *ResetTicket, value string) (*VerifiedReset, error) {
	token, err := s.tokenRepository.ByUser(ticket.Username, ticket.Email)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("failed to get token: %w", err)
	}

	if strings.TrimSpace(value) != token.Token {
		return nil, ErrTokenMismatch
	}

	if token.IsExpired(s.now().UTC(), s.tokenExpiry) {
		return nil, ErrTokenExpired
	}

	return &VerifiedReset{Username: token.Username, Email: token.Email, token: token.Token}, nil
}

// CompleteReset stores the new password and consumes the token. Expiry is
// checked again right before committing; a token that expired or was replaced
// since Verify leaves the password unchanged.
func (s *PasswordResetService) CompleteReset(ctx context.Context, verified *VerifiedReset, newPassword, again string) error {
	err := validation.ValidatePassword(newPassword, validation.NewPasswordField)
	if err != nil {
		return err
	}

	newPassword = strings.TrimSpace(newPassword)
	err = validation.ValidatePasswordsMatch(newPassword, strings.TrimSpace(again))
	if err != nil {
		return err
	}

	token, err := s.tokenRepository.ByUser(verified.Username, verified.Email)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return ErrTokenExpired
		}
		return fmt.Errorf("failed to get token: %w", err)
	}

	if token.Token != verified.token {
		return ErrTokenMismatch
	}

	if token.IsExpired(s.now().UTC(), s.tokenExpiry) {
		slog.Info("reset token expired before commit", "username", verified.Username)
		return ErrTokenExpired
	}

	salt, hash, err := hashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	err = s.tokenRepository.Redeem(token, salt, hash)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return ErrTokenExpired
		}
		return fmt.Errorf("failed to reset password: %w", err)
	}

	slog.Info("password reset", "username", verified.Username)
	return nil
}

// State reports the token state of a user at the current time.
func (s *PasswordResetService) State(ctx context.Context, username, email string) (model.TokenState, error) {
	token, err := s.tokenRepository.ByUser(username, email)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return model.TokenStateNone, nil
		}
		return model.TokenStateNone, err
	}

	if token.IsExpired(s.now().UTC(), s.tokenExpiry) {
		return model.TokenStateExpired, nil
	}
	return model.TokenStateActive, nil
}
