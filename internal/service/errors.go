package service

import (
	"errors"
	"fmt"
)

// Error categories. Specific errors below wrap exactly one of them,
// so callers can branch with errors.Is on either level.
var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrAuthentication     = errors.New("authentication failed")
	ErrTokenMismatch      = errors.New("token mismatch")
	ErrTokenExpired       = errors.New("token expired")
	ErrDeliveryFailed     = errors.New("delivery failed")
	ErrIntegrityViolation = errors.New("integrity violation")
)

var (
	ErrUsernameNotFound  = fmt.Errorf("username does not exist: %w", ErrNotFound)
	ErrEmailNotFound     = fmt.Errorf("email address does not exist: %w", ErrNotFound)
	ErrRoomNotFound      = fmt.Errorf("room does not exist: %w", ErrNotFound)
	ErrPicturesMissing   = fmt.Errorf("room pictures are not available: %w", ErrNotFound)
	ErrUnknownInterval   = fmt.Errorf("interval does not exist: %w", ErrNotFound)
	ErrUsernameTaken     = fmt.Errorf("username already exists: %w", ErrConflict)
	ErrEmailTaken        = fmt.Errorf("email address already exists: %w", ErrConflict)
	ErrTokenActive       = fmt.Errorf("an active token already exists: %w", ErrConflict)
	ErrSlotTaken         = fmt.Errorf("interval already booked: %w", ErrConflict)
	ErrSlotPassed        = fmt.Errorf("interval already started: %w", ErrConflict)
	ErrDateInPast        = fmt.Errorf("date is in the past: %w", ErrConflict)
	ErrIncorrectPassword = fmt.Errorf("incorrect password: %w", ErrAuthentication)
	ErrNotSignedIn       = fmt.Errorf("no user signed in: %w", ErrAuthentication)
	ErrInvalidSession    = fmt.Errorf("invalid session: %w", ErrAuthentication)
)
