package model

import (
	"time"
)

// Token is a password reset token. At most one row exists per user.
type Token struct {
	ID        int64     `db:"id"`
	Username  string    `db:"username"`
	Email     string    `db:"email_address"`
	Token     string    `db:"token"`
	CreatedAt time.Time `db:"time_of_creation"`
}

func (t *Token) ExpiresAt(ttl time.Duration) time.Time {
	return t.CreatedAt.Add(ttl)
}

// IsExpired reports whether the token is stale at now.
// A token is valid only while now - created_at < ttl.
func (t *Token) IsExpired(now time.Time, ttl time.Duration) bool {
	return now.Sub(t.CreatedAt) >= ttl
}

type TokenState int

const (
	TokenStateNone TokenState = iota
	TokenStateActive
	TokenStateExpired
)

func (s TokenState) String() string {
	switch s {
	case TokenStateActive:
		return "active"
	case TokenStateExpired:
		return "expired"
	default:
		return "none"
	}
}
