package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/model"
)

var (
	ErrTokenNotFound  = errors.New("token not found")
	ErrDuplicateToken = errors.New("token already exists for user")
)

type TokenRepository interface {
	Create(token *model.Token) error
	ByUser(username, email string) (*model.Token, error)
	DeleteByUser(username, email string) error
	Replace(token *model.Token) error
	Redeem(token *model.Token, salt, hash string) error
}

type tokenRepository struct {
	db *sqlx.DB
}

func NewTokenRepository(db *sqlx.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Create(token *model.Token) error {
	if token.CreatedAt.IsZero() {
		token.CreatedAt = time.Now().UTC()
	}

	err := insertToken(r.db, token)
	if err != nil && isUniqueViolation(err) {
		return ErrDuplicateToken
	}
	return err
}

func (r *tokenRepository) ByUser(username, email string) (*model.Token, error) {
	var t model.Token
	query := `SELECT id, username, email_address, token, time_of_creation FROM tokens WHERE username = $1 AND email_address = $2`

	err := r.db.Get(&t, query, username, email)
	if err == sql.ErrNoRows {
		return nil, ErrTokenNotFound
	}
	if err != nil {
		return nil, err
	}

	t.CreatedAt = t.CreatedAt.UTC()
	return &t, nil
}

func (r *tokenRepository) DeleteByUser(username, email string) error {
	query := `DELETE FROM tokens WHERE username = $1 AND email_address = $2`
	_, err := r.db.Exec(query, username, email)
	return err
}

// Replace deletes any token of the user and inserts the new one in a single transaction,
// so a user never ends up with two rows or with none after a failed insert.
func (r *tokenRepository) Replace(token *model.Token) error {
	if token.CreatedAt.IsZero() {
		token.CreatedAt = time.Now().UTC()
	}

	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`DELETE FROM tokens WHERE username = $1 AND email_address = $2`, token.Username, token.Email)
	if err != nil {
		return fmt.Errorf("failed to delete old token: %w", err)
	}

	err = insertToken(tx, token)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateToken
		}
		return fmt.Errorf("failed to insert token: %w", err)
	}

	return tx.Commit()
}

// Redeem consumes exactly the given token and stores the new password of its owner.
// Both happen or neither: if the row was deleted or replaced in the meantime,
// ErrTokenNotFound is returned and the password is left untouched.
func (r *tokenRepository) Redeem(token *model.Token, salt, hash string) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		`DELETE FROM tokens WHERE username = $1 AND email_address = $2 AND token = $3`,
		token.Username, token.Email, token.Token,
	)
	if err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows != 1 {
		return ErrTokenNotFound
	}

	result, err = tx.Exec(
		`UPDATE users SET salt = $1, hash_of_password = $2 WHERE username = $3 AND email_address = $4`,
		salt, hash, token.Username, token.Email,
	)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	rows, err = result.RowsAffected()
	if err != nil {
		return err
	}
	if rows != 1 {
		return ErrUserNotFound
	}

	return tx.Commit()
}

func insertToken(e sqlx.Queryer, token *model.Token) error {
	query := `
		INSERT INTO tokens (username, email_address, token, time_of_creation)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return e.QueryRowx(query, token.Username, token.Email, token.Token, token.CreatedAt.UTC()).Scan(&token.ID)
}
