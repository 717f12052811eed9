package repository

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/model"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("email already exists")
)

type UserRepository interface {
	Create(user *model.User) error
	ByUsername(username string) (*model.User, error)
	ByEmail(email string) (*model.User, error)
	UpdatePassword(username, email, salt, hash string) error
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	query := `INSERT INTO users (username, email_address, salt, hash_of_password) VALUES ($1, $2, $3, $4) RETURNING id`

	err := r.db.QueryRow(query, user.Username, user.Email, user.Salt, user.PasswordHash).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			if strings.Contains(err.Error(), "email_address") {
				return ErrDuplicateEmail
			}
			return ErrDuplicateUsername
		}
		return err
	}

	return nil
}

func (r *userRepository) ByUsername(username string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT id, username, email_address, salt, hash_of_password FROM users WHERE username = $1`

	err := r.db.Get(user, query, username)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) ByEmail(email string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT id, username, email_address, salt, hash_of_password FROM users WHERE email_address = $1`

	err := r.db.Get(user, query, email)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) UpdatePassword(username, email, salt, hash string) error {
	query := `UPDATE users SET salt = $1, hash_of_password = $2 WHERE username = $3 AND email_address = $4`

	result, err := r.db.Exec(query, salt, hash, username, email)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrUserNotFound
	}

	return nil
}

// isUniqueViolation checks for unique constraint violations (works for both SQLite and PostgreSQL)
func isUniqueViolation(err error) bool {
	errStr := err.Error()
	return strings.Contains(errStr, "UNIQUE constraint failed") || strings.Contains(errStr, "duplicate key value")
}
