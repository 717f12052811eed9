package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/model"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/repository"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

// bcryptSaltLength is the length of "$2a$10$" plus the 22 character encoded salt.
const bcryptSaltLength = 29

type AuthService struct {
	userRepository repository.UserRepository
	jwtSecret      string
	jwtExpiry      time.Duration
}

func NewAuthService(userRepository repository.UserRepository, jwtSecret string, jwtExpiry time.Duration) *AuthService {
	return &AuthService{
		userRepository: userRepository,
		jwtSecret:      jwtSecret,
		jwtExpiry:      jwtExpiry,
	}
}

// Register creates an account. Fields are validated in form order and stored trimmed.
func (s *AuthService) Register(ctx context.Context, username, email, password, again string) (*model.User, error) {
	err := validation.ValidateUsername(username)
	if err != nil {
		return nil, err
	}
	err = validation.ValidateEmail(email)
	if err != nil {
		return nil, err
	}
	err = validation.ValidatePassword(password, validation.PasswordField)
	if err != nil {
		return nil, err
	}
	err = validation.ValidatePassword(again, validation.PasswordAgainField)
	if err != nil {
		return nil, err
	}

	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)

	err = validation.ValidatePasswordsMatch(password, strings.TrimSpace(again))
	if err != nil {
		return nil, err
	}

	_, err = s.userRepository.ByUsername(username)
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	_, err = s.userRepository.ByEmail(email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	salt, hash, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		Salt:         salt,
		PasswordHash: hash,
	}
	err = s.userRepository.Create(user)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateUsername):
			return nil, ErrUsernameTaken
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("account created", "username", user.Username)
	return user, nil
}

// Login checks the credentials. Only presence is validated: a weak password
// is reported as incorrect, never as a rule violation.
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.User, error) {
	err := validation.ValidateRequired(username, validation.UsernameField)
	if err != nil {
		return nil, err
	}
	err = validation.ValidateRequired(password, validation.PasswordField)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepository.ByUsername(strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUsernameNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	err = comparePassword(strings.TrimSpace(password), user.PasswordHash)
	if err != nil {
		slog.Info("login rejected", "username", user.Username)
		return nil, ErrIncorrectPassword
	}

	return user, nil
}

func (s *AuthService) GenerateJWT(user *model.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"username": user.Username,
		"email":    user.Email,
		"exp":      now.Add(s.jwtExpiry).Unix(),
		"iat":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func (s *AuthService) VerifyJWT(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// UserFromJWT resolves a stored session token to the current user.
func (s *AuthService) UserFromJWT(ctx context.Context, tokenString string) (*model.User, error) {
	claims, err := s.VerifyJWT(tokenString)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}

	username, _ := claims["username"].(string)
	if username == "" {
		return nil, ErrInvalidSession
	}

	user, err := s.userRepository.ByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUsernameNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// hashPassword returns the bcrypt salt and the full hash. The salt is the
// prefix of the hash and is stored separately to keep the users table layout.
func hashPassword(password string) (string, string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", "", err
	}
	hash := string(hashedBytes)
	return hash[:bcryptSaltLength], hash, nil
}

func comparePassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
