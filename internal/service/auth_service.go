package service

import (
	"errors"
	"fmt"
	"strings"

	"fintrack/internal/models"
	"fintrack/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Domain errors for auth flows.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// AuthService handles user auth logic.
type AuthService struct {
	users repository.Users
}

func NewAuthService(users repository.Users) *AuthService {
	return &AuthService{users: users}
}

var _ Authorization = (*AuthService)(nil)

// SignUp hashes the password and creates a new user. Usernames are not
// required to be unique; a duplicate simply becomes unreachable at login.
func (s *AuthService) SignUp(name, username, password string) (int, error) {
	if strings.TrimSpace(name) == "" {
		return 0, fmt.Errorf("%w: name is empty", ErrInvalidInput)
	}
	if strings.TrimSpace(username) == "" {
		return 0, fmt.Errorf("%w: username is empty", ErrInvalidInput)
	}
	hash, err := hashPassword(password)
	if err != nil {
		return 0, err
	}
	return s.users.Create(name, username, hash)
}

// Login verifies credentials and returns the matching user.
// A missing user and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(username, password string) (*models.User, error) {
	u, err := s.users.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", fmt.Errorf("%w: password is empty", ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
