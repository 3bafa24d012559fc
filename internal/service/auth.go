package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"pawfectfind/internal/auth"
	"pawfectfind/internal/model"
	"pawfectfind/internal/repository"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrFieldsRequired     = errors.New("email, password, and full_name are required")
)

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
}

// AuthService defines the account use cases.
type AuthService interface {
	// Register creates an account and returns it together with a fresh
	// access token.
	Register(ctx context.Context, in RegisterInput) (*model.User, string, error)

	// Login verifies credentials and returns an access token.
	Login(ctx context.Context, email, password string) (string, error)

	// Me returns the account behind a verified token subject.
	Me(ctx context.Context, userID int) (*model.User, error)
}

type authService struct {
	users  repository.UserRepository
	tokens *auth.TokenManager
}

// NewAuthService constructs a new AuthService.
func NewAuthService(users repository.UserRepository, tokens *auth.TokenManager) AuthService {
	return &authService{users: users, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (*model.User, string, error) {
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.FullName = strings.TrimSpace(in.FullName)
	if in.Email == "" || in.Password == "" || in.FullName == "" {
		return nil, "", ErrFieldsRequired
	}

	// The unique constraint on email is the last line of defense; this check
	// gives a friendly error for the common case.
	if _, err := s.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, "", fmt.Errorf("lookup email: %w", err)
	}

	user, err := s.users.Create(ctx, &model.User{
		Email:        in.Email,
		PasswordHash: auth.HashPassword(in.Password),
		FullName:     in.FullName,
		PhoneNumber:  strings.TrimSpace(in.PhoneNumber),
	})
	if err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("lookup email: %w", err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

func (s *authService) Me(ctx context.Context, userID int) (*model.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}
