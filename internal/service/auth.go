package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/worldradio/newsroom-go/internal/crypto"
	"github.com/worldradio/newsroom-go/internal/model"
	"github.com/worldradio/newsroom-go/internal/repository"
)

// Default administrative account seeded into an empty store. These credentials
// are published, so operators must replace the account before exposing the service.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminEmail    = "admin@worldradio.com"
	DefaultAdminPassword = "admin123"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingFields      = errors.New("username, email and password are required")
	ErrMissingCredentials = errors.New("email and password are required")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
)

// UserStore persists accounts.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	Count(ctx context.Context) (int64, error)
}

// TokenIssuer signs bearer tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID int64, username string) (string, error)
}

// AuthService handles registration, login and account lookup.
type AuthService struct {
	repo   UserStore
	tokens TokenIssuer
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo UserStore, tokens TokenIssuer) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Register creates a new account and returns an auth token.
func (s *AuthService) Register(ctx context.Context, req model.CreateUserRequest) (model.AuthResponse, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return model.AuthResponse{}, ErrMissingFields
	}

	user, err := s.createUser(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return s.authResponse(user)
}

// Login authenticates by email and password and returns an auth token.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return model.AuthResponse{}, ErrMissingCredentials
	}

	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	match, err := crypto.VerifyPassword(req.Password, user.AuthHash)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if !match {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	return s.authResponse(user)
}

// GetUser retrieves an account by ID and returns safe user data.
func (s *AuthService) GetUser(ctx context.Context, userID int64) (model.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, ErrUserNotFound
		}
		return model.UserResponse{}, err
	}
	return userResponse(user), nil
}

// EnsureDefaultAdmin seeds the default administrative account when the store is empty.
// It reports whether an account was created.
func (s *AuthService) EnsureDefaultAdmin(ctx context.Context) (bool, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	if _, err := s.createUser(ctx, DefaultAdminUsername, DefaultAdminEmail, DefaultAdminPassword); err != nil {
		// Another instance seeded it first.
		if errors.Is(err, ErrUserExists) {
			return false, nil
		}
		return false, err
	}

	slog.Warn("created default admin account with a well-known password; change it before exposing this service",
		"username", DefaultAdminUsername, "email", DefaultAdminEmail)
	return true, nil
}

func (s *AuthService) createUser(ctx context.Context, username, email, password string) (*model.User, error) {
	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username: username,
		Email:    email,
		AuthHash: hash,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, ErrUserExists
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) authResponse(user *model.User) (model.AuthResponse, error) {
	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{
		Success: true,
		Token:   token,
		User:    userResponse(user),
	}, nil
}

func userResponse(user *model.User) model.UserResponse {
	return model.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
