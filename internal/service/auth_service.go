package service

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"parkspot/internal/db"
	"parkspot/internal/entities"
	"parkspot/internal/store"
)

type AuthService interface {
	Login(ctx context.Context, email, password string, role db.Role) (*entities.AuthResponse, error)
	Signup(ctx context.Context, name, email, password string, role db.Role) (*entities.AuthResponse, error)
	Logout()
	IsAuthenticated() bool
}

type authService struct {
	store *store.Store
}

func NewAuthService(st *store.Store) AuthService {
	return &authService{store: st}
}

func (s *authService) Login(ctx context.Context, email, password string, role db.Role) (*entities.AuthResponse, error) {
	user, err := s.store.Login(ctx, email, password, role)
	if err != nil {
		return nil, err
	}
	token, err := signSessionToken(user)
	if err != nil {
		return nil, err
	}
	return &entities.AuthResponse{Token: token, User: *user}, nil
}

func (s *authService) Signup(ctx context.Context, name, email, password string, role db.Role) (*entities.AuthResponse, error) {
	user, err := s.store.Signup(ctx, name, email, password, role)
	if err != nil {
		return nil, err
	}
	token, err := signSessionToken(user)
	if err != nil {
		return nil, err
	}
	return &entities.AuthResponse{Token: token, User: *user}, nil
}

func (s *authService) Logout() {
	s.store.Logout()
}

func (s *authService) IsAuthenticated() bool {
	return s.store.IsAuthenticated()
}

func signSessionToken(u *db.User) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET not set")
	}

	claims := jwt.MapClaims{
		"user_id": u.ID,
		"email":   u.Email,
		"role":    string(u.Role),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
