package guest

import (
	"context"
	"database/sql"
	"errors"

	"github.com/idon003/hotel-book/internal/auth"
)

var (
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*Guest, string, string, error)
	Login(ctx context.Context, req LoginRequest) (*Guest, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	GetByID(ctx context.Context, guestID int) (*Guest, error)
}

type service struct {
	repo      Repository
	jwtSecret string
}

func NewService(repo Repository, jwtSecret string) Service {
	return &service{
		repo:      repo,
		jwtSecret: jwtSecret,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*Guest, string, string, error) {
	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, "", "", err
	}
	if exists {
		return nil, "", "", ErrEmailExists
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", "", err
	}

	guest, err := s.repo.Create(ctx, req.Name, req.Email, passwordHash, "guest")
	if err != nil {
		return nil, "", "", err
	}

	accessToken, refreshToken, err := auth.GenerateTokens(
		guest.ID,
		guest.Email,
		guest.Role,
		s.jwtSecret,
		s.jwtSecret,
	)
	if err != nil {
		return nil, "", "", err
	}

	return guest, accessToken, refreshToken, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*Guest, string, string, error) {
	guest, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	if !auth.CheckPassword(guest.PasswordHash, req.Password) {
		return nil, "", "", ErrInvalidCredentials
	}

	accessToken, refreshToken, err := auth.GenerateTokens(
		guest.ID,
		guest.Email,
		guest.Role,
		s.jwtSecret,
		s.jwtSecret,
	)
	if err != nil {
		return nil, "", "", err
	}

	return guest, accessToken, refreshToken, nil
}

// Refresh exchanges a valid refresh token for a new access token. The guest
// is re-read so a deleted account cannot keep minting access tokens.
func (s *service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	accessToken, claims, err := auth.RefreshAccessToken(refreshToken, s.jwtSecret, s.jwtSecret)
	if err != nil {
		return "", err
	}

	if _, err := s.repo.FindByID(ctx, claims.GuestID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrGuestNotFound
		}
		return "", err
	}

	return accessToken, nil
}

func (s *service) GetByID(ctx context.Context, guestID int) (*Guest, error) {
	guest, err := s.repo.FindByID(ctx, guestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGuestNotFound
		}
		return nil, err
	}
	return guest, nil
}
