package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/Digga-coder/POS-FRECUENZY/internal/config"
	"github.com/Digga-coder/POS-FRECUENZY/internal/dto"
	"github.com/Digga-coder/POS-FRECUENZY/internal/repository"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidCredentials is returned for every authentication failure. The
// caller cannot distinguish wrong user from wrong password or an inactive
// account — all mismatches read the same.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService interface {
	// Login authenticates a waiter: case-insensitive username, exact
	// plaintext password, account must be active.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	// AdminLogin compares the shared operator passphrase verbatim.
	AdminLogin(ctx context.Context, req dto.AdminLoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	waiters repository.WaiterRepository
	cfg     *config.Config
}

func NewAuthService(waiters repository.WaiterRepository, cfg *config.Config) AuthService {
	return &authService{waiters: waiters, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	waiter, err := s.waiters.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if waiter.Password != req.Password || !waiter.Active {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(waiter.ID.String(), waiter.Name, "waiter")
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
		Role:        "waiter",
		Waiter: &dto.WaiterResponse{
			ID:       waiter.ID.String(),
			Name:     waiter.Name,
			Username: waiter.Username,
			Active:   waiter.Active,
		},
	}, nil
}

func (s *authService) AdminLogin(_ context.Context, req dto.AdminLoginRequest) (*dto.LoginResponse, error) {
	if subtle.ConstantTimeCompare([]byte(req.Passphrase), []byte(s.cfg.AdminPassphrase)) != 1 {
		return nil, ErrInvalidCredentials
	}
	token, err := s.generateToken("admin", "Admin", "admin")
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
		Role:        "admin",
	}, nil
}

func (s *authService) generateToken(userID, name, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"name":    name,
		"role":    role,
		"exp":     time.Now().Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
