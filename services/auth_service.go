package services

import (
	"context"
	"time"

	"perfmonitor/apperrors"
	"perfmonitor/middlewares"
	"perfmonitor/models"
	repository "perfmonitor/repositories"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	// ValidateUser is the passive credential check: it returns nil on any
	// failure instead of raising.
	ValidateUser(ctx context.Context, input *models.LoginInput) (*models.User, error)
	Login(ctx context.Context, input *models.LoginInput) (*models.TokenResponse, error)
}

type authService struct {
	users     repository.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(users repository.UserRepository, jwtSecret string, tokenTTL time.Duration) AuthService {
	return &authService{
		users:     users,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

func (s *authService) ValidateUser(ctx context.Context, input *models.LoginInput) (*models.User, error) {
	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
		return nil, nil
	}
	return user, nil
}

// Login folds lookup failure and hash mismatch into one generic message so
// the response does not reveal which part failed.
func (s *authService) Login(ctx context.Context, input *models.LoginInput) (*models.TokenResponse, error) {
	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.Unauthorized("Invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
		return nil, apperrors.Unauthorized("Invalid credentials")
	}

	now := time.Now()
	claims := &middlewares.Claims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	return &models.TokenResponse{AccessToken: signed}, nil
}
