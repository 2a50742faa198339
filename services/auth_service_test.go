package services

import (
	"context"
	"testing"
	"time"

	"perfmonitor/apperrors"
	"perfmonitor/middlewares"
	"perfmonitor/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-signing-secret"

func seedUser(t *testing.T, users *fakeUserRepo, email, password string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &models.User{
		Email:    email,
		Password: string(hash),
		Role:     models.RoleAdmin,
		Status:   models.StatusActive,
	}
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func TestAuthService_ValidateUser(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, testSecret, time.Hour)
	ctx := context.Background()

	seedUser(t, users, "admin@example.gov.ng", "sup3r-secret")

	user, err := svc.ValidateUser(ctx, &models.LoginInput{
		Email:    "admin@example.gov.ng",
		Password: "sup3r-secret",
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "admin@example.gov.ng", user.Email)

	// Wrong password and unknown email both come back nil without an error.
	user, err = svc.ValidateUser(ctx, &models.LoginInput{
		Email:    "admin@example.gov.ng",
		Password: "wrong",
	})
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = svc.ValidateUser(ctx, &models.LoginInput{
		Email:    "ghost@example.gov.ng",
		Password: "sup3r-secret",
	})
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestAuthService_LoginIssuesToken(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, testSecret, time.Hour)

	seeded := seedUser(t, users, "admin@example.gov.ng", "sup3r-secret")

	token, err := svc.Login(context.Background(), &models.LoginInput{
		Email:    "admin@example.gov.ng",
		Password: "sup3r-secret",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token.AccessToken)

	claims := &middlewares.Claims{}
	parsed, err := jwt.ParseWithClaims(token.AccessToken, claims, func(_ *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	assert.Equal(t, "admin@example.gov.ng", claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, seeded.ID.Hex(), claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestAuthService_LoginInvalidCredentials(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, testSecret, time.Hour)
	ctx := context.Background()

	seedUser(t, users, "admin@example.gov.ng", "sup3r-secret")

	// Unknown email and wrong password produce the same generic failure.
	_, err := svc.Login(ctx, &models.LoginInput{
		Email:    "ghost@example.gov.ng",
		Password: "sup3r-secret",
	})
	assert.True(t, apperrors.IsUnauthorized(err))
	assert.EqualError(t, err, "Invalid credentials")

	_, err = svc.Login(ctx, &models.LoginInput{
		Email:    "admin@example.gov.ng",
		Password: "wrong",
	})
	assert.True(t, apperrors.IsUnauthorized(err))
	assert.EqualError(t, err, "Invalid credentials")
}
