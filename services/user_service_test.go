package services

import (
	"context"
	"testing"

	"perfmonitor/apperrors"
	"perfmonitor/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func adminInput(email string) *models.CreateUserInput {
	return &models.CreateUserInput{
		Email:    email,
		Password: "sup3r-secret",
		Role:     models.RoleAdmin,
		Info: models.UserInfo{
			FirstName: "Amina",
			LastName:  "Bello",
		},
	}
}

func TestUserService_CreateHashesPassword(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	user, err := svc.Create(context.Background(), adminInput("admin@example.gov.ng"))
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, user.Status)
	assert.NotEqual(t, "sup3r-secret", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("sup3r-secret")))
}

func TestUserService_CreateDuplicateEmail(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, adminInput("admin@example.gov.ng"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, adminInput("admin@example.gov.ng"))
	assert.True(t, apperrors.IsConflict(err))
}

func TestUserService_UpdatePatchesFields(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, adminInput("admin@example.gov.ng"))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "admin@example.gov.ng", &models.UpdateUserInput{
		Role:   strPtr(models.RoleGuest),
		Status: strPtr(models.StatusSuspended),
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleGuest, updated.Role)
	assert.Equal(t, models.StatusSuspended, updated.Status)
	assert.Equal(t, "Amina", updated.Info.FirstName)
}

func TestUserService_FindOneNotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.FindOne(context.Background(), "ghost@example.gov.ng")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUserService_RemoveNotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	err := svc.Remove(context.Background(), "ghost@example.gov.ng")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUserService_GetStats(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, adminInput("admin@example.gov.ng"))
	require.NoError(t, err)

	guest := adminInput("guest@example.gov.ng")
	guest.Role = models.RoleGuest
	_, err = svc.Create(ctx, guest)
	require.NoError(t, err)

	_, err = svc.Update(ctx, "guest@example.gov.ng", &models.UpdateUserInput{
		Status: strPtr(models.StatusSuspended),
	})
	require.NoError(t, err)

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(1), stats.Active)
	assert.Equal(t, int64(1), stats.Suspended)
	assert.Equal(t, int64(0), stats.Removed)
	assert.Equal(t, int64(1), stats.Admins)
	assert.Equal(t, int64(1), stats.Guests)
}
