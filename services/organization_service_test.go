package services

import (
	"context"
	"testing"

	"perfmonitor/apperrors"
	"perfmonitor/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestOrganizationService_CreateActivatesAndRejectsDuplicates(t *testing.T) {
	svc := NewOrganizationService(newFakeOrganizationRepo())
	ctx := context.Background()

	org, err := svc.Create(ctx, &models.Organization{
		Code: "FMOH",
		Name: "Federal Ministry of Health",
	})
	require.NoError(t, err)
	assert.True(t, org.IsActive)

	_, err = svc.Create(ctx, &models.Organization{
		Code: "FMOH",
		Name: "Federal Ministry of Health",
	})
	assert.True(t, apperrors.IsConflict(err))
}

func TestOrganizationService_UpdateKeepsCode(t *testing.T) {
	repo := newFakeOrganizationRepo()
	svc := NewOrganizationService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, &models.Organization{
		Code: "FMOH",
		Name: "Federal Ministry of Health",
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "FMOH", &models.UpdateOrganizationInput{
		Name:  strPtr("Federal Ministry of Health and Social Welfare"),
		Motto: strPtr("Health for all"),
	})
	require.NoError(t, err)
	assert.Equal(t, "FMOH", updated.Code)
	assert.Equal(t, "Federal Ministry of Health and Social Welfare", updated.Name)
	assert.Equal(t, "Health for all", updated.Motto)
	assert.True(t, updated.IsActive)
}

func TestOrganizationService_UpdateNotFound(t *testing.T) {
	svc := NewOrganizationService(newFakeOrganizationRepo())

	_, err := svc.Update(context.Background(), "NOPE", &models.UpdateOrganizationInput{
		Name: strPtr("Anything at all here"),
	})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestOrganizationService_CreateDepartmentRequiresParent(t *testing.T) {
	svc := NewOrganizationService(newFakeOrganizationRepo())

	_, err := svc.CreateDepartment(context.Background(), &models.CreateDepartmentInput{
		Code:             "PLAN",
		Name:             "Planning and Statistics",
		Head:             "A. Bello",
		OrganizationCode: "GHOST",
	})
	assert.True(t, apperrors.IsNotFound(err))
	assert.Contains(t, err.Error(), "Cannot link department")
}

func TestOrganizationService_CreateDepartmentLinksParent(t *testing.T) {
	svc := NewOrganizationService(newFakeOrganizationRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, &models.Organization{
		Code: "FMOH",
		Name: "Federal Ministry of Health",
	})
	require.NoError(t, err)

	department, err := svc.CreateDepartment(ctx, &models.CreateDepartmentInput{
		Code:             "PLAN",
		Name:             "Planning and Statistics",
		Head:             "A. Bello",
		OrganizationCode: "FMOH",
	})
	require.NoError(t, err)
	assert.False(t, department.ID.IsZero())
	assert.Equal(t, "FMOH", department.OrganizationCode)
	require.NotNil(t, department.Organization)
	assert.Equal(t, "Federal Ministry of Health", department.Organization.Name)
}

func TestOrganizationService_UpdateDepartmentRepoint(t *testing.T) {
	svc := NewOrganizationService(newFakeOrganizationRepo())
	ctx := context.Background()

	for _, code := range []string{"FMOH", "FMED"} {
		_, err := svc.Create(ctx, &models.Organization{
			Code: code,
			Name: "Federal Ministry Placeholder",
		})
		require.NoError(t, err)
	}

	department, err := svc.CreateDepartment(ctx, &models.CreateDepartmentInput{
		Code:             "PLAN",
		Name:             "Planning and Statistics",
		Head:             "A. Bello",
		OrganizationCode: "FMOH",
	})
	require.NoError(t, err)

	// Re-pointing at a missing organization fails and keeps the old parent.
	_, err = svc.UpdateDepartment(ctx, department.ID, &models.UpdateDepartmentInput{
		OrganizationCode: strPtr("GHOST"),
	})
	assert.True(t, apperrors.IsNotFound(err))

	moved, err := svc.UpdateDepartment(ctx, department.ID, &models.UpdateDepartmentInput{
		OrganizationCode: strPtr("FMED"),
	})
	require.NoError(t, err)
	assert.Equal(t, "FMED", moved.OrganizationCode)
}

func TestOrganizationService_RemoveCascades(t *testing.T) {
	repo := newFakeOrganizationRepo()
	svc := NewOrganizationService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, &models.Organization{
		Code: "FMOH",
		Name: "Federal Ministry of Health",
	})
	require.NoError(t, err)

	_, err = svc.CreateDepartment(ctx, &models.CreateDepartmentInput{
		Code:             "PLAN",
		Name:             "Planning and Statistics",
		Head:             "A. Bello",
		OrganizationCode: "FMOH",
	})
	require.NoError(t, err)

	_, err = svc.CreatePriorityArea(ctx, "FMOH", &models.CreatePriorityAreaInput{
		Area: "Human Capital Development",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, "FMOH"))

	assert.Empty(t, repo.organizations)
	assert.Empty(t, repo.departments)
	assert.Empty(t, repo.priorityAreas)
}

func TestOrganizationService_RemoveNotFound(t *testing.T) {
	svc := NewOrganizationService(newFakeOrganizationRepo())

	err := svc.Remove(context.Background(), "GHOST")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestOrganizationService_PriorityAreasRequireParent(t *testing.T) {
	svc := NewOrganizationService(newFakeOrganizationRepo())
	ctx := context.Background()

	_, err := svc.CreatePriorityArea(ctx, "GHOST", &models.CreatePriorityAreaInput{
		Area: "Infrastructure",
	})
	assert.True(t, apperrors.IsNotFound(err))

	_, err = svc.FindPriorityAreas(ctx, "GHOST")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestOrganizationService_FindOneDepartmentNotFound(t *testing.T) {
	svc := NewOrganizationService(newFakeOrganizationRepo())

	_, err := svc.FindOneDepartment(context.Background(), primitive.NewObjectID())
	assert.True(t, apperrors.IsNotFound(err))
}
