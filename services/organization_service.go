package services

import (
	"context"

	"perfmonitor/apperrors"
	"perfmonitor/models"
	repository "perfmonitor/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrganizationService interface {
	Create(ctx context.Context, org *models.Organization) (*models.Organization, error)
	FindAll(ctx context.Context, includeDepartments bool) ([]models.Organization, error)
	FindOne(ctx context.Context, code string) (*models.Organization, error)
	Update(ctx context.Context, code string, input *models.UpdateOrganizationInput) (*models.Organization, error)
	Remove(ctx context.Context, code string) error

	CreateDepartment(ctx context.Context, input *models.CreateDepartmentInput) (*models.Department, error)
	FindOneDepartment(ctx context.Context, id primitive.ObjectID) (*models.Department, error)
	UpdateDepartment(ctx context.Context, id primitive.ObjectID, input *models.UpdateDepartmentInput) (*models.Department, error)

	CreatePriorityArea(ctx context.Context, code string, input *models.CreatePriorityAreaInput) (*models.PriorityArea, error)
	FindPriorityAreas(ctx context.Context, code string) ([]models.PriorityArea, error)
}

type organizationService struct {
	repo repository.OrganizationRepository
}

func NewOrganizationService(repo repository.OrganizationRepository) OrganizationService {
	return &organizationService{
		repo: repo,
	}
}

func (s *organizationService) getOrganizationOrFail(ctx context.Context, code string) (*models.Organization, error) {
	org, err := s.repo.GetOrganization(ctx, code)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, apperrors.NotFound("Organization with code %q not found", code)
	}
	return org, nil
}

func (s *organizationService) Create(ctx context.Context, org *models.Organization) (*models.Organization, error) {
	existing, err := s.repo.GetOrganization(ctx, org.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Conflict("Organization with code %q already exists", org.Code)
	}

	org.IsActive = true
	if err := s.repo.CreateOrganization(ctx, org); err != nil {
		return nil, err
	}
	return org, nil
}

func (s *organizationService) FindAll(ctx context.Context, includeDepartments bool) ([]models.Organization, error) {
	orgs, err := s.repo.GetAllOrganizations(ctx)
	if err != nil {
		return nil, err
	}
	if !includeDepartments {
		return orgs, nil
	}

	for i := range orgs {
		departments, err := s.repo.GetDepartmentsByOrganization(ctx, orgs[i].Code)
		if err != nil {
			return nil, err
		}
		orgs[i].Departments = departments
	}
	return orgs, nil
}

func (s *organizationService) FindOne(ctx context.Context, code string) (*models.Organization, error) {
	org, err := s.getOrganizationOrFail(ctx, code)
	if err != nil {
		return nil, err
	}

	departments, err := s.repo.GetDepartmentsByOrganization(ctx, code)
	if err != nil {
		return nil, err
	}
	org.Departments = departments
	return org, nil
}

// Update patches name, motto, logo and the active flag. The code is not
// part of the input type, so the identifier cannot change.
func (s *organizationService) Update(ctx context.Context, code string, input *models.UpdateOrganizationInput) (*models.Organization, error) {
	org, err := s.getOrganizationOrFail(ctx, code)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		org.Name = *input.Name
	}
	if input.Motto != nil {
		org.Motto = *input.Motto
	}
	if input.Logo != nil {
		org.Logo = *input.Logo
	}
	if input.IsActive != nil {
		org.IsActive = *input.IsActive
	}

	if err := s.repo.UpdateOrganization(ctx, code, org); err != nil {
		return nil, err
	}
	return s.FindOne(ctx, code)
}

// Remove deletes the organization and cascades to its departments and
// priority areas.
func (s *organizationService) Remove(ctx context.Context, code string) error {
	deleted, err := s.repo.DeleteOrganization(ctx, code)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return apperrors.NotFound("Organization with code %q not found", code)
	}

	if _, err := s.repo.DeleteDepartmentsByOrganization(ctx, code); err != nil {
		return err
	}
	if _, err := s.repo.DeletePriorityAreasByOrganization(ctx, code); err != nil {
		return err
	}
	return nil
}

func (s *organizationService) CreateDepartment(ctx context.Context, input *models.CreateDepartmentInput) (*models.Department, error) {
	org, err := s.repo.GetOrganization(ctx, input.OrganizationCode)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, apperrors.NotFound("Organization with code %q not found. Cannot link department.", input.OrganizationCode)
	}

	department := &models.Department{
		Code:             input.Code,
		Name:             input.Name,
		Description:      input.Description,
		Head:             input.Head,
		DirectorEmail:    input.DirectorEmail,
		ContactPhone:     input.ContactPhone,
		OrganizationCode: org.Code,
	}
	if err := s.repo.CreateDepartment(ctx, department); err != nil {
		return nil, err
	}

	department.Organization = org
	return department, nil
}

func (s *organizationService) FindOneDepartment(ctx context.Context, id primitive.ObjectID) (*models.Department, error) {
	department, err := s.repo.GetDepartment(ctx, id)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, apperrors.NotFound("Department with ID %q not found", id.Hex())
	}

	org, err := s.repo.GetOrganization(ctx, department.OrganizationCode)
	if err != nil {
		return nil, err
	}
	department.Organization = org
	return department, nil
}

func (s *organizationService) UpdateDepartment(ctx context.Context, id primitive.ObjectID, input *models.UpdateDepartmentInput) (*models.Department, error) {
	department, err := s.repo.GetDepartment(ctx, id)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, apperrors.NotFound("Department with ID %q not found", id.Hex())
	}

	// Re-pointing the department at another organization requires the new
	// parent to exist.
	if input.OrganizationCode != nil {
		org, err := s.repo.GetOrganization(ctx, *input.OrganizationCode)
		if err != nil {
			return nil, err
		}
		if org == nil {
			return nil, apperrors.NotFound("Organization with code %q not found. Cannot link department.", *input.OrganizationCode)
		}
		department.OrganizationCode = org.Code
	}

	if input.Code != nil {
		department.Code = *input.Code
	}
	if input.Name != nil {
		department.Name = *input.Name
	}
	if input.Description != nil {
		department.Description = *input.Description
	}
	if input.Head != nil {
		department.Head = *input.Head
	}
	if input.DirectorEmail != nil {
		department.DirectorEmail = *input.DirectorEmail
	}
	if input.ContactPhone != nil {
		department.ContactPhone = *input.ContactPhone
	}

	if err := s.repo.UpdateDepartment(ctx, id, department); err != nil {
		return nil, err
	}
	return s.FindOneDepartment(ctx, id)
}

func (s *organizationService) CreatePriorityArea(ctx context.Context, code string, input *models.CreatePriorityAreaInput) (*models.PriorityArea, error) {
	org, err := s.getOrganizationOrFail(ctx, code)
	if err != nil {
		return nil, err
	}

	area := &models.PriorityArea{
		Area:             input.Area,
		OrganizationCode: org.Code,
	}
	if err := s.repo.CreatePriorityArea(ctx, area); err != nil {
		return nil, err
	}
	return area, nil
}

func (s *organizationService) FindPriorityAreas(ctx context.Context, code string) ([]models.PriorityArea, error) {
	if _, err := s.getOrganizationOrFail(ctx, code); err != nil {
		return nil, err
	}
	return s.repo.GetPriorityAreasByOrganization(ctx, code)
}
