package repository

import (
	"context"
	"errors"
	"fmt"

	"perfmonitor/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrganizationRepository interface {
	CreateOrganization(ctx context.Context, org *models.Organization) error
	GetOrganization(ctx context.Context, code string) (*models.Organization, error)
	GetAllOrganizations(ctx context.Context) ([]models.Organization, error)
	UpdateOrganization(ctx context.Context, code string, org *models.Organization) error
	DeleteOrganization(ctx context.Context, code string) (int64, error)

	CreateDepartment(ctx context.Context, department *models.Department) error
	GetDepartment(ctx context.Context, id primitive.ObjectID) (*models.Department, error)
	GetDepartmentsByOrganization(ctx context.Context, code string) ([]models.Department, error)
	UpdateDepartment(ctx context.Context, id primitive.ObjectID, department *models.Department) error
	DeleteDepartmentsByOrganization(ctx context.Context, code string) (int64, error)

	CreatePriorityArea(ctx context.Context, area *models.PriorityArea) error
	GetPriorityArea(ctx context.Context, id primitive.ObjectID) (*models.PriorityArea, error)
	GetPriorityAreasByOrganization(ctx context.Context, code string) ([]models.PriorityArea, error)
	DeletePriorityAreasByOrganization(ctx context.Context, code string) (int64, error)
}

type organizationRepository struct {
	organizations *mongo.Collection
	departments   *mongo.Collection
	priorityAreas *mongo.Collection
}

func NewOrganizationRepository(db *mongo.Database) OrganizationRepository {
	return &organizationRepository{
		organizations: db.Collection("organizations"),
		departments:   db.Collection("departments"),
		priorityAreas: db.Collection("priority_areas"),
	}
}

func (r *organizationRepository) CreateOrganization(ctx context.Context, org *models.Organization) error {
	_, err := r.organizations.InsertOne(ctx, org)
	return err
}

func (r *organizationRepository) GetOrganization(ctx context.Context, code string) (*models.Organization, error) {
	var org models.Organization
	err := r.organizations.FindOne(ctx, bson.M{"_id": code}).Decode(&org)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *organizationRepository) GetAllOrganizations(ctx context.Context) ([]models.Organization, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.organizations.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orgs := []models.Organization{}
	if err = cursor.All(ctx, &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

func (r *organizationRepository) UpdateOrganization(ctx context.Context, code string, org *models.Organization) error {
	result, err := r.organizations.UpdateOne(ctx, bson.M{"_id": code}, bson.M{"$set": bson.M{
		"name":      org.Name,
		"motto":     org.Motto,
		"logo":      org.Logo,
		"is_active": org.IsActive,
	}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("no organization found with code %s", code)
	}
	return nil
}

func (r *organizationRepository) DeleteOrganization(ctx context.Context, code string) (int64, error) {
	result, err := r.organizations.DeleteOne(ctx, bson.M{"_id": code})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *organizationRepository) CreateDepartment(ctx context.Context, department *models.Department) error {
	department.ID = primitive.NewObjectID()
	_, err := r.departments.InsertOne(ctx, department)
	return err
}

func (r *organizationRepository) GetDepartment(ctx context.Context, id primitive.ObjectID) (*models.Department, error) {
	var department models.Department
	err := r.departments.FindOne(ctx, bson.M{"_id": id}).Decode(&department)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &department, nil
}

func (r *organizationRepository) GetDepartmentsByOrganization(ctx context.Context, code string) ([]models.Department, error) {
	opts := options.Find().SetSort(bson.D{{Key: "code", Value: 1}})
	cursor, err := r.departments.Find(ctx, bson.M{"organization_code": code}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	departments := []models.Department{}
	if err = cursor.All(ctx, &departments); err != nil {
		return nil, err
	}
	return departments, nil
}

func (r *organizationRepository) UpdateDepartment(ctx context.Context, id primitive.ObjectID, department *models.Department) error {
	result, err := r.departments.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": department})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("no department found with id %s", id.Hex())
	}
	return nil
}

func (r *organizationRepository) DeleteDepartmentsByOrganization(ctx context.Context, code string) (int64, error) {
	result, err := r.departments.DeleteMany(ctx, bson.M{"organization_code": code})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *organizationRepository) CreatePriorityArea(ctx context.Context, area *models.PriorityArea) error {
	area.ID = primitive.NewObjectID()
	_, err := r.priorityAreas.InsertOne(ctx, area)
	return err
}

func (r *organizationRepository) GetPriorityArea(ctx context.Context, id primitive.ObjectID) (*models.PriorityArea, error) {
	var area models.PriorityArea
	err := r.priorityAreas.FindOne(ctx, bson.M{"_id": id}).Decode(&area)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &area, nil
}

func (r *organizationRepository) GetPriorityAreasByOrganization(ctx context.Context, code string) ([]models.PriorityArea, error) {
	cursor, err := r.priorityAreas.Find(ctx, bson.M{"organization_code": code})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	areas := []models.PriorityArea{}
	if err = cursor.All(ctx, &areas); err != nil {
		return nil, err
	}
	return areas, nil
}

func (r *organizationRepository) DeletePriorityAreasByOrganization(ctx context.Context, code string) (int64, error) {
	result, err := r.priorityAreas.DeleteMany(ctx, bson.M{"organization_code": code})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
