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

type PerformanceRepository interface {
	Create(ctx context.Context, record *models.DepartmentMonthlyPerformance) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.DepartmentMonthlyPerformance, error)
	GetByPeriod(ctx context.Context, departmentID primitive.ObjectID, year, month int) (*models.DepartmentMonthlyPerformance, error)
	GetLatest(ctx context.Context, departmentID primitive.ObjectID) (*models.DepartmentMonthlyPerformance, error)
	Find(ctx context.Context, departmentID primitive.ObjectID, query models.QueryDepartmentPerformanceInput) ([]models.DepartmentMonthlyPerformance, error)
	Update(ctx context.Context, id primitive.ObjectID, record *models.DepartmentMonthlyPerformance) error
}

type performanceRepository struct {
	collection *mongo.Collection
}

func NewPerformanceRepository(db *mongo.Database) PerformanceRepository {
	return &performanceRepository{
		collection: db.Collection("department_monthly_performance"),
	}
}

func (r *performanceRepository) Create(ctx context.Context, record *models.DepartmentMonthlyPerformance) error {
	record.ID = primitive.NewObjectID()
	_, err := r.collection.InsertOne(ctx, record)
	return err
}

func (r *performanceRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.DepartmentMonthlyPerformance, error) {
	var record models.DepartmentMonthlyPerformance
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *performanceRepository) GetByPeriod(ctx context.Context, departmentID primitive.ObjectID, year, month int) (*models.DepartmentMonthlyPerformance, error) {
	var record models.DepartmentMonthlyPerformance
	filter := bson.M{"department_id": departmentID, "year": year, "month": month}
	err := r.collection.FindOne(ctx, filter).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *performanceRepository) GetLatest(ctx context.Context, departmentID primitive.ObjectID) (*models.DepartmentMonthlyPerformance, error) {
	var record models.DepartmentMonthlyPerformance
	opts := options.FindOne().SetSort(bson.D{{Key: "year", Value: -1}, {Key: "month", Value: -1}})
	err := r.collection.FindOne(ctx, bson.M{"department_id": departmentID}, opts).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *performanceRepository) Find(ctx context.Context, departmentID primitive.ObjectID, query models.QueryDepartmentPerformanceInput) ([]models.DepartmentMonthlyPerformance, error) {
	filter := bson.M{"department_id": departmentID}
	if query.Year > 0 {
		filter["year"] = query.Year
	}
	if query.Month > 0 {
		filter["month"] = query.Month
	}

	opts := options.Find().SetSort(bson.D{{Key: "year", Value: -1}, {Key: "month", Value: -1}})
	if query.Limit > 0 {
		opts.SetLimit(query.Limit)
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []models.DepartmentMonthlyPerformance{}
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *performanceRepository) Update(ctx context.Context, id primitive.ObjectID, record *models.DepartmentMonthlyPerformance) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": record})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("no performance record found with id %s", id.Hex())
	}
	return nil
}
