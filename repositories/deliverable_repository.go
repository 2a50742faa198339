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

type DeliverableRepository interface {
	Create(ctx context.Context, deliverable *models.Deliverable) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Deliverable, error)
	Find(ctx context.Context, query models.QueryDeliverablesInput) ([]models.Deliverable, error)
	Update(ctx context.Context, id primitive.ObjectID, deliverable *models.Deliverable) error
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountDistinctMinistries(ctx context.Context) (int, error)

	CreateSubmission(ctx context.Context, submission *models.MonthlySubmission) error
	GetSubmissionByID(ctx context.Context, id primitive.ObjectID) (*models.MonthlySubmission, error)
	GetSubmissionByPeriod(ctx context.Context, deliverableID primitive.ObjectID, year, month int) (*models.MonthlySubmission, error)
	GetSubmissionsByDeliverable(ctx context.Context, deliverableID primitive.ObjectID) ([]models.MonthlySubmission, error)
	UpdateSubmission(ctx context.Context, id primitive.ObjectID, submission *models.MonthlySubmission) error
	DeleteSubmission(ctx context.Context, id primitive.ObjectID) (int64, error)
	DeleteSubmissionsByDeliverable(ctx context.Context, deliverableID primitive.ObjectID) (int64, error)
}

type deliverableRepository struct {
	deliverables *mongo.Collection
	submissions  *mongo.Collection
}

func NewDeliverableRepository(db *mongo.Database) DeliverableRepository {
	return &deliverableRepository{
		deliverables: db.Collection("deliverables"),
		submissions:  db.Collection("monthly_submissions"),
	}
}

func (r *deliverableRepository) Create(ctx context.Context, deliverable *models.Deliverable) error {
	deliverable.ID = primitive.NewObjectID()
	_, err := r.deliverables.InsertOne(ctx, deliverable)
	return err
}

func (r *deliverableRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Deliverable, error) {
	var deliverable models.Deliverable
	err := r.deliverables.FindOne(ctx, bson.M{"_id": id}).Decode(&deliverable)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &deliverable, nil
}

func (r *deliverableRepository) Find(ctx context.Context, query models.QueryDeliverablesInput) ([]models.Deliverable, error) {
	filter := bson.M{}
	if query.Ministry != "" {
		filter["ministry"] = query.Ministry
	}
	if query.PriorityArea != "" {
		filter["priority_area"] = query.PriorityArea
	}
	if query.ResponsibleDepartment != "" {
		filter["responsible_department"] = query.ResponsibleDepartment
	}

	opts := options.Find().SetSort(bson.D{{Key: "serial_number", Value: 1}})
	if query.Limit > 0 {
		opts.SetLimit(query.Limit)
	}

	cursor, err := r.deliverables.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	deliverables := []models.Deliverable{}
	if err = cursor.All(ctx, &deliverables); err != nil {
		return nil, err
	}
	return deliverables, nil
}

func (r *deliverableRepository) Update(ctx context.Context, id primitive.ObjectID, deliverable *models.Deliverable) error {
	result, err := r.deliverables.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": deliverable})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("no deliverable found with id %s", id.Hex())
	}
	return nil
}

func (r *deliverableRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.deliverables.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *deliverableRepository) Count(ctx context.Context) (int64, error) {
	return r.deliverables.CountDocuments(ctx, bson.M{})
}

func (r *deliverableRepository) CountDistinctMinistries(ctx context.Context) (int, error) {
	ministries, err := r.deliverables.Distinct(ctx, "ministry", bson.M{})
	if err != nil {
		return 0, err
	}
	return len(ministries), nil
}

func (r *deliverableRepository) CreateSubmission(ctx context.Context, submission *models.MonthlySubmission) error {
	submission.ID = primitive.NewObjectID()
	_, err := r.submissions.InsertOne(ctx, submission)
	return err
}

func (r *deliverableRepository) GetSubmissionByID(ctx context.Context, id primitive.ObjectID) (*models.MonthlySubmission, error) {
	var submission models.MonthlySubmission
	err := r.submissions.FindOne(ctx, bson.M{"_id": id}).Decode(&submission)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *deliverableRepository) GetSubmissionByPeriod(ctx context.Context, deliverableID primitive.ObjectID, year, month int) (*models.MonthlySubmission, error) {
	var submission models.MonthlySubmission
	filter := bson.M{"deliverable_id": deliverableID, "year": year, "month": month}
	err := r.submissions.FindOne(ctx, filter).Decode(&submission)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *deliverableRepository) GetSubmissionsByDeliverable(ctx context.Context, deliverableID primitive.ObjectID) ([]models.MonthlySubmission, error) {
	opts := options.Find().SetSort(bson.D{{Key: "year", Value: -1}, {Key: "month", Value: -1}})
	cursor, err := r.submissions.Find(ctx, bson.M{"deliverable_id": deliverableID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	submissions := []models.MonthlySubmission{}
	if err = cursor.All(ctx, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r *deliverableRepository) UpdateSubmission(ctx context.Context, id primitive.ObjectID, submission *models.MonthlySubmission) error {
	result, err := r.submissions.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": submission})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("no submission found with id %s", id.Hex())
	}
	return nil
}

func (r *deliverableRepository) DeleteSubmission(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.submissions.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *deliverableRepository) DeleteSubmissionsByDeliverable(ctx context.Context, deliverableID primitive.ObjectID) (int64, error) {
	result, err := r.submissions.DeleteMany(ctx, bson.M{"deliverable_id": deliverableID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
