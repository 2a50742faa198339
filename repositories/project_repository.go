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

type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error)
	GetAll(ctx context.Context) ([]models.Project, error)
	Update(ctx context.Context, id primitive.ObjectID, project *models.Project) error
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)

	CreateMilestone(ctx context.Context, milestone *models.Milestone) error
	GetMilestone(ctx context.Context, id primitive.ObjectID) (*models.Milestone, error)
	GetMilestonesByProject(ctx context.Context, projectID primitive.ObjectID) ([]models.Milestone, error)
	UpdateMilestone(ctx context.Context, id primitive.ObjectID, milestone *models.Milestone) error

	CreateComment(ctx context.Context, comment *models.Comment) error
	GetCommentsByProject(ctx context.Context, projectID primitive.ObjectID) ([]models.Comment, error)

	CreateChallenge(ctx context.Context, challenge *models.Challenge) error
	GetChallengesByProject(ctx context.Context, projectID primitive.ObjectID) ([]models.Challenge, error)

	CreateRecommendation(ctx context.Context, recommendation *models.Recommendation) error
	GetRecommendationsByProject(ctx context.Context, projectID primitive.ObjectID) ([]models.Recommendation, error)
}

type projectRepository struct {
	projects        *mongo.Collection
	milestones      *mongo.Collection
	comments        *mongo.Collection
	challenges      *mongo.Collection
	recommendations *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) ProjectRepository {
	return &projectRepository{
		projects:        db.Collection("projects"),
		milestones:      db.Collection("milestones"),
		comments:        db.Collection("comments"),
		challenges:      db.Collection("challenges"),
		recommendations: db.Collection("recommendations"),
	}
}

func (r *projectRepository) Create(ctx context.Context, project *models.Project) error {
	project.ID = primitive.NewObjectID()
	_, err := r.projects.InsertOne(ctx, project)
	return err
}

func (r *projectRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	var project models.Project
	err := r.projects.FindOne(ctx, bson.M{"_id": id}).Decode(&project)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) GetAll(ctx context.Context) ([]models.Project, error) {
	cursor, err := r.projects.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	projects := []models.Project{}
	if err = cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *projectRepository) Update(ctx context.Context, id primitive.ObjectID, project *models.Project) error {
	result, err := r.projects.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": project})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("no project found with id %s", id.Hex())
	}
	return nil
}

// Delete removes only the project row. Milestones, comments, challenges and
// recommendations are deliberately left in place; no cascade is declared
// for them.
func (r *projectRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.projects.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *projectRepository) CreateMilestone(ctx context.Context, milestone *models.Milestone) error {
	milestone.ID = primitive.NewObjectID()
	_, err := r.milestones.InsertOne(ctx, milestone)
	return err
}

func (r *projectRepository) GetMilestone(ctx context.Context, id primitive.ObjectID) (*models.Milestone, error) {
	var milestone models.Milestone
	err := r.milestones.FindOne(ctx, bson.M{"_id": id}).Decode(&milestone)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &milestone, nil
}

func (r *projectRepository) GetMilestonesByProject(ctx context.Context, projectID primitive.ObjectID) ([]models.Milestone, error) {
	opts := options.Find().SetSort(bson.D{{Key: "planned_date", Value: 1}})
	cursor, err := r.milestones.Find(ctx, bson.M{"project_id": projectID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	milestones := []models.Milestone{}
	if err = cursor.All(ctx, &milestones); err != nil {
		return nil, err
	}
	return milestones, nil
}

func (r *projectRepository) UpdateMilestone(ctx context.Context, id primitive.ObjectID, milestone *models.Milestone) error {
	result, err := r.milestones.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": milestone})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("no milestone found with id %s", id.Hex())
	}
	return nil
}

func (r *projectRepository) CreateComment(ctx context.Context, comment *models.Comment) error {
	comment.ID = primitive.NewObjectID()
	_, err := r.comments.InsertOne(ctx, comment)
	return err
}

func (r *projectRepository) GetCommentsByProject(ctx context.Context, projectID primitive.ObjectID) ([]models.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.comments.Find(ctx, bson.M{"project_id": projectID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	comments := []models.Comment{}
	if err = cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *projectRepository) CreateChallenge(ctx context.Context, challenge *models.Challenge) error {
	challenge.ID = primitive.NewObjectID()
	_, err := r.challenges.InsertOne(ctx, challenge)
	return err
}

func (r *projectRepository) GetChallengesByProject(ctx context.Context, projectID primitive.ObjectID) ([]models.Challenge, error) {
	cursor, err := r.challenges.Find(ctx, bson.M{"project_id": projectID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	challenges := []models.Challenge{}
	if err = cursor.All(ctx, &challenges); err != nil {
		return nil, err
	}
	return challenges, nil
}

func (r *projectRepository) CreateRecommendation(ctx context.Context, recommendation *models.Recommendation) error {
	recommendation.ID = primitive.NewObjectID()
	_, err := r.recommendations.InsertOne(ctx, recommendation)
	return err
}

func (r *projectRepository) GetRecommendationsByProject(ctx context.Context, projectID primitive.ObjectID) ([]models.Recommendation, error) {
	cursor, err := r.recommendations.Find(ctx, bson.M{"project_id": projectID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	recommendations := []models.Recommendation{}
	if err = cursor.All(ctx, &recommendations); err != nil {
		return nil, err
	}
	return recommendations, nil
}
