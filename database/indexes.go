package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateIndexes ensures every index the services rely on. The unique
// compound indexes are the store-level backstop for the check-then-act
// dedup guards: a racing duplicate write fails instead of inserting a
// second row.
func CreateIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	perCollection := map[string][]mongo.IndexModel{
		"departments": {
			{
				Keys:    bson.D{{Key: "code", Value: 1}},
				Options: options.Index().SetName("uniq_department_code").SetUnique(true),
			},
			{
				Keys:    bson.D{{Key: "organization_code", Value: 1}},
				Options: options.Index().SetName("idx_department_organization"),
			},
		},
		"priority_areas": {
			{
				Keys:    bson.D{{Key: "organization_code", Value: 1}},
				Options: options.Index().SetName("idx_priority_area_organization"),
			},
		},
		"deliverables": {
			{
				Keys:    bson.D{{Key: "serial_number", Value: 1}},
				Options: options.Index().SetName("idx_deliverable_serial"),
			},
			{
				Keys:    bson.D{{Key: "ministry", Value: 1}},
				Options: options.Index().SetName("idx_deliverable_ministry"),
			},
		},
		"monthly_submissions": {
			// One submission per deliverable per calendar month.
			{
				Keys: bson.D{
					{Key: "deliverable_id", Value: 1},
					{Key: "year", Value: 1},
					{Key: "month", Value: 1},
				},
				Options: options.Index().SetName("uniq_submission_period").SetUnique(true),
			},
		},
		"department_monthly_performance": {
			// One performance row per department per calendar month.
			{
				Keys: bson.D{
					{Key: "department_id", Value: 1},
					{Key: "year", Value: 1},
					{Key: "month", Value: 1},
				},
				Options: options.Index().SetName("uniq_performance_period").SetUnique(true),
			},
			{
				Keys: bson.D{
					{Key: "department_id", Value: 1},
					{Key: "year", Value: -1},
					{Key: "month", Value: -1},
				},
				Options: options.Index().SetName("idx_performance_recency"),
			},
		},
		"projects": {
			{
				Keys:    bson.D{{Key: "priority_area_id", Value: 1}},
				Options: options.Index().SetName("idx_project_priority_area"),
			},
			{
				Keys:    bson.D{{Key: "deliverable_id", Value: 1}},
				Options: options.Index().SetName("idx_project_deliverable"),
			},
		},
		"milestones": {
			{
				Keys:    bson.D{{Key: "project_id", Value: 1}},
				Options: options.Index().SetName("idx_milestone_project"),
			},
		},
		"comments": {
			{
				Keys:    bson.D{{Key: "project_id", Value: 1}},
				Options: options.Index().SetName("idx_comment_project"),
			},
		},
		"challenges": {
			{
				Keys:    bson.D{{Key: "project_id", Value: 1}},
				Options: options.Index().SetName("idx_challenge_project"),
			},
		},
		"recommendations": {
			{
				Keys:    bson.D{{Key: "project_id", Value: 1}},
				Options: options.Index().SetName("idx_recommendation_project"),
			},
		},
		"users": {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetName("uniq_user_email").SetUnique(true),
			},
		},
	}

	for collection, indexes := range perCollection {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("failed to create %s indexes: %v", collection, err)
		}
	}

	return nil
}
