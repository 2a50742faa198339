package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MonthlySubmission is one month's reported actuals and narrative against a
// deliverable. (deliverable_id, year, month) is unique.
type MonthlySubmission struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	DeliverableID primitive.ObjectID `json:"deliverable_id" bson:"deliverable_id"`
	Year          int                `json:"year" bson:"year"`
	Month         int                `json:"month" bson:"month"`
	ActualValue   *float64           `json:"actual_value,omitempty" bson:"actual_value,omitempty"`
	Progress      string             `json:"progress" bson:"progress"`
	KeyIssues     string             `json:"key_issues" bson:"key_issues"`
	MDAEfforts    string             `json:"mda_efforts" bson:"mda_efforts"`
	Comments      string             `json:"comments" bson:"comments"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

type CreateMonthlySubmissionInput struct {
	Year        int      `json:"year" validate:"required,min=2000,max=2100"`
	Month       int      `json:"month" validate:"required,min=1,max=12"`
	ActualValue *float64 `json:"actual_value"`
	Progress    string   `json:"progress" validate:"required"`
	KeyIssues   string   `json:"key_issues" validate:"required"`
	MDAEfforts  string   `json:"mda_efforts" validate:"required"`
	Comments    string   `json:"comments" validate:"required"`
}

type UpdateMonthlySubmissionInput struct {
	ActualValue *float64 `json:"actual_value"`
	Progress    *string  `json:"progress"`
	KeyIssues   *string  `json:"key_issues"`
	MDAEfforts  *string  `json:"mda_efforts"`
	Comments    *string  `json:"comments"`
}
