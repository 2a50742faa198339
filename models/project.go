package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Project struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PriorityAreaID    primitive.ObjectID `json:"priority_area_id" bson:"priority_area_id"`
	DeliverableID     primitive.ObjectID `json:"deliverable_id" bson:"deliverable_id"`
	StartDate         *time.Time         `json:"start_date,omitempty" bson:"start_date,omitempty"`
	Title             string             `json:"title" bson:"title"`
	Objective         string             `json:"objective" bson:"objective"`
	BudgetCode        string             `json:"budget_code" bson:"budget_code"`
	AmountAppropriated float64           `json:"amount_appropriated" bson:"amount_appropriated"`
	TotalCost         float64            `json:"total_cost" bson:"total_cost"`
	Currency          string             `json:"currency" bson:"currency"`
	ForeignComponent  string             `json:"foreign_component" bson:"foreign_component"`
	FundingSource     string             `json:"funding_source" bson:"funding_source"`
	ProjectType       string             `json:"project_type" bson:"project_type"`
	Status            string             `json:"status" bson:"status"`

	Milestones      []Milestone      `json:"milestones,omitempty" bson:"-"`
	Comments        []Comment        `json:"comments,omitempty" bson:"-"`
	Challenges      []Challenge      `json:"challenges,omitempty" bson:"-"`
	Recommendations []Recommendation `json:"recommendations,omitempty" bson:"-"`
}

type CreateProjectInput struct {
	PriorityAreaID    string     `json:"priority_area_id" validate:"required"`
	DeliverableID     string     `json:"deliverable_id" validate:"required"`
	StartDate         *time.Time `json:"start_date"`
	Title             string     `json:"title" validate:"required,max=255"`
	Objective         string     `json:"objective" validate:"required"`
	BudgetCode        string     `json:"budget_code" validate:"required"`
	AmountAppropriated float64   `json:"amount_appropriated" validate:"min=0"`
	TotalCost         float64    `json:"total_cost" validate:"min=0"`
	Currency          string     `json:"currency" validate:"omitempty,oneof=NGN USD EUR GBP"`
	ForeignComponent  string     `json:"foreign_component" validate:"required"`
	FundingSource     string     `json:"funding_source" validate:"required"`
	ProjectType       string     `json:"project_type" validate:"required"`
	Status            string     `json:"status" validate:"required"`
}

type UpdateProjectInput struct {
	PriorityAreaID    *string    `json:"priority_area_id"`
	DeliverableID     *string    `json:"deliverable_id"`
	StartDate         *time.Time `json:"start_date"`
	Title             *string    `json:"title" validate:"omitempty,max=255"`
	Objective         *string    `json:"objective"`
	BudgetCode        *string    `json:"budget_code"`
	AmountAppropriated *float64  `json:"amount_appropriated" validate:"omitempty,min=0"`
	TotalCost         *float64   `json:"total_cost" validate:"omitempty,min=0"`
	Currency          *string    `json:"currency" validate:"omitempty,oneof=NGN USD EUR GBP"`
	ForeignComponent  *string    `json:"foreign_component"`
	FundingSource     *string    `json:"funding_source"`
	ProjectType       *string    `json:"project_type"`
	Status            *string    `json:"status"`
}

type Milestone struct {
	ID                 primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ProjectID          primitive.ObjectID `json:"project_id" bson:"project_id"`
	Description        string             `json:"description" bson:"description"`
	PlannedDate        *time.Time         `json:"planned_date,omitempty" bson:"planned_date,omitempty"`
	ActualDate         *time.Time         `json:"actual_date,omitempty" bson:"actual_date,omitempty"`
	ProgressPercentage int                `json:"progress_percentage" bson:"progress_percentage"`
}

type CreateMilestoneInput struct {
	Description string     `json:"description" validate:"required"`
	PlannedDate *time.Time `json:"planned_date"`
}

type UpdateMilestoneInput struct {
	Description        *string    `json:"description"`
	PlannedDate        *time.Time `json:"planned_date"`
	ActualDate         *time.Time `json:"actual_date"`
	ProgressPercentage *int       `json:"progress_percentage" validate:"omitempty,min=0,max=100"`
}

type Comment struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ProjectID primitive.ObjectID `json:"project_id" bson:"project_id"`
	Content   string             `json:"content" bson:"content"`
	Author    string             `json:"author,omitempty" bson:"author,omitempty"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

type CreateCommentInput struct {
	Content string `json:"content" validate:"required"`
	Author  string `json:"author"`
}

type Challenge struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ProjectID   primitive.ObjectID `json:"project_id" bson:"project_id"`
	Description string             `json:"description" bson:"description"`
}

type Recommendation struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ProjectID   primitive.ObjectID `json:"project_id" bson:"project_id"`
	Description string             `json:"description" bson:"description"`
}

type CreateProjectNoteInput struct {
	Description string `json:"description" validate:"required"`
}
