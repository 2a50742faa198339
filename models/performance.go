package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DepartmentMonthlyPerformance is one month's aggregate target-completion
// snapshot for a department. (department_id, year, month) is unique;
// recording against an existing period merges instead of duplicating.
type DepartmentMonthlyPerformance struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	DepartmentID     primitive.ObjectID `json:"department_id" bson:"department_id"`
	Year             int                `json:"year" bson:"year"`
	Month            int                `json:"month" bson:"month"`
	PeriodStart      *time.Time         `json:"period_start,omitempty" bson:"period_start,omitempty"`
	PeriodEnd        *time.Time         `json:"period_end,omitempty" bson:"period_end,omitempty"`
	PerformanceScore float64            `json:"performance_score" bson:"performance_score"`
	TotalTargets     int                `json:"total_targets" bson:"total_targets"`
	CompletedTargets int                `json:"completed_targets" bson:"completed_targets"`
	PendingTargets   int                `json:"pending_targets" bson:"pending_targets"`
	OverdueTargets   int                `json:"overdue_targets" bson:"overdue_targets"`
	Notes            string             `json:"notes,omitempty" bson:"notes,omitempty"`
}

// RecordDepartmentPerformanceInput is the create/merge payload. Numeric
// fields are pointers so an omitted field can be told apart from zero: on
// merge an omitted field keeps its stored value, on create it defaults to 0.
type RecordDepartmentPerformanceInput struct {
	DepartmentID     string   `json:"department_id" validate:"required"`
	Year             int      `json:"year" validate:"required,min=2000,max=2100"`
	Month            int      `json:"month" validate:"required,min=1,max=12"`
	PerformanceScore *float64 `json:"performance_score" validate:"omitempty,min=0,max=100"`
	TotalTargets     *int     `json:"total_targets" validate:"omitempty,min=0"`
	CompletedTargets *int     `json:"completed_targets" validate:"omitempty,min=0"`
	PendingTargets   *int     `json:"pending_targets" validate:"omitempty,min=0"`
	OverdueTargets   *int     `json:"overdue_targets" validate:"omitempty,min=0"`
	Notes            *string  `json:"notes"`
}

// UpdateDepartmentPerformanceInput patches a record by id. The owning
// department and period are not re-pointable.
type UpdateDepartmentPerformanceInput struct {
	PeriodStart      *time.Time `json:"period_start"`
	PeriodEnd        *time.Time `json:"period_end"`
	PerformanceScore *float64   `json:"performance_score" validate:"omitempty,min=0,max=100"`
	TotalTargets     *int       `json:"total_targets" validate:"omitempty,min=0"`
	CompletedTargets *int       `json:"completed_targets" validate:"omitempty,min=0"`
	PendingTargets   *int       `json:"pending_targets" validate:"omitempty,min=0"`
	OverdueTargets   *int       `json:"overdue_targets" validate:"omitempty,min=0"`
	Notes            *string    `json:"notes"`
}

type QueryDepartmentPerformanceInput struct {
	Year  int
	Month int
	Limit int64
}

// MonthlySummaryItem always carries all four counts; a period with no
// stored record reports zeros rather than being omitted. Outstanding maps
// to the stored pending count and unmet to the stored overdue count.
type MonthlySummaryItem struct {
	Year               int `json:"year"`
	Month              int `json:"month"`
	TotalTargets       int `json:"total_targets"`
	CompletedTargets   int `json:"completed_targets"`
	OutstandingTargets int `json:"outstanding_targets"`
	UnmetTargets       int `json:"unmet_targets"`
}

type DepartmentMonthlySummary struct {
	DepartmentID  string             `json:"department_id"`
	CurrentMonth  MonthlySummaryItem `json:"current_month"`
	PreviousMonth MonthlySummaryItem `json:"previous_month"`
}
