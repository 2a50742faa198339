package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Deliverable carries the agency indicator grid: a 2023 baseline, quarterly
// 2024 targets/actuals, the 2024 annual pair, and 2025-2027 targets.
type Deliverable struct {
	ID primitive.ObjectID `json:"id" bson:"_id,omitempty"`

	// Identification
	SerialNumber int    `json:"serial_number" bson:"serial_number" validate:"required,min=1"`
	Ministry     string `json:"ministry" bson:"ministry" validate:"required"`
	PriorityArea string `json:"priority_area" bson:"priority_area" validate:"required"`
	Outcome      string `json:"outcome" bson:"outcome" validate:"required"`
	Deliverable  string `json:"deliverable" bson:"deliverable" validate:"required"`

	// Optional link into the organization's priority-area catalogue.
	PriorityAreaID *primitive.ObjectID `json:"priority_area_id,omitempty" bson:"priority_area_id,omitempty"`

	// Baseline
	BaselineType string   `json:"baseline_type" bson:"baseline_type" validate:"required"`
	Indicator    string   `json:"indicator" bson:"indicator" validate:"required"`
	Baseline2023 *float64 `json:"baseline_2023,omitempty" bson:"baseline_2023,omitempty"`

	// Quarterly 2024
	Q1Target2024     *float64 `json:"q1_2024_target,omitempty" bson:"q1_2024_target,omitempty"`
	Q1Actual2024     *float64 `json:"q1_2024_actual,omitempty" bson:"q1_2024_actual,omitempty"`
	Q2Target2024     *float64 `json:"q2_2024_target,omitempty" bson:"q2_2024_target,omitempty"`
	Q2Actual2024     *float64 `json:"q2_2024_actual,omitempty" bson:"q2_2024_actual,omitempty"`
	Q2Cumulative2024 *float64 `json:"q2_2024_cumulative_actual,omitempty" bson:"q2_2024_cumulative_actual,omitempty"`
	Q3Target2024     *float64 `json:"q3_2024_target,omitempty" bson:"q3_2024_target,omitempty"`
	Q3Actual2024     *float64 `json:"q3_2024_actual,omitempty" bson:"q3_2024_actual,omitempty"`
	Q3Cumulative2024 *float64 `json:"q3_2024_cumulative_actual,omitempty" bson:"q3_2024_cumulative_actual,omitempty"`
	Q4Target2024     *float64 `json:"q4_2024_target,omitempty" bson:"q4_2024_target,omitempty"`
	Q4Actual2024     *float64 `json:"q4_2024_actual,omitempty" bson:"q4_2024_actual,omitempty"`

	// Annual and multi-year targets
	AnnualTarget2024 *float64 `json:"annual_2024_target,omitempty" bson:"annual_2024_target,omitempty"`
	AnnualActual2024 *float64 `json:"annual_2024_actual,omitempty" bson:"annual_2024_actual,omitempty"`
	Target2025       *float64 `json:"target_2025,omitempty" bson:"target_2025,omitempty"`
	Target2026       *float64 `json:"target_2026,omitempty" bson:"target_2026,omitempty"`
	Target2027       *float64 `json:"target_2027,omitempty" bson:"target_2027,omitempty"`

	ResponsibleDepartment string `json:"responsible_department" bson:"responsible_department" validate:"required"`
	SupportingEvidence    string `json:"supporting_evidence" bson:"supporting_evidence"`

	OutputIndicators []OutputIndicator `json:"output_indicators" bson:"output_indicators"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`

	MonthlySubmissions []MonthlySubmission `json:"monthly_submissions,omitempty" bson:"-"`
}

type OutputIndicator struct {
	Description string `json:"description" bson:"description"`
}

// UpdateDeliverableInput covers the patchable identification, baseline and
// target fields. The calendar-grid numbers are already pointers on the
// entity, so the patch reuses the same optionality.
type UpdateDeliverableInput struct {
	SerialNumber          *int     `json:"serial_number" validate:"omitempty,min=1"`
	Ministry              *string  `json:"ministry"`
	PriorityArea          *string  `json:"priority_area"`
	Outcome               *string  `json:"outcome"`
	Deliverable           *string  `json:"deliverable"`
	BaselineType          *string  `json:"baseline_type"`
	Indicator             *string  `json:"indicator"`
	Baseline2023          *float64 `json:"baseline_2023"`
	Q1Target2024          *float64 `json:"q1_2024_target"`
	Q1Actual2024          *float64 `json:"q1_2024_actual"`
	Q2Target2024          *float64 `json:"q2_2024_target"`
	Q2Actual2024          *float64 `json:"q2_2024_actual"`
	Q2Cumulative2024      *float64 `json:"q2_2024_cumulative_actual"`
	Q3Target2024          *float64 `json:"q3_2024_target"`
	Q3Actual2024          *float64 `json:"q3_2024_actual"`
	Q3Cumulative2024      *float64 `json:"q3_2024_cumulative_actual"`
	Q4Target2024          *float64 `json:"q4_2024_target"`
	Q4Actual2024          *float64 `json:"q4_2024_actual"`
	AnnualTarget2024      *float64 `json:"annual_2024_target"`
	AnnualActual2024      *float64 `json:"annual_2024_actual"`
	Target2025            *float64 `json:"target_2025"`
	Target2026            *float64 `json:"target_2026"`
	Target2027            *float64 `json:"target_2027"`
	ResponsibleDepartment *string  `json:"responsible_department"`
	SupportingEvidence    *string  `json:"supporting_evidence"`
}

// QueryDeliverablesInput holds the equality filters accepted by the
// deliverable listing. All filters are conjunctive.
type QueryDeliverablesInput struct {
	Ministry              string
	PriorityArea          string
	ResponsibleDepartment string
	Year                  int
	Limit                 int64
}

type DeliverableSummary struct {
	TotalDeliverables int64 `json:"total_deliverables"`
	TotalMinistries   int   `json:"total_ministries"`
}
