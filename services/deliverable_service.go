package services

import (
	"context"
	"time"

	"perfmonitor/apperrors"
	"perfmonitor/models"
	repository "perfmonitor/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeliverableService interface {
	Create(ctx context.Context, deliverable *models.Deliverable) (*models.Deliverable, error)
	FindAll(ctx context.Context, query models.QueryDeliverablesInput) ([]models.Deliverable, error)
	FindOne(ctx context.Context, id primitive.ObjectID) (*models.Deliverable, error)
	Update(ctx context.Context, id primitive.ObjectID, input *models.UpdateDeliverableInput) (*models.Deliverable, error)
	Remove(ctx context.Context, id primitive.ObjectID) error
	GetSummary(ctx context.Context) (*models.DeliverableSummary, error)

	CreateSubmission(ctx context.Context, deliverableID primitive.ObjectID, input *models.CreateMonthlySubmissionInput) (*models.MonthlySubmission, error)
	GetSubmissions(ctx context.Context, deliverableID primitive.ObjectID) ([]models.MonthlySubmission, error)
	GetSubmission(ctx context.Context, deliverableID primitive.ObjectID, year, month int) (*models.MonthlySubmission, error)
	UpdateSubmission(ctx context.Context, submissionID primitive.ObjectID, input *models.UpdateMonthlySubmissionInput) (*models.MonthlySubmission, error)
	RemoveSubmission(ctx context.Context, submissionID primitive.ObjectID) error
}

type deliverableService struct {
	repo repository.DeliverableRepository
}

func NewDeliverableService(repo repository.DeliverableRepository) DeliverableService {
	return &deliverableService{
		repo: repo,
	}
}

func (s *deliverableService) getDeliverableOrFail(ctx context.Context, id primitive.ObjectID) (*models.Deliverable, error) {
	deliverable, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if deliverable == nil {
		return nil, apperrors.NotFound("Deliverable with ID %q not found", id.Hex())
	}
	return deliverable, nil
}

func (s *deliverableService) Create(ctx context.Context, deliverable *models.Deliverable) (*models.Deliverable, error) {
	now := time.Now()
	deliverable.CreatedAt = now
	deliverable.UpdatedAt = now
	if deliverable.OutputIndicators == nil {
		deliverable.OutputIndicators = []models.OutputIndicator{}
	}

	if err := s.repo.Create(ctx, deliverable); err != nil {
		return nil, err
	}
	return deliverable, nil
}

func (s *deliverableService) FindAll(ctx context.Context, query models.QueryDeliverablesInput) ([]models.Deliverable, error) {
	return s.repo.Find(ctx, query)
}

func (s *deliverableService) FindOne(ctx context.Context, id primitive.ObjectID) (*models.Deliverable, error) {
	deliverable, err := s.getDeliverableOrFail(ctx, id)
	if err != nil {
		return nil, err
	}

	submissions, err := s.repo.GetSubmissionsByDeliverable(ctx, id)
	if err != nil {
		return nil, err
	}
	deliverable.MonthlySubmissions = submissions
	return deliverable, nil
}

func (s *deliverableService) Update(ctx context.Context, id primitive.ObjectID, input *models.UpdateDeliverableInput) (*models.Deliverable, error) {
	deliverable, err := s.getDeliverableOrFail(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.SerialNumber != nil {
		deliverable.SerialNumber = *input.SerialNumber
	}
	if input.Ministry != nil {
		deliverable.Ministry = *input.Ministry
	}
	if input.PriorityArea != nil {
		deliverable.PriorityArea = *input.PriorityArea
	}
	if input.Outcome != nil {
		deliverable.Outcome = *input.Outcome
	}
	if input.Deliverable != nil {
		deliverable.Deliverable = *input.Deliverable
	}
	if input.BaselineType != nil {
		deliverable.BaselineType = *input.BaselineType
	}
	if input.Indicator != nil {
		deliverable.Indicator = *input.Indicator
	}
	if input.Baseline2023 != nil {
		deliverable.Baseline2023 = input.Baseline2023
	}
	if input.Q1Target2024 != nil {
		deliverable.Q1Target2024 = input.Q1Target2024
	}
	if input.Q1Actual2024 != nil {
		deliverable.Q1Actual2024 = input.Q1Actual2024
	}
	if input.Q2Target2024 != nil {
		deliverable.Q2Target2024 = input.Q2Target2024
	}
	if input.Q2Actual2024 != nil {
		deliverable.Q2Actual2024 = input.Q2Actual2024
	}
	if input.Q2Cumulative2024 != nil {
		deliverable.Q2Cumulative2024 = input.Q2Cumulative2024
	}
	if input.Q3Target2024 != nil {
		deliverable.Q3Target2024 = input.Q3Target2024
	}
	if input.Q3Actual2024 != nil {
		deliverable.Q3Actual2024 = input.Q3Actual2024
	}
	if input.Q3Cumulative2024 != nil {
		deliverable.Q3Cumulative2024 = input.Q3Cumulative2024
	}
	if input.Q4Target2024 != nil {
		deliverable.Q4Target2024 = input.Q4Target2024
	}
	if input.Q4Actual2024 != nil {
		deliverable.Q4Actual2024 = input.Q4Actual2024
	}
	if input.AnnualTarget2024 != nil {
		deliverable.AnnualTarget2024 = input.AnnualTarget2024
	}
	if input.AnnualActual2024 != nil {
		deliverable.AnnualActual2024 = input.AnnualActual2024
	}
	if input.Target2025 != nil {
		deliverable.Target2025 = input.Target2025
	}
	if input.Target2026 != nil {
		deliverable.Target2026 = input.Target2026
	}
	if input.Target2027 != nil {
		deliverable.Target2027 = input.Target2027
	}
	if input.ResponsibleDepartment != nil {
		deliverable.ResponsibleDepartment = *input.ResponsibleDepartment
	}
	if input.SupportingEvidence != nil {
		deliverable.SupportingEvidence = *input.SupportingEvidence
	}
	deliverable.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, id, deliverable); err != nil {
		return nil, err
	}
	return deliverable, nil
}

// Remove deletes the deliverable and cascades to its monthly submissions.
func (s *deliverableService) Remove(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return apperrors.NotFound("Deliverable with ID %q not found", id.Hex())
	}

	_, err = s.repo.DeleteSubmissionsByDeliverable(ctx, id)
	return err
}

func (s *deliverableService) GetSummary(ctx context.Context) (*models.DeliverableSummary, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	ministries, err := s.repo.CountDistinctMinistries(ctx)
	if err != nil {
		return nil, err
	}

	return &models.DeliverableSummary{
		TotalDeliverables: total,
		TotalMinistries:   ministries,
	}, nil
}

// CreateSubmission rejects a second submission for the same
// (deliverable, year, month); the caller is told to use the update path.
func (s *deliverableService) CreateSubmission(ctx context.Context, deliverableID primitive.ObjectID, input *models.CreateMonthlySubmissionInput) (*models.MonthlySubmission, error) {
	if _, err := s.getDeliverableOrFail(ctx, deliverableID); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetSubmissionByPeriod(ctx, deliverableID, input.Year, input.Month)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Conflict("Submission for %d/%d already exists. Use update instead.", input.Month, input.Year)
	}

	now := time.Now()
	submission := &models.MonthlySubmission{
		DeliverableID: deliverableID,
		Year:          input.Year,
		Month:         input.Month,
		ActualValue:   input.ActualValue,
		Progress:      input.Progress,
		KeyIssues:     input.KeyIssues,
		MDAEfforts:    input.MDAEfforts,
		Comments:      input.Comments,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.CreateSubmission(ctx, submission); err != nil {
		return nil, err
	}
	return submission, nil
}

func (s *deliverableService) GetSubmissions(ctx context.Context, deliverableID primitive.ObjectID) ([]models.MonthlySubmission, error) {
	if _, err := s.getDeliverableOrFail(ctx, deliverableID); err != nil {
		return nil, err
	}
	return s.repo.GetSubmissionsByDeliverable(ctx, deliverableID)
}

func (s *deliverableService) GetSubmission(ctx context.Context, deliverableID primitive.ObjectID, year, month int) (*models.MonthlySubmission, error) {
	if _, err := s.getDeliverableOrFail(ctx, deliverableID); err != nil {
		return nil, err
	}

	submission, err := s.repo.GetSubmissionByPeriod(ctx, deliverableID, year, month)
	if err != nil {
		return nil, err
	}
	if submission == nil {
		return nil, apperrors.NotFound("Submission for %d/%d not found", month, year)
	}
	return submission, nil
}

func (s *deliverableService) UpdateSubmission(ctx context.Context, submissionID primitive.ObjectID, input *models.UpdateMonthlySubmissionInput) (*models.MonthlySubmission, error) {
	submission, err := s.repo.GetSubmissionByID(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if submission == nil {
		return nil, apperrors.NotFound("Submission with ID %q not found", submissionID.Hex())
	}

	if input.ActualValue != nil {
		submission.ActualValue = input.ActualValue
	}
	if input.Progress != nil {
		submission.Progress = *input.Progress
	}
	if input.KeyIssues != nil {
		submission.KeyIssues = *input.KeyIssues
	}
	if input.MDAEfforts != nil {
		submission.MDAEfforts = *input.MDAEfforts
	}
	if input.Comments != nil {
		submission.Comments = *input.Comments
	}
	submission.UpdatedAt = time.Now()

	if err := s.repo.UpdateSubmission(ctx, submissionID, submission); err != nil {
		return nil, err
	}
	return submission, nil
}

func (s *deliverableService) RemoveSubmission(ctx context.Context, submissionID primitive.ObjectID) error {
	deleted, err := s.repo.DeleteSubmission(ctx, submissionID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return apperrors.NotFound("Submission with ID %q not found", submissionID.Hex())
	}
	return nil
}
