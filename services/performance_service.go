package services

import (
	"context"
	"time"

	"perfmonitor/apperrors"
	"perfmonitor/models"
	repository "perfmonitor/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PerformanceService interface {
	RecordDepartmentMonthlyPerformance(ctx context.Context, input *models.RecordDepartmentPerformanceInput) (*models.DepartmentMonthlyPerformance, error)
	UpdateDepartmentMonthlyPerformance(ctx context.Context, id primitive.ObjectID, input *models.UpdateDepartmentPerformanceInput) (*models.DepartmentMonthlyPerformance, error)
	GetCurrentDepartmentPerformance(ctx context.Context, departmentID primitive.ObjectID) (*models.DepartmentMonthlyPerformance, error)
	GetDepartmentPerformanceHistory(ctx context.Context, departmentID primitive.ObjectID, query models.QueryDepartmentPerformanceInput) ([]models.DepartmentMonthlyPerformance, error)
	GetDepartmentMonthlySummary(ctx context.Context, departmentID primitive.ObjectID) (*models.DepartmentMonthlySummary, error)
}

type performanceService struct {
	repo        repository.PerformanceRepository
	departments repository.OrganizationRepository
	now         func() time.Time
}

func NewPerformanceService(repo repository.PerformanceRepository, departments repository.OrganizationRepository) PerformanceService {
	return &performanceService{
		repo:        repo,
		departments: departments,
		now:         time.Now,
	}
}

func (s *performanceService) getDepartmentOrFail(ctx context.Context, id primitive.ObjectID) (*models.Department, error) {
	department, err := s.departments.GetDepartment(ctx, id)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, apperrors.NotFound("Department with ID %q not found", id.Hex())
	}
	return department, nil
}

// RecordDepartmentMonthlyPerformance merges into an existing
// (department, year, month) record when one exists; fields omitted from the
// payload keep their stored values. Absent a record, a new one is created
// with omitted numerics defaulting to zero.
func (s *performanceService) RecordDepartmentMonthlyPerformance(ctx context.Context, input *models.RecordDepartmentPerformanceInput) (*models.DepartmentMonthlyPerformance, error) {
	departmentID, err := primitive.ObjectIDFromHex(input.DepartmentID)
	if err != nil {
		return nil, apperrors.Validation("Invalid department ID format")
	}
	department, err := s.getDepartmentOrFail(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	record, err := s.repo.GetByPeriod(ctx, department.ID, input.Year, input.Month)
	if err != nil {
		return nil, err
	}

	if record != nil {
		if input.PerformanceScore != nil {
			record.PerformanceScore = *input.PerformanceScore
		}
		if input.TotalTargets != nil {
			record.TotalTargets = *input.TotalTargets
		}
		if input.CompletedTargets != nil {
			record.CompletedTargets = *input.CompletedTargets
		}
		if input.PendingTargets != nil {
			record.PendingTargets = *input.PendingTargets
		}
		if input.OverdueTargets != nil {
			record.OverdueTargets = *input.OverdueTargets
		}
		if input.Notes != nil {
			record.Notes = *input.Notes
		}
		if err := s.repo.Update(ctx, record.ID, record); err != nil {
			return nil, err
		}
		return record, nil
	}

	record = &models.DepartmentMonthlyPerformance{
		DepartmentID: department.ID,
		Year:         input.Year,
		Month:        input.Month,
	}
	if input.PerformanceScore != nil {
		record.PerformanceScore = *input.PerformanceScore
	}
	if input.TotalTargets != nil {
		record.TotalTargets = *input.TotalTargets
	}
	if input.CompletedTargets != nil {
		record.CompletedTargets = *input.CompletedTargets
	}
	if input.PendingTargets != nil {
		record.PendingTargets = *input.PendingTargets
	}
	if input.OverdueTargets != nil {
		record.OverdueTargets = *input.OverdueTargets
	}
	if input.Notes != nil {
		record.Notes = *input.Notes
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *performanceService) UpdateDepartmentMonthlyPerformance(ctx context.Context, id primitive.ObjectID, input *models.UpdateDepartmentPerformanceInput) (*models.DepartmentMonthlyPerformance, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperrors.NotFound("Department performance record with ID %q not found", id.Hex())
	}

	if input.PeriodStart != nil {
		record.PeriodStart = input.PeriodStart
	}
	if input.PeriodEnd != nil {
		record.PeriodEnd = input.PeriodEnd
	}
	if input.PerformanceScore != nil {
		record.PerformanceScore = *input.PerformanceScore
	}
	if input.TotalTargets != nil {
		record.TotalTargets = *input.TotalTargets
	}
	if input.CompletedTargets != nil {
		record.CompletedTargets = *input.CompletedTargets
	}
	if input.PendingTargets != nil {
		record.PendingTargets = *input.PendingTargets
	}
	if input.OverdueTargets != nil {
		record.OverdueTargets = *input.OverdueTargets
	}
	if input.Notes != nil {
		record.Notes = *input.Notes
	}

	if err := s.repo.Update(ctx, id, record); err != nil {
		return nil, err
	}
	return record, nil
}

// GetCurrentDepartmentPerformance returns the most recent record for the
// department, or nil when none has been recorded yet.
func (s *performanceService) GetCurrentDepartmentPerformance(ctx context.Context, departmentID primitive.ObjectID) (*models.DepartmentMonthlyPerformance, error) {
	if _, err := s.getDepartmentOrFail(ctx, departmentID); err != nil {
		return nil, err
	}
	return s.repo.GetLatest(ctx, departmentID)
}

func (s *performanceService) GetDepartmentPerformanceHistory(ctx context.Context, departmentID primitive.ObjectID, query models.QueryDepartmentPerformanceInput) ([]models.DepartmentMonthlyPerformance, error) {
	if _, err := s.getDepartmentOrFail(ctx, departmentID); err != nil {
		return nil, err
	}
	return s.repo.Find(ctx, departmentID, query)
}

// previousPeriod rolls one calendar month back, crossing the year boundary
// when the month is January.
func previousPeriod(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}

func buildSummaryItem(year, month int, record *models.DepartmentMonthlyPerformance) models.MonthlySummaryItem {
	item := models.MonthlySummaryItem{Year: year, Month: month}
	if record != nil {
		item.TotalTargets = record.TotalTargets
		item.CompletedTargets = record.CompletedTargets
		item.OutstandingTargets = record.PendingTargets
		item.UnmetTargets = record.OverdueTargets
	}
	return item
}

// GetDepartmentMonthlySummary reports the current and the immediately
// previous calendar month. A period with no stored record yields all four
// counts as zero rather than being omitted.
func (s *performanceService) GetDepartmentMonthlySummary(ctx context.Context, departmentID primitive.ObjectID) (*models.DepartmentMonthlySummary, error) {
	if _, err := s.getDepartmentOrFail(ctx, departmentID); err != nil {
		return nil, err
	}

	now := s.now()
	currentYear, currentMonth := now.Year(), int(now.Month())
	previousYear, previousMonth := previousPeriod(currentYear, currentMonth)

	currentRecord, err := s.repo.GetByPeriod(ctx, departmentID, currentYear, currentMonth)
	if err != nil {
		return nil, err
	}
	previousRecord, err := s.repo.GetByPeriod(ctx, departmentID, previousYear, previousMonth)
	if err != nil {
		return nil, err
	}

	return &models.DepartmentMonthlySummary{
		DepartmentID:  departmentID.Hex(),
		CurrentMonth:  buildSummaryItem(currentYear, currentMonth, currentRecord),
		PreviousMonth: buildSummaryItem(previousYear, previousMonth, previousRecord),
	}, nil
}
