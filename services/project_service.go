package services

import (
	"context"
	"time"

	"perfmonitor/apperrors"
	"perfmonitor/models"
	repository "perfmonitor/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProjectService interface {
	Create(ctx context.Context, input *models.CreateProjectInput) (*models.Project, error)
	FindAll(ctx context.Context) ([]models.Project, error)
	FindOne(ctx context.Context, id primitive.ObjectID) (*models.Project, error)
	Update(ctx context.Context, id primitive.ObjectID, input *models.UpdateProjectInput) (*models.Project, error)
	Remove(ctx context.Context, id primitive.ObjectID) error

	CreateMilestone(ctx context.Context, projectID primitive.ObjectID, input *models.CreateMilestoneInput) (*models.Milestone, error)
	UpdateMilestone(ctx context.Context, milestoneID primitive.ObjectID, input *models.UpdateMilestoneInput) (*models.Milestone, error)
	CreateComment(ctx context.Context, projectID primitive.ObjectID, input *models.CreateCommentInput) (*models.Comment, error)
	CreateChallenge(ctx context.Context, projectID primitive.ObjectID, input *models.CreateProjectNoteInput) (*models.Challenge, error)
	CreateRecommendation(ctx context.Context, projectID primitive.ObjectID, input *models.CreateProjectNoteInput) (*models.Recommendation, error)
}

type projectService struct {
	repo          repository.ProjectRepository
	organizations repository.OrganizationRepository
	deliverables  repository.DeliverableRepository
}

func NewProjectService(repo repository.ProjectRepository, organizations repository.OrganizationRepository, deliverables repository.DeliverableRepository) ProjectService {
	return &projectService{
		repo:          repo,
		organizations: organizations,
		deliverables:  deliverables,
	}
}

func (s *projectService) getProjectOrFail(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, apperrors.NotFound("Project with ID %q not found", id.Hex())
	}
	return project, nil
}

func (s *projectService) checkPriorityArea(ctx context.Context, hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, apperrors.Validation("Invalid priority area ID format")
	}
	area, err := s.organizations.GetPriorityArea(ctx, id)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if area == nil {
		return primitive.NilObjectID, apperrors.NotFound("Priority area with ID %q not found. Cannot link project.", hex)
	}
	return id, nil
}

func (s *projectService) checkDeliverable(ctx context.Context, hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, apperrors.Validation("Invalid deliverable ID format")
	}
	deliverable, err := s.deliverables.GetByID(ctx, id)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if deliverable == nil {
		return primitive.NilObjectID, apperrors.NotFound("Deliverable with ID %q not found. Cannot link project.", hex)
	}
	return id, nil
}

func (s *projectService) Create(ctx context.Context, input *models.CreateProjectInput) (*models.Project, error) {
	priorityAreaID, err := s.checkPriorityArea(ctx, input.PriorityAreaID)
	if err != nil {
		return nil, err
	}
	deliverableID, err := s.checkDeliverable(ctx, input.DeliverableID)
	if err != nil {
		return nil, err
	}

	currency := input.Currency
	if currency == "" {
		currency = "NGN"
	}

	project := &models.Project{
		PriorityAreaID:     priorityAreaID,
		DeliverableID:      deliverableID,
		StartDate:          input.StartDate,
		Title:              input.Title,
		Objective:          input.Objective,
		BudgetCode:         input.BudgetCode,
		AmountAppropriated: input.AmountAppropriated,
		TotalCost:          input.TotalCost,
		Currency:           currency,
		ForeignComponent:   input.ForeignComponent,
		FundingSource:      input.FundingSource,
		ProjectType:        input.ProjectType,
		Status:             input.Status,
	}
	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) loadChildren(ctx context.Context, project *models.Project) error {
	milestones, err := s.repo.GetMilestonesByProject(ctx, project.ID)
	if err != nil {
		return err
	}
	comments, err := s.repo.GetCommentsByProject(ctx, project.ID)
	if err != nil {
		return err
	}
	challenges, err := s.repo.GetChallengesByProject(ctx, project.ID)
	if err != nil {
		return err
	}
	recommendations, err := s.repo.GetRecommendationsByProject(ctx, project.ID)
	if err != nil {
		return err
	}

	project.Milestones = milestones
	project.Comments = comments
	project.Challenges = challenges
	project.Recommendations = recommendations
	return nil
}

func (s *projectService) FindAll(ctx context.Context) ([]models.Project, error) {
	projects, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if err := s.loadChildren(ctx, &projects[i]); err != nil {
			return nil, err
		}
	}
	return projects, nil
}

func (s *projectService) FindOne(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	project, err := s.getProjectOrFail(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.loadChildren(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) Update(ctx context.Context, id primitive.ObjectID, input *models.UpdateProjectInput) (*models.Project, error) {
	project, err := s.getProjectOrFail(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.PriorityAreaID != nil {
		priorityAreaID, err := s.checkPriorityArea(ctx, *input.PriorityAreaID)
		if err != nil {
			return nil, err
		}
		project.PriorityAreaID = priorityAreaID
	}
	if input.DeliverableID != nil {
		deliverableID, err := s.checkDeliverable(ctx, *input.DeliverableID)
		if err != nil {
			return nil, err
		}
		project.DeliverableID = deliverableID
	}
	if input.StartDate != nil {
		project.StartDate = input.StartDate
	}
	if input.Title != nil {
		project.Title = *input.Title
	}
	if input.Objective != nil {
		project.Objective = *input.Objective
	}
	if input.BudgetCode != nil {
		project.BudgetCode = *input.BudgetCode
	}
	if input.AmountAppropriated != nil {
		project.AmountAppropriated = *input.AmountAppropriated
	}
	if input.TotalCost != nil {
		project.TotalCost = *input.TotalCost
	}
	if input.Currency != nil {
		project.Currency = *input.Currency
	}
	if input.ForeignComponent != nil {
		project.ForeignComponent = *input.ForeignComponent
	}
	if input.FundingSource != nil {
		project.FundingSource = *input.FundingSource
	}
	if input.ProjectType != nil {
		project.ProjectType = *input.ProjectType
	}
	if input.Status != nil {
		project.Status = *input.Status
	}

	if err := s.repo.Update(ctx, id, project); err != nil {
		return nil, err
	}
	return s.FindOne(ctx, id)
}

func (s *projectService) Remove(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return apperrors.NotFound("Project with ID %q not found", id.Hex())
	}
	return nil
}

func (s *projectService) CreateMilestone(ctx context.Context, projectID primitive.ObjectID, input *models.CreateMilestoneInput) (*models.Milestone, error) {
	if _, err := s.getProjectOrFail(ctx, projectID); err != nil {
		return nil, err
	}

	milestone := &models.Milestone{
		ProjectID:   projectID,
		Description: input.Description,
		PlannedDate: input.PlannedDate,
	}
	if err := s.repo.CreateMilestone(ctx, milestone); err != nil {
		return nil, err
	}
	return milestone, nil
}

func (s *projectService) UpdateMilestone(ctx context.Context, milestoneID primitive.ObjectID, input *models.UpdateMilestoneInput) (*models.Milestone, error) {
	milestone, err := s.repo.GetMilestone(ctx, milestoneID)
	if err != nil {
		return nil, err
	}
	if milestone == nil {
		return nil, apperrors.NotFound("Milestone with ID %q not found", milestoneID.Hex())
	}

	if input.Description != nil {
		milestone.Description = *input.Description
	}
	if input.PlannedDate != nil {
		milestone.PlannedDate = input.PlannedDate
	}
	if input.ActualDate != nil {
		milestone.ActualDate = input.ActualDate
	}
	if input.ProgressPercentage != nil {
		milestone.ProgressPercentage = *input.ProgressPercentage
	}

	if err := s.repo.UpdateMilestone(ctx, milestoneID, milestone); err != nil {
		return nil, err
	}
	return milestone, nil
}

func (s *projectService) CreateComment(ctx context.Context, projectID primitive.ObjectID, input *models.CreateCommentInput) (*models.Comment, error) {
	if _, err := s.getProjectOrFail(ctx, projectID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ProjectID: projectID,
		Content:   input.Content,
		Author:    input.Author,
		CreatedAt: time.Now(),
	}
	if err := s.repo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *projectService) CreateChallenge(ctx context.Context, projectID primitive.ObjectID, input *models.CreateProjectNoteInput) (*models.Challenge, error) {
	if _, err := s.getProjectOrFail(ctx, projectID); err != nil {
		return nil, err
	}

	challenge := &models.Challenge{
		ProjectID:   projectID,
		Description: input.Description,
	}
	if err := s.repo.CreateChallenge(ctx, challenge); err != nil {
		return nil, err
	}
	return challenge, nil
}

func (s *projectService) CreateRecommendation(ctx context.Context, projectID primitive.ObjectID, input *models.CreateProjectNoteInput) (*models.Recommendation, error) {
	if _, err := s.getProjectOrFail(ctx, projectID); err != nil {
		return nil, err
	}

	recommendation := &models.Recommendation{
		ProjectID:   projectID,
		Description: input.Description,
	}
	if err := s.repo.CreateRecommendation(ctx, recommendation); err != nil {
		return nil, err
	}
	return recommendation, nil
}
