package services

import (
	"context"

	"perfmonitor/apperrors"
	"perfmonitor/models"
	repository "perfmonitor/repositories"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Create(ctx context.Context, input *models.CreateUserInput) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	FindOne(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, email string, input *models.UpdateUserInput) (*models.User, error)
	Remove(ctx context.Context, email string) error
	GetStats(ctx context.Context) (*models.UserStats, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{
		repo: repo,
	}
}

func (s *userService) Create(ctx context.Context, input *models.CreateUserInput) (*models.User, error) {
	existing, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Conflict("User with email %q already exists", input.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    input.Email,
		Password: string(hash),
		Role:     input.Role,
		Status:   models.StatusActive,
		Info:     input.Info,
		Contact:  input.Contact,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) FindAll(ctx context.Context) ([]models.User, error) {
	return s.repo.GetAll(ctx)
}

func (s *userService) FindOne(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFound("User with email %q not found", email)
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, email string, input *models.UpdateUserInput) (*models.User, error) {
	user, err := s.FindOne(ctx, email)
	if err != nil {
		return nil, err
	}

	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.Status != nil {
		user.Status = *input.Status
	}
	if input.Info != nil {
		user.Info = *input.Info
	}
	if input.Contact != nil {
		user.Contact = *input.Contact
	}

	if err := s.repo.Update(ctx, email, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Remove(ctx context.Context, email string) error {
	deleted, err := s.repo.Delete(ctx, email)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return apperrors.NotFound("User with email %q not found", email)
	}
	return nil
}

func (s *userService) GetStats(ctx context.Context) (*models.UserStats, error) {
	total, err := s.repo.Count(ctx, nil)
	if err != nil {
		return nil, err
	}
	active, err := s.repo.Count(ctx, bson.M{"status": models.StatusActive})
	if err != nil {
		return nil, err
	}
	suspended, err := s.repo.Count(ctx, bson.M{"status": models.StatusSuspended})
	if err != nil {
		return nil, err
	}
	removed, err := s.repo.Count(ctx, bson.M{"status": models.StatusRemoved})
	if err != nil {
		return nil, err
	}
	admins, err := s.repo.Count(ctx, bson.M{"role": models.RoleAdmin})
	if err != nil {
		return nil, err
	}
	guests, err := s.repo.Count(ctx, bson.M{"role": models.RoleGuest})
	if err != nil {
		return nil, err
	}

	return &models.UserStats{
		Total:     total,
		Active:    active,
		Suspended: suspended,
		Removed:   removed,
		Admins:    admins,
		Guests:    guests,
	}, nil
}
