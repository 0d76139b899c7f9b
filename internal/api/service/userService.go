package service

import (
	"context"
	"errors"

	"foodgram/internal/api/models"
	"foodgram/internal/api/repository"
	"foodgram/internal/middleware/auth"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("current password is wrong")
)

type UserService interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	ListUsers(ctx context.Context, page, pageSize int) ([]models.User, int64, error)
	SetPassword(ctx context.Context, userID, currentPassword, newPassword string) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, page, pageSize int) ([]models.User, int64, error) {
	return s.repo.List(ctx, page, pageSize)
}

// SetPassword verifies the current password before storing a new hash.
func (s *userService) SetPassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := auth.VerifyPassword(user.Password, currentPassword); err != nil {
		return ErrWrongPassword
	}
	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, userID, string(hashed))
}
