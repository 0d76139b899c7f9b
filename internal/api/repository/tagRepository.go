package repository

import (
	"context"
	"errors"
	"fmt"

	"foodgram/internal/api/models"

	"gorm.io/gorm"
)

// ErrDuplicateKey reports a unique constraint hit on catalog writes
// (tag/ingredient names, colors, slugs).
var ErrDuplicateKey = errors.New("duplicate key")

// TagRepository defines the interface for tag catalog operations.
type TagRepository interface {
	GetAll(ctx context.Context) ([]models.Tag, error)
	GetByID(ctx context.Context, id int64) (*models.Tag, error)
	FindByIDs(ctx context.Context, ids []int64) ([]models.Tag, error)
	Create(ctx context.Context, t *models.Tag) error
}

// tagRepository is the GORM implementation of TagRepository.
type tagRepository struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) GetAll(ctx context.Context) ([]models.Tag, error) {
	var list []models.Tag
	if err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get tags: %w", err)
	}
	return list, nil
}

func (r *tagRepository) GetByID(ctx context.Context, id int64) (*models.Tag, error) {
	var t models.Tag
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// FindByIDs returns the tags matching ids; callers compare lengths to detect
// unknown ids.
func (r *tagRepository) FindByIDs(ctx context.Context, ids []int64) ([]models.Tag, error) {
	var list []models.Tag
	if len(ids) == 0 {
		return list, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("find tags: %w", err)
	}
	return list, nil
}

func (r *tagRepository) Create(ctx context.Context, t *models.Tag) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("create tag: %w", err)
	}
	return nil
}
