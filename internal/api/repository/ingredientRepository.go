package repository

import (
	"context"
	"fmt"
	"strings"

	"foodgram/internal/api/models"

	"gorm.io/gorm"
)

// IngredientRepository defines the interface for ingredient catalog operations.
type IngredientRepository interface {
	Search(ctx context.Context, prefix string) ([]models.Ingredient, error)
	GetByID(ctx context.Context, id int64) (*models.Ingredient, error)
	FindByIDs(ctx context.Context, ids []int64) ([]models.Ingredient, error)
	Create(ctx context.Context, ing *models.Ingredient) error
}

// ingredientRepository is the GORM implementation of IngredientRepository.
type ingredientRepository struct {
	db *gorm.DB
}

func NewIngredientRepo(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

// Search returns ingredients whose name starts with prefix
// (case-insensitive). An empty prefix returns the whole catalog.
func (r *ingredientRepository) Search(ctx context.Context, prefix string) ([]models.Ingredient, error) {
	var list []models.Ingredient
	q := r.db.WithContext(ctx).Order("name asc")
	if prefix != "" {
		q = q.Where("name ILIKE ?", escapeLike(prefix)+"%")
	}
	if err := q.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("search ingredients: %w", err)
	}
	return list, nil
}

func (r *ingredientRepository) GetByID(ctx context.Context, id int64) (*models.Ingredient, error) {
	var ing models.Ingredient
	if err := r.db.WithContext(ctx).First(&ing, id).Error; err != nil {
		return nil, err
	}
	return &ing, nil
}

// FindByIDs returns the ingredients matching ids; callers compare lengths to
// detect unknown ids.
func (r *ingredientRepository) FindByIDs(ctx context.Context, ids []int64) ([]models.Ingredient, error) {
	var list []models.Ingredient
	if len(ids) == 0 {
		return list, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("find ingredients: %w", err)
	}
	return list, nil
}

func (r *ingredientRepository) Create(ctx context.Context, ing *models.Ingredient) error {
	if err := r.db.WithContext(ctx).Create(ing).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("create ingredient: %w", err)
	}
	return nil
}

// escapeLike escapes the LIKE/ILIKE metacharacters so a user-typed prefix
// only ever matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
