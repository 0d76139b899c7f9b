package service

import (
	"context"
	"errors"
	"strings"

	"foodgram/internal/api/cache"
	"foodgram/internal/api/models"
	"foodgram/internal/api/repository"

	"gorm.io/gorm"
)

var (
	ErrIngredientNotFound  = errors.New("ingredient not found")
	ErrDuplicateIngredient = errors.New("ingredient already exists")
)

type IngredientService interface {
	SearchIngredients(ctx context.Context, prefix string) ([]models.Ingredient, error)
	GetIngredientByID(ctx context.Context, id int64) (*models.Ingredient, error)
	CreateIngredient(ctx context.Context, ing *models.Ingredient) error
}

type ingredientService struct {
	repo  repository.IngredientRepository
	cache *cache.ReferenceCache
}

func NewIngredientService(repo repository.IngredientRepository, refCache *cache.ReferenceCache) IngredientService {
	return &ingredientService{repo: repo, cache: refCache}
}

// SearchIngredients does a case-insensitive prefix search over the catalog.
// Results are cached per normalized prefix; the catalog changes rarely and
// the autocomplete widget hits this hard.
func (s *ingredientService) SearchIngredients(ctx context.Context, prefix string) ([]models.Ingredient, error) {
	key := strings.ToLower(strings.TrimSpace(prefix))
	if list, ok := s.cache.GetIngredients(ctx, key); ok {
		return list, nil
	}
	list, err := s.repo.Search(ctx, key)
	if err != nil {
		return nil, err
	}
	s.cache.SetIngredients(ctx, key, list)
	return list, nil
}

func (s *ingredientService) GetIngredientByID(ctx context.Context, id int64) (*models.Ingredient, error) {
	ing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIngredientNotFound
		}
		return nil, err
	}
	return ing, nil
}

func (s *ingredientService) CreateIngredient(ctx context.Context, ing *models.Ingredient) error {
	if err := s.repo.Create(ctx, ing); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return ErrDuplicateIngredient
		}
		return err
	}
	s.cache.InvalidateIngredients(ctx)
	return nil
}
