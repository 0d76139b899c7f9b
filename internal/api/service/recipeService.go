package service

import (
	"context"
	"errors"
	"fmt"

	"foodgram/internal/api/models"
	"foodgram/internal/api/repository"
	"foodgram/internal/storage"

	"gorm.io/gorm"
)

var (
	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrNotRecipeAuthor    = errors.New("not the recipe author")
	ErrInvalidRecipe      = errors.New("invalid recipe")
	ErrRepeatedIngredient = errors.New("ingredient listed twice")
)

const (
	minCookingTime = 1
	maxCookingTime = 1000
)

// IngredientAmount is one "ingredient id + amount" line of a recipe write.
type IngredientAmount struct {
	ID     int64
	Amount int64
}

// RecipeInput carries a full recipe write. Image is a base64 data URI; on
// update an empty Image keeps the stored one.
type RecipeInput struct {
	Name        string
	Image       string
	Text        string
	CookingTime int
	TagIDs      []int64
	Ingredients []IngredientAmount
}

// RecipeFlags are the per-viewer booleans of the recipe projection.
type RecipeFlags struct {
	Favorited map[int64]bool
	InCart    map[int64]bool
}

type RecipeService interface {
	ListRecipes(ctx context.Context, f repository.RecipeFilter, page, pageSize int) ([]models.Recipe, int64, error)
	GetRecipeByID(ctx context.Context, id int64) (*models.Recipe, error)
	CreateRecipe(ctx context.Context, authorID string, in RecipeInput) (*models.Recipe, error)
	UpdateRecipe(ctx context.Context, actorID string, actorIsAdmin bool, id int64, in RecipeInput) (*models.Recipe, error)
	DeleteRecipe(ctx context.Context, actorID string, actorIsAdmin bool, id int64) error
	ViewerFlags(ctx context.Context, viewerID string) (*RecipeFlags, error)
}

type recipeService struct {
	recipeRepo     repository.RecipeRepository
	tagRepo        repository.TagRepository
	ingredientRepo repository.IngredientRepository
	favorites      repository.EdgeStore[int64]
	carts          repository.EdgeStore[int64]
	images         storage.ImageStore
}

func NewRecipeService(
	recipeRepo repository.RecipeRepository,
	tagRepo repository.TagRepository,
	ingredientRepo repository.IngredientRepository,
	favorites repository.EdgeStore[int64],
	carts repository.EdgeStore[int64],
	images storage.ImageStore,
) RecipeService {
	return &recipeService{
		recipeRepo:     recipeRepo,
		tagRepo:        tagRepo,
		ingredientRepo: ingredientRepo,
		favorites:      favorites,
		carts:          carts,
		images:         images,
	}
}

func (s *recipeService) ListRecipes(ctx context.Context, f repository.RecipeFilter, page, pageSize int) ([]models.Recipe, int64, error) {
	return s.recipeRepo.GetAll(ctx, f, page, pageSize)
}

func (s *recipeService) GetRecipeByID(ctx context.Context, id int64) (*models.Recipe, error) {
	recipe, err := s.recipeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, authorID string, in RecipeInput) (*models.Recipe, error) {
	tagIDs, err := s.validateInput(ctx, in, true)
	if err != nil {
		return nil, err
	}

	imageRef, err := s.storeImage(in.Image)
	if err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		AuthorID:    authorID,
		Name:        in.Name,
		Image:       imageRef,
		Text:        in.Text,
		CookingTime: in.CookingTime,
	}
	lines := toLines(in.Ingredients)

	if err := s.recipeRepo.Create(ctx, recipe, tagIDs, lines); err != nil {
		s.images.Remove(imageRef)
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrRepeatedIngredient
		}
		return nil, err
	}

	return s.GetRecipeByID(ctx, recipe.ID)
}

// UpdateRecipe replaces the recipe wholesale: fields, tag links and
// ingredient lines all come from the input. Only the author or an admin may
// update.
func (s *recipeService) UpdateRecipe(ctx context.Context, actorID string, actorIsAdmin bool, id int64, in RecipeInput) (*models.Recipe, error) {
	recipe, err := s.GetRecipeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if recipe.AuthorID != actorID && !actorIsAdmin {
		return nil, ErrNotRecipeAuthor
	}

	tagIDs, err := s.validateInput(ctx, in, in.Image != "")
	if err != nil {
		return nil, err
	}

	oldImage := recipe.Image
	newImage := ""
	if in.Image != "" {
		if newImage, err = s.storeImage(in.Image); err != nil {
			return nil, err
		}
		recipe.Image = newImage
	}

	recipe.Name = in.Name
	recipe.Text = in.Text
	recipe.CookingTime = in.CookingTime
	recipe.Tags = nil
	recipe.Ingredients = nil
	lines := toLines(in.Ingredients)

	if err := s.recipeRepo.Update(ctx, recipe, tagIDs, lines); err != nil {
		s.images.Remove(newImage)
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrRepeatedIngredient
		}
		return nil, err
	}
	if newImage != "" {
		s.images.Remove(oldImage)
	}

	return s.GetRecipeByID(ctx, id)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, actorID string, actorIsAdmin bool, id int64) error {
	recipe, err := s.GetRecipeByID(ctx, id)
	if err != nil {
		return err
	}
	if recipe.AuthorID != actorID && !actorIsAdmin {
		return ErrNotRecipeAuthor
	}

	if err := s.recipeRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.images.Remove(recipe.Image)
	return nil
}

// ViewerFlags loads the viewer's favorite and cart memberships once per
// request so a page of recipes costs two queries, not 2N.
func (s *recipeService) ViewerFlags(ctx context.Context, viewerID string) (*RecipeFlags, error) {
	flags := &RecipeFlags{
		Favorited: map[int64]bool{},
		InCart:    map[int64]bool{},
	}
	if viewerID == "" {
		return flags, nil
	}

	favIDs, err := s.favorites.TargetIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	cartIDs, err := s.carts.TargetIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	for _, id := range favIDs {
		flags.Favorited[id] = true
	}
	for _, id := range cartIDs {
		flags.InCart[id] = true
	}
	return flags, nil
}

// validateRecipeInput checks everything that needs no catalog lookup.
func validateRecipeInput(in RecipeInput, imageRequired bool) error {
	if in.Name == "" || in.Text == "" {
		return fmt.Errorf("%w: name and text are required", ErrInvalidRecipe)
	}
	if imageRequired && in.Image == "" {
		return fmt.Errorf("%w: image is required", ErrInvalidRecipe)
	}
	if in.CookingTime < minCookingTime || in.CookingTime > maxCookingTime {
		return fmt.Errorf("%w: cooking_time must be between %d and %d", ErrInvalidRecipe, minCookingTime, maxCookingTime)
	}
	if len(in.TagIDs) == 0 {
		return fmt.Errorf("%w: at least one tag is required", ErrInvalidRecipe)
	}
	if len(in.Ingredients) == 0 {
		return fmt.Errorf("%w: at least one ingredient is required", ErrInvalidRecipe)
	}

	seen := make(map[int64]bool, len(in.Ingredients))
	for _, line := range in.Ingredients {
		if line.Amount < 1 {
			return fmt.Errorf("%w: ingredient amount must be at least 1", ErrInvalidRecipe)
		}
		if seen[line.ID] {
			return ErrRepeatedIngredient
		}
		seen[line.ID] = true
	}
	return nil
}

// validateInput runs the local checks, then verifies every referenced tag
// and ingredient exists. It returns the deduplicated tag ids: repeating a
// tag in a submission is collapsed silently, and the persistence layer only
// ever sees the collapsed list.
func (s *recipeService) validateInput(ctx context.Context, in RecipeInput, imageRequired bool) ([]int64, error) {
	if err := validateRecipeInput(in, imageRequired); err != nil {
		return nil, err
	}

	ingredientIDs := make([]int64, 0, len(in.Ingredients))
	for _, line := range in.Ingredients {
		ingredientIDs = append(ingredientIDs, line.ID)
	}

	tagIDs := dedupe(in.TagIDs)
	tags, err := s.tagRepo.FindByIDs(ctx, tagIDs)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(tagIDs) {
		return nil, ErrTagNotFound
	}

	ingredients, err := s.ingredientRepo.FindByIDs(ctx, ingredientIDs)
	if err != nil {
		return nil, err
	}
	if len(ingredients) != len(ingredientIDs) {
		return nil, ErrIngredientNotFound
	}
	return tagIDs, nil
}

func (s *recipeService) storeImage(dataURI string) (string, error) {
	data, ext, err := storage.DecodeDataURI(dataURI)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidRecipe, "image must be a base64 data URI")
	}
	ref, err := s.images.Save(data, ext)
	if err != nil {
		return "", err
	}
	return ref, nil
}

func toLines(amounts []IngredientAmount) []models.RecipeIngredient {
	lines := make([]models.RecipeIngredient, 0, len(amounts))
	for _, a := range amounts {
		lines = append(lines, models.RecipeIngredient{
			IngredientID: a.ID,
			Amount:       a.Amount,
		})
	}
	return lines
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
