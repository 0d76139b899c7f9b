package repository

import (
	"context"
	"fmt"

	"foodgram/internal/api/models"

	"gorm.io/gorm"
)

// RecipeRepository defines the interface for recipe data operations,
// including the link tables and the cart aggregation source.
type RecipeRepository interface {
	GetAll(ctx context.Context, f RecipeFilter, page, pageSize int) ([]models.Recipe, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Recipe, error)
	Create(ctx context.Context, recipe *models.Recipe, tagIDs []int64, lines []models.RecipeIngredient) error
	Update(ctx context.Context, recipe *models.Recipe, tagIDs []int64, lines []models.RecipeIngredient) error
	Delete(ctx context.Context, id int64) error
	CartIngredientLines(ctx context.Context, userID string) ([]IngredientLine, error)
	RecentByAuthor(ctx context.Context, authorID string, limit int) ([]models.Recipe, error)
	CountByAuthor(ctx context.Context, authorID string) (int64, error)
}

// recipeRepository is the GORM implementation of RecipeRepository.
type recipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepo(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// RecipeFilter narrows List results. Zero values mean "no filter".
type RecipeFilter struct {
	TagSlugs    []string // any of the slugs matches
	AuthorID    string
	FavoritedBy string // only recipes this user favorited
	InCartOf    string // only recipes in this user's shopping cart
}

// IngredientLine is one ingredient row of one cart recipe, used by the
// shopping list aggregation.
type IngredientLine struct {
	IngredientID    int64  `json:"ingredient_id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int64  `json:"amount"`
}

func (r *recipeRepository) GetAll(ctx context.Context, f RecipeFilter, page, pageSize int) ([]models.Recipe, int64, error) {
	var list []models.Recipe
	var total int64

	q := r.db.WithContext(ctx).Model(&models.Recipe{})

	// membership filters go through subqueries so joined rows never
	// duplicate recipes in the page
	if len(f.TagSlugs) > 0 {
		q = q.Where("recipes.id IN (?)",
			r.db.Table("recipe_tags").
				Select("recipe_tags.recipe_id").
				Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
				Where("tags.slug IN ?", f.TagSlugs),
		)
	}
	if f.AuthorID != "" {
		q = q.Where("recipes.author_id = ?", f.AuthorID)
	}
	if f.FavoritedBy != "" {
		q = q.Where("recipes.id IN (?)",
			r.db.Table("favorites").Select("recipe_id").Where("user_id = ?", f.FavoritedBy),
		)
	}
	if f.InCartOf != "" {
		q = q.Where("recipes.id IN (?)",
			r.db.Table("shopping_carts").Select("recipe_id").Where("user_id = ?", f.InCartOf),
		)
	}

	// Count total records
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := q.
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients.Ingredient").
		Order("created_at desc, id desc").
		Limit(pageSize).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *recipeRepository) GetByID(ctx context.Context, id int64) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients.Ingredient").
		First(&recipe, id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Create persists the recipe row and its tag/ingredient links in one
// transaction; a reader never observes a recipe without its links.
func (r *recipeRepository) Create(ctx context.Context, recipe *models.Recipe, tagIDs []int64, lines []models.RecipeIngredient) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("begin create recipe: %w", tx.Error)
	}

	if err := tx.Omit("Tags", "Ingredients", "Author").Create(recipe).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("create recipe: %w", err)
	}
	if err := createLinks(tx, recipe.ID, tagIDs, lines); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

// Update saves the recipe fields and does a full clear-then-recreate of both
// link tables inside one transaction (no incremental diffing).
func (r *recipeRepository) Update(ctx context.Context, recipe *models.Recipe, tagIDs []int64, lines []models.RecipeIngredient) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("begin update recipe: %w", tx.Error)
	}

	if err := tx.Omit("Tags", "Ingredients", "Author").Save(recipe).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("update recipe: %w", err)
	}
	if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("clear recipe ingredients: %w", err)
	}
	if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeTag{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("clear recipe tags: %w", err)
	}
	if err := createLinks(tx, recipe.ID, tagIDs, lines); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

// Delete removes the recipe with its link rows and any edges pointing at it.
func (r *recipeRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("begin delete recipe: %w", tx.Error)
	}

	for _, m := range []interface{}{
		&models.RecipeIngredient{},
		&models.RecipeTag{},
		&models.Favorite{},
		&models.ShoppingCart{},
	} {
		if err := tx.Where("recipe_id = ?", id).Delete(m).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("cascade delete recipe links: %w", err)
		}
	}
	if err := tx.Delete(&models.Recipe{}, id).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("delete recipe: %w", err)
	}
	return tx.Commit().Error
}

func createLinks(tx *gorm.DB, recipeID int64, tagIDs []int64, lines []models.RecipeIngredient) error {
	if len(tagIDs) > 0 {
		tags := make([]models.RecipeTag, 0, len(tagIDs))
		for _, tagID := range tagIDs {
			tags = append(tags, models.RecipeTag{RecipeID: recipeID, TagID: tagID})
		}
		if err := tx.Create(&tags).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicateKey
			}
			return fmt.Errorf("create recipe tags: %w", err)
		}
	}
	if len(lines) > 0 {
		for i := range lines {
			lines[i].RecipeID = recipeID
			lines[i].ID = 0
			lines[i].Ingredient = nil
		}
		if err := tx.Create(&lines).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicateKey
			}
			return fmt.Errorf("create recipe ingredients: %w", err)
		}
	}
	return nil
}

// CartIngredientLines returns the raw ingredient lines of every recipe in
// the user's shopping cart, unaggregated. Summing happens in the service so
// the arithmetic is unit-testable without a database.
func (r *recipeRepository) CartIngredientLines(ctx context.Context, userID string) ([]IngredientLine, error) {
	var lines []IngredientLine
	if err := r.db.WithContext(ctx).
		Table("recipe_ingredients").
		Select("recipe_ingredients.ingredient_id, ingredients.name, ingredients.measurement_unit, recipe_ingredients.amount").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Joins("JOIN shopping_carts ON shopping_carts.recipe_id = recipe_ingredients.recipe_id").
		Where("shopping_carts.user_id = ?", userID).
		Scan(&lines).Error; err != nil {
		return nil, fmt.Errorf("cart ingredient lines: %w", err)
	}
	return lines, nil
}

// RecentByAuthor returns the author's newest recipes, capped by limit
// (limit <= 0 means no cap). Used by the subscription projection.
func (r *recipeRepository) RecentByAuthor(ctx context.Context, authorID string, limit int) ([]models.Recipe, error) {
	var list []models.Recipe
	q := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at desc, id desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("recipes by author: %w", err)
	}
	return list, nil
}

func (r *recipeRepository) CountByAuthor(ctx context.Context, authorID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Where("author_id = ?", authorID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count recipes by author: %w", err)
	}
	return count, nil
}
