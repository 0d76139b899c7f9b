package models

// RecipeIngredient links a recipe to one ingredient line.
// The pair is unique: a recipe never lists the same ingredient twice.
type RecipeIngredient struct {
	ID           int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	RecipeID     int64 `json:"recipe_id" gorm:"not null;index;uniqueIndex:idx_recipe_ingredient"`
	IngredientID int64 `json:"ingredient_id" gorm:"not null;index;uniqueIndex:idx_recipe_ingredient"`
	Amount       int64 `json:"amount" gorm:"not null;check:amount >= 1"`

	// Associations
	Ingredient *Ingredient `json:"ingredient,omitempty" gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE;"`
}

func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}
