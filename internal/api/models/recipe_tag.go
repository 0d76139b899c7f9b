package models

// explicit join model for the recipe <-> tag many2many (has its own id)
type RecipeTag struct {
	ID       int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	RecipeID int64 `json:"recipe_id" gorm:"index;not null;uniqueIndex:idx_recipe_tag"`
	TagID    int64 `json:"tag_id" gorm:"index;not null;uniqueIndex:idx_recipe_tag"`
}

func (RecipeTag) TableName() string {
	return "recipe_tags"
}
