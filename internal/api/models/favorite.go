package models

import "time"

// Favorite is a (user, recipe) edge. The unique pair index is what keeps
// concurrent duplicate adds out of the table.
type Favorite struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_user_recipe_favorite" json:"user_id"`
	RecipeID  int64     `gorm:"not null;index;uniqueIndex:idx_user_recipe_favorite" json:"recipe_id"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	// Associations
	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"user,omitempty"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE;" json:"recipe,omitempty"`
}

func (Favorite) TableName() string {
	return "favorites"
}
