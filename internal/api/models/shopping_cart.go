package models

import "time"

// ShoppingCart is a (user, recipe) edge, same shape as Favorite but its own
// table so the two memberships stay independent.
type ShoppingCart struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_user_recipe_cart" json:"user_id"`
	RecipeID  int64     `gorm:"not null;index;uniqueIndex:idx_user_recipe_cart" json:"recipe_id"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	// Associations
	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"user,omitempty"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE;" json:"recipe,omitempty"`
}

func (ShoppingCart) TableName() string {
	return "shopping_carts"
}
