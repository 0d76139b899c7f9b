package models

import "time"

type Recipe struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	AuthorID    string    `json:"author_id" gorm:"type:uuid;not null;index"`
	Name        string    `json:"name" gorm:"not null;size:200"`
	Image       string    `json:"image" gorm:"not null"` // opaque media reference
	Text        string    `json:"text" gorm:"not null;type:text"`
	CookingTime int       `json:"cooking_time" gorm:"not null;check:cooking_time >= 1 AND cooking_time <= 1000"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime;index"`

	// Associations
	Author      *User              `json:"author,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE;"`
	Tags        []Tag              `json:"tags,omitempty" gorm:"many2many:recipe_tags;constraint:OnDelete:CASCADE;"`
	Ingredients []RecipeIngredient `json:"ingredients,omitempty" gorm:"foreignKey:RecipeID"`
}

func (Recipe) TableName() string {
	return "recipes"
}
