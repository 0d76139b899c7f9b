package models

type Tag struct {
	ID    int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name  string `json:"name" gorm:"unique;not null;size:200"`
	Color string `json:"color" gorm:"unique;not null;size:7"` // hex color, e.g. #49B64E
	Slug  string `json:"slug" gorm:"uniqueIndex;not null;size:200"`
}

func (Tag) TableName() string {
	return "tags"
}
