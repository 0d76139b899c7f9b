package dto

import "foodgram/internal/api/models"

// CreateTagDTO used for POST /api/tags (admin only)
type CreateTagDTO struct {
	Name  string `json:"name" binding:"required,max=200"`
	Color string `json:"color" binding:"required,hexcolor"`
	Slug  string `json:"slug" binding:"required,max=200"`
}

// TagResponse DTO for responses
type TagResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Slug  string `json:"slug"`
}

func (d CreateTagDTO) ToModel() models.Tag {
	return models.Tag{
		Name:  d.Name,
		Color: d.Color,
		Slug:  d.Slug,
	}
}

func FromTagToResponse(t models.Tag) TagResponse {
	return TagResponse{
		ID:    t.ID,
		Name:  t.Name,
		Color: t.Color,
		Slug:  t.Slug,
	}
}
