package dto

import "foodgram/internal/api/models"

// CreateIngredientDTO used for POST /api/ingredients (admin only)
type CreateIngredientDTO struct {
	Name            string `json:"name" binding:"required,max=200"`
	MeasurementUnit string `json:"measurement_unit" binding:"required,max=200"`
}

// IngredientResponse DTO for responses
type IngredientResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

func (d CreateIngredientDTO) ToModel() models.Ingredient {
	return models.Ingredient{
		Name:            d.Name,
		MeasurementUnit: d.MeasurementUnit,
	}
}

func FromIngredientToResponse(i models.Ingredient) IngredientResponse {
	return IngredientResponse{
		ID:              i.ID,
		Name:            i.Name,
		MeasurementUnit: i.MeasurementUnit,
	}
}
