package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetIngredients       = "success get ingredients"
	MessageSuccessGetIngredient        = "success get ingredient"
	MessageSuccessCreateIngredient     = "ingredient created successfully"
	MessageSuccessUpdateIngredient     = "ingredient updated successfully"
	MessageSuccessDisableIngredient    = "ingredient disabled successfully"
	MessageSuccessReactivateIngredient = "ingredient reactivated successfully"
	MessageSuccessDeleteIngredient     = "ingredient deleted successfully"

	MessageFailedGetIngredients   = "failed to get ingredients"
	MessageFailedGetIngredient    = "failed to get ingredient"
	MessageFailedCreateIngredient = "failed to create ingredient"
	MessageFailedUpdateIngredient = "failed to update ingredient"
	MessageFailedDeleteIngredient = "failed to delete ingredient"

	ErrIngredientNotFound = errors.New("ingredient not found")
)

type (
	IngredientRequest struct {
		Name     string  `json:"name" validate:"required"`
		Calories float64 `json:"calories" validate:"required,gt=0"`
	}

	IngredientResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Calories  float64   `json:"calories"`
		IsActive  bool      `json:"is_active"`
		CreatedAt time.Time `json:"created_at"`
	}
)
