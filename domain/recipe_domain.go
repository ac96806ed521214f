package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes           = "success get recipes"
	MessageSuccessGetRecipe            = "success get recipe"
	MessageSuccessCreateRecipe         = "recipe created successfully"
	MessageSuccessUpdateRecipe         = "recipe updated successfully"
	MessageSuccessDeleteRecipe         = "recipe deleted successfully"
	MessageSuccessAddIngredient        = "ingredient added to recipe successfully"
	MessageSuccessRemoveIngredient     = "ingredient removed from recipe successfully"
	MessageSuccessGetRecipeIngredients = "success get recipe ingredients"

	MessageFailedGetRecipes       = "failed to get recipes"
	MessageFailedGetRecipe        = "failed to get recipe"
	MessageFailedCreateRecipe     = "failed to create recipe"
	MessageFailedUpdateRecipe     = "failed to update recipe"
	MessageFailedDeleteRecipe     = "failed to delete recipe"
	MessageFailedAddIngredient    = "failed to add ingredient to recipe"
	MessageFailedRemoveIngredient = "failed to remove ingredient from recipe"

	ErrRecipeNotFound      = errors.New("recipe not found")
	ErrRecipeNameConflict  = errors.New("recipe name already exists")
	ErrIngredientNotLinked = errors.New("ingredient not linked to recipe")
)

type (
	RecipeIngredientRequest struct {
		IngredientID string  `json:"ingredient_id" validate:"required,uuid"`
		Quantity     float64 `json:"quantity" validate:"required,gt=0"`
	}

	CreateRecipeRequest struct {
		Name        string                    `json:"name" validate:"required"`
		Preparation string                    `json:"preparation" validate:"required"`
		UserID      string                    `json:"user_id" validate:"required,uuid"`
		Ingredients []RecipeIngredientRequest `json:"ingredients,omitempty" validate:"omitempty,dive"`
	}

	UpdateRecipeRequest struct {
		Name        string                    `json:"name" validate:"required"`
		Preparation string                    `json:"preparation" validate:"required"`
		Ingredients []RecipeIngredientRequest `json:"ingredients,omitempty" validate:"omitempty,dive"`
	}

	AddIngredientRequest struct {
		IngredientID string  `json:"ingredient_id" validate:"required,uuid"`
		Quantity     float64 `json:"quantity" validate:"required,gt=0"`
	}

	// RecipeIngredientLine is one resolved association row with the derived
	// calorie total (quantity x ingredient calories-per-unit).
	RecipeIngredientLine struct {
		IngredientID  string    `json:"ingredient_id"`
		Name          string    `json:"name"`
		Quantity      float64   `json:"quantity"`
		TotalCalories float64   `json:"total_calories"`
		IsActive      bool      `json:"is_active"`
		CreatedAt     time.Time `json:"created_at"`
	}

	RecipeResponse struct {
		ID          string                 `json:"id"`
		Name        string                 `json:"name"`
		Preparation string                 `json:"preparation"`
		UserID      string                 `json:"user_id"`
		Ingredients []RecipeIngredientLine `json:"ingredients"`
	}
)
