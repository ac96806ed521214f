package recipe

import (
	"context"

	"HealthyBites-Backend/entities"

	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipeWithIngredients(ctx context.Context, recipe *entities.Recipe, rows []entities.RecipeIngredient) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipesByUser(ctx context.Context, userID string) ([]*entities.Recipe, error)
		ExistsByName(ctx context.Context, name string) (bool, error)
		ReplaceIngredients(ctx context.Context, recipe *entities.Recipe, rows []entities.RecipeIngredient) error
		DeleteRecipe(ctx context.Context, id string) error

		GetIngredientRows(ctx context.Context, recipeID string) ([]entities.RecipeIngredient, error)
		AddIngredientRow(ctx context.Context, row *entities.RecipeIngredient) error
		DeleteIngredientRow(ctx context.Context, recipeID, ingredientID string) (int64, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// CreateRecipeWithIngredients persists the recipe and its association rows in
// one transaction so a failing row insert never leaves a partial recipe.
func (r *recipeRepository) CreateRecipeWithIngredients(ctx context.Context, recipe *entities.Recipe, rows []entities.RecipeIngredient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		for i := range rows {
			rows[i].RecipeID = recipe.ID
			if err := tx.Create(&rows[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipesByUser(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Recipe{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ReplaceIngredients saves the recipe fields, drops every existing association
// row and re-inserts the given set, all inside one transaction. Full-replace
// semantics, not an incremental diff.
func (r *recipeRepository) ReplaceIngredients(ctx context.Context, recipe *entities.Recipe, rows []entities.RecipeIngredient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(recipe).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		for i := range rows {
			rows[i].RecipeID = recipe.ID
			if err := tx.Create(&rows[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteRecipe removes the association rows before the recipe row to satisfy
// the foreign key constraints.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Recipe{}).Error
	})
}

func (r *recipeRepository) GetIngredientRows(ctx context.Context, recipeID string) ([]entities.RecipeIngredient, error) {
	var rows []entities.RecipeIngredient
	if err := r.db.WithContext(ctx).
		Preload("Ingredient").
		Where("recipe_id = ?", recipeID).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *recipeRepository) AddIngredientRow(ctx context.Context, row *entities.RecipeIngredient) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *recipeRepository) DeleteIngredientRow(ctx context.Context, recipeID, ingredientID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("recipe_id = ? AND ingredient_id = ?", recipeID, ingredientID).
		Delete(&entities.RecipeIngredient{})
	return result.RowsAffected, result.Error
}
