package ingredient

import (
	"context"

	"HealthyBites-Backend/entities"

	"gorm.io/gorm"
)

type (
	IngredientRepository interface {
		CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error
		GetIngredientByID(ctx context.Context, id string) (*entities.Ingredient, error)
		GetIngredients(ctx context.Context, activeOnly bool) ([]*entities.Ingredient, error)
		UpdateIngredient(ctx context.Context, ingredient *entities.Ingredient) error
		SetActive(ctx context.Context, id string, active bool) error
		DeleteIngredient(ctx context.Context, id string) error
	}

	ingredientRepository struct {
		db *gorm.DB
	}
)

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Create(ingredient).Error
}

func (r *ingredientRepository) GetIngredientByID(ctx context.Context, id string) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *ingredientRepository) GetIngredients(ctx context.Context, activeOnly bool) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient

	query := r.db.WithContext(ctx).Order("created_at asc")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *ingredientRepository) UpdateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Save(ingredient).Error
}

func (r *ingredientRepository) SetActive(ctx context.Context, id string, active bool) error {
	return r.db.WithContext(ctx).Model(&entities.Ingredient{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

// DeleteIngredient hard-deletes the ingredient. Its association rows go first
// in the same transaction to satisfy foreign key constraints.
func (r *ingredientRepository) DeleteIngredient(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ingredient_id = ?", id).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Ingredient{}).Error
	})
}
