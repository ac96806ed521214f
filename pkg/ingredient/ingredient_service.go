package ingredient

import (
	"context"
	"errors"

	"HealthyBites-Backend/domain"
	"HealthyBites-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	IngredientService interface {
		CreateIngredient(ctx context.Context, req domain.IngredientRequest) (domain.IngredientResponse, error)
		GetAllIngredients(ctx context.Context) ([]domain.IngredientResponse, error)
		GetActiveIngredients(ctx context.Context) ([]domain.IngredientResponse, error)
		GetIngredientByID(ctx context.Context, id string) (domain.IngredientResponse, error)
		UpdateIngredient(ctx context.Context, id string, req domain.IngredientRequest) (domain.IngredientResponse, error)
		DisableIngredient(ctx context.Context, id string) error
		ReactivateIngredient(ctx context.Context, id string) (domain.IngredientResponse, error)
		DeleteIngredient(ctx context.Context, id string) error
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
	}
)

func NewIngredientService(ingredientRepository IngredientRepository) IngredientService {
	return &ingredientService{ingredientRepository: ingredientRepository}
}

func (s *ingredientService) CreateIngredient(ctx context.Context, req domain.IngredientRequest) (domain.IngredientResponse, error) {
	ingredient := &entities.Ingredient{
		Name:     req.Name,
		Calories: req.Calories,
		IsActive: true,
	}

	if err := s.ingredientRepository.CreateIngredient(ctx, ingredient); err != nil {
		return domain.IngredientResponse{}, err
	}
	return toIngredientResponse(ingredient), nil
}

func (s *ingredientService) GetAllIngredients(ctx context.Context) ([]domain.IngredientResponse, error) {
	return s.listIngredients(ctx, false)
}

func (s *ingredientService) GetActiveIngredients(ctx context.Context) ([]domain.IngredientResponse, error) {
	return s.listIngredients(ctx, true)
}

func (s *ingredientService) listIngredients(ctx context.Context, activeOnly bool) ([]domain.IngredientResponse, error) {
	ingredients, err := s.ingredientRepository.GetIngredients(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	result := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		result = append(result, toIngredientResponse(ingredient))
	}
	return result, nil
}

func (s *ingredientService) GetIngredientByID(ctx context.Context, id string) (domain.IngredientResponse, error) {
	ingredient, err := s.resolveIngredient(ctx, id)
	if err != nil {
		return domain.IngredientResponse{}, err
	}
	return toIngredientResponse(ingredient), nil
}

func (s *ingredientService) UpdateIngredient(ctx context.Context, id string, req domain.IngredientRequest) (domain.IngredientResponse, error) {
	ingredient, err := s.resolveIngredient(ctx, id)
	if err != nil {
		return domain.IngredientResponse{}, err
	}

	ingredient.Name = req.Name
	ingredient.Calories = req.Calories

	if err := s.ingredientRepository.UpdateIngredient(ctx, ingredient); err != nil {
		return domain.IngredientResponse{}, err
	}
	return toIngredientResponse(ingredient), nil
}

// DisableIngredient and ReactivateIngredient toggle the soft-delete flag.
// Everything else on the row stays untouched.
func (s *ingredientService) DisableIngredient(ctx context.Context, id string) error {
	if _, err := s.resolveIngredient(ctx, id); err != nil {
		return err
	}
	return s.ingredientRepository.SetActive(ctx, id, false)
}

func (s *ingredientService) ReactivateIngredient(ctx context.Context, id string) (domain.IngredientResponse, error) {
	ingredient, err := s.resolveIngredient(ctx, id)
	if err != nil {
		return domain.IngredientResponse{}, err
	}

	if err := s.ingredientRepository.SetActive(ctx, id, true); err != nil {
		return domain.IngredientResponse{}, err
	}
	ingredient.IsActive = true
	return toIngredientResponse(ingredient), nil
}

func (s *ingredientService) DeleteIngredient(ctx context.Context, id string) error {
	if _, err := s.resolveIngredient(ctx, id); err != nil {
		return err
	}
	return s.ingredientRepository.DeleteIngredient(ctx, id)
}

func (s *ingredientService) resolveIngredient(ctx context.Context, id string) (*entities.Ingredient, error) {
	ingredientID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, ingredientID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIngredientNotFound
		}
		return nil, err
	}
	return ingredient, nil
}

func toIngredientResponse(ingredient *entities.Ingredient) domain.IngredientResponse {
	return domain.IngredientResponse{
		ID:        ingredient.ID.String(),
		Name:      ingredient.Name,
		Calories:  ingredient.Calories,
		IsActive:  ingredient.IsActive,
		CreatedAt: ingredient.CreatedAt,
	}
}
