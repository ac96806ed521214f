package recipe

import (
	"context"
	"errors"

	"HealthyBites-Backend/domain"
	"HealthyBites-Backend/entities"
	"HealthyBites-Backend/pkg/ingredient"
	"HealthyBites-Backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeResponse, error)
		GetRecipesByUser(ctx context.Context, userID string) ([]domain.RecipeResponse, error)
		GetRecipeByID(ctx context.Context, id string) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, id string) error

		GetIngredientsForRecipe(ctx context.Context, recipeID string) ([]domain.RecipeIngredientLine, error)
		AddIngredientToRecipe(ctx context.Context, recipeID string, req domain.AddIngredientRequest) error
		RemoveIngredientFromRecipe(ctx context.Context, recipeID, ingredientID string) error
	}

	recipeService struct {
		recipeRepository     RecipeRepository
		ingredientRepository ingredient.IngredientRepository
		userRepository       user.UserRepository
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	ingredientRepository ingredient.IngredientRepository,
	userRepository user.UserRepository,
) RecipeService {
	return &recipeService{
		recipeRepository:     recipeRepository,
		ingredientRepository: ingredientRepository,
		userRepository:       userRepository,
	}
}

// CreateRecipe rejects duplicate names with a conflict error, resolves the
// owner and every referenced ingredient, and persists the recipe together
// with its association rows in one transaction.
func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeResponse, error) {
	exists, err := s.recipeRepository.ExistsByName(ctx, req.Name)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	if exists {
		return domain.RecipeResponse{}, domain.ErrRecipeNameConflict
	}

	owner, err := s.userRepository.GetUserByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrUserNotFound
		}
		return domain.RecipeResponse{}, err
	}

	rows, err := s.resolveIngredientRows(ctx, req.Ingredients)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe := &entities.Recipe{
		Name:        req.Name,
		Preparation: req.Preparation,
		UserID:      owner.ID,
	}

	if err := s.recipeRepository.CreateRecipeWithIngredients(ctx, recipe, rows); err != nil {
		return domain.RecipeResponse{}, err
	}

	return s.toRecipeResponse(ctx, recipe)
}

func (s *recipeService) GetRecipesByUser(ctx context.Context, userID string) ([]domain.RecipeResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, domain.ErrParseUUID
	}
	if _, err := s.userRepository.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	recipes, err := s.recipeRepository.GetRecipesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		response, err := s.toRecipeResponse(ctx, recipe)
		if err != nil {
			return nil, err
		}
		result = append(result, response)
	}
	return result, nil
}

func (s *recipeService) GetRecipeByID(ctx context.Context, id string) (domain.RecipeResponse, error) {
	recipe, err := s.resolveRecipe(ctx, id)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	return s.toRecipeResponse(ctx, recipe)
}

// UpdateRecipe overwrites name and preparation and fully replaces the
// association set with the one from the request. Renaming onto another
// recipe's name is the same conflict as creating it.
func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest) (domain.RecipeResponse, error) {
	recipe, err := s.resolveRecipe(ctx, id)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	if req.Name != recipe.Name {
		exists, err := s.recipeRepository.ExistsByName(ctx, req.Name)
		if err != nil {
			return domain.RecipeResponse{}, err
		}
		if exists {
			return domain.RecipeResponse{}, domain.ErrRecipeNameConflict
		}
	}

	rows, err := s.resolveIngredientRows(ctx, req.Ingredients)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe.Name = req.Name
	recipe.Preparation = req.Preparation

	if err := s.recipeRepository.ReplaceIngredients(ctx, recipe, rows); err != nil {
		return domain.RecipeResponse{}, err
	}

	return s.toRecipeResponse(ctx, recipe)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string) error {
	if _, err := s.resolveRecipe(ctx, id); err != nil {
		return err
	}
	return s.recipeRepository.DeleteRecipe(ctx, id)
}

func (s *recipeService) GetIngredientsForRecipe(ctx context.Context, recipeID string) ([]domain.RecipeIngredientLine, error) {
	if _, err := s.resolveRecipe(ctx, recipeID); err != nil {
		return nil, err
	}

	rows, err := s.recipeRepository.GetIngredientRows(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	return buildIngredientLines(rows), nil
}

func (s *recipeService) AddIngredientToRecipe(ctx context.Context, recipeID string, req domain.AddIngredientRequest) error {
	recipe, err := s.resolveRecipe(ctx, recipeID)
	if err != nil {
		return err
	}

	linked, err := s.resolveIngredient(ctx, req.IngredientID)
	if err != nil {
		return err
	}

	row := &entities.RecipeIngredient{
		RecipeID:     recipe.ID,
		IngredientID: linked.ID,
		Quantity:     req.Quantity,
	}
	return s.recipeRepository.AddIngredientRow(ctx, row)
}

func (s *recipeService) RemoveIngredientFromRecipe(ctx context.Context, recipeID, ingredientID string) error {
	if _, err := s.resolveRecipe(ctx, recipeID); err != nil {
		return err
	}
	if _, err := s.resolveIngredient(ctx, ingredientID); err != nil {
		return err
	}

	affected, err := s.recipeRepository.DeleteIngredientRow(ctx, recipeID, ingredientID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrIngredientNotLinked
	}
	return nil
}

// helpers

func (s *recipeService) resolveRecipe(ctx context.Context, id string) (*entities.Recipe, error) {
	recipeID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}

func (s *recipeService) resolveIngredient(ctx context.Context, id string) (*entities.Ingredient, error) {
	ingredientID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	linked, err := s.ingredientRepository.GetIngredientByID(ctx, ingredientID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIngredientNotFound
		}
		return nil, err
	}
	return linked, nil
}

// resolveIngredientRows maps ingredient references to association rows,
// carrying the resolved ingredient so calorie totals can be computed without
// another round trip.
func (s *recipeService) resolveIngredientRows(ctx context.Context, refs []domain.RecipeIngredientRequest) ([]entities.RecipeIngredient, error) {
	rows := make([]entities.RecipeIngredient, 0, len(refs))
	for _, ref := range refs {
		linked, err := s.resolveIngredient(ctx, ref.IngredientID)
		if err != nil {
			return nil, err
		}

		rows = append(rows, entities.RecipeIngredient{
			IngredientID: linked.ID,
			Quantity:     ref.Quantity,
			Ingredient:   linked,
		})
	}
	return rows, nil
}

func (s *recipeService) toRecipeResponse(ctx context.Context, recipe *entities.Recipe) (domain.RecipeResponse, error) {
	rows, err := s.recipeRepository.GetIngredientRows(ctx, recipe.ID.String())
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	return domain.RecipeResponse{
		ID:          recipe.ID.String(),
		Name:        recipe.Name,
		Preparation: recipe.Preparation,
		UserID:      recipe.UserID.String(),
		Ingredients: buildIngredientLines(rows),
	}, nil
}

// buildIngredientLines derives total calories per line as
// quantity x ingredient calories-per-unit.
func buildIngredientLines(rows []entities.RecipeIngredient) []domain.RecipeIngredientLine {
	lines := make([]domain.RecipeIngredientLine, 0, len(rows))
	for _, row := range rows {
		line := domain.RecipeIngredientLine{
			IngredientID: row.IngredientID.String(),
			Quantity:     row.Quantity,
		}
		if row.Ingredient != nil {
			line.Name = row.Ingredient.Name
			line.TotalCalories = row.Quantity * row.Ingredient.Calories
			line.IsActive = row.Ingredient.IsActive
			line.CreatedAt = row.Ingredient.CreatedAt
		}
		lines = append(lines, line)
	}
	return lines
}
