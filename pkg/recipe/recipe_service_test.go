package recipe

import (
	"context"
	"testing"

	"HealthyBites-Backend/domain"
	"HealthyBites-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRecipeRepository struct {
	recipes map[string]*entities.Recipe
	rows    map[string][]entities.RecipeIngredient
}

func newFakeRecipeRepository() *fakeRecipeRepository {
	return &fakeRecipeRepository{
		recipes: make(map[string]*entities.Recipe),
		rows:    make(map[string][]entities.RecipeIngredient),
	}
}

func (f *fakeRecipeRepository) CreateRecipeWithIngredients(_ context.Context, recipe *entities.Recipe, rows []entities.RecipeIngredient) error {
	if recipe.ID == uuid.Nil {
		recipe.ID = uuid.New()
	}
	f.recipes[recipe.ID.String()] = recipe
	for i := range rows {
		rows[i].RecipeID = recipe.ID
	}
	f.rows[recipe.ID.String()] = rows
	return nil
}

func (f *fakeRecipeRepository) GetRecipeByID(_ context.Context, id string) (*entities.Recipe, error) {
	recipe, ok := f.recipes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return recipe, nil
}

func (f *fakeRecipeRepository) GetRecipesByUser(_ context.Context, userID string) ([]*entities.Recipe, error) {
	var result []*entities.Recipe
	for _, recipe := range f.recipes {
		if recipe.UserID.String() == userID {
			result = append(result, recipe)
		}
	}
	return result, nil
}

func (f *fakeRecipeRepository) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, recipe := range f.recipes {
		if recipe.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRecipeRepository) ReplaceIngredients(_ context.Context, recipe *entities.Recipe, rows []entities.RecipeIngredient) error {
	f.recipes[recipe.ID.String()] = recipe
	for i := range rows {
		rows[i].RecipeID = recipe.ID
	}
	f.rows[recipe.ID.String()] = rows
	return nil
}

func (f *fakeRecipeRepository) DeleteRecipe(_ context.Context, id string) error {
	delete(f.recipes, id)
	delete(f.rows, id)
	return nil
}

func (f *fakeRecipeRepository) GetIngredientRows(_ context.Context, recipeID string) ([]entities.RecipeIngredient, error) {
	return f.rows[recipeID], nil
}

func (f *fakeRecipeRepository) AddIngredientRow(_ context.Context, row *entities.RecipeIngredient) error {
	id := row.RecipeID.String()
	f.rows[id] = append(f.rows[id], *row)
	return nil
}

func (f *fakeRecipeRepository) DeleteIngredientRow(_ context.Context, recipeID, ingredientID string) (int64, error) {
	kept := f.rows[recipeID][:0]
	var affected int64
	for _, row := range f.rows[recipeID] {
		if row.IngredientID.String() == ingredientID {
			affected++
			continue
		}
		kept = append(kept, row)
	}
	f.rows[recipeID] = kept
	return affected, nil
}

type fakeIngredientRepository struct {
	ingredients map[string]*entities.Ingredient
}

func (f *fakeIngredientRepository) CreateIngredient(_ context.Context, ingredient *entities.Ingredient) error {
	if ingredient.ID == uuid.Nil {
		ingredient.ID = uuid.New()
	}
	f.ingredients[ingredient.ID.String()] = ingredient
	return nil
}

func (f *fakeIngredientRepository) GetIngredientByID(_ context.Context, id string) (*entities.Ingredient, error) {
	ingredient, ok := f.ingredients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return ingredient, nil
}

func (f *fakeIngredientRepository) GetIngredients(_ context.Context, activeOnly bool) ([]*entities.Ingredient, error) {
	var result []*entities.Ingredient
	for _, ingredient := range f.ingredients {
		if activeOnly && !ingredient.IsActive {
			continue
		}
		result = append(result, ingredient)
	}
	return result, nil
}

func (f *fakeIngredientRepository) UpdateIngredient(_ context.Context, ingredient *entities.Ingredient) error {
	f.ingredients[ingredient.ID.String()] = ingredient
	return nil
}

func (f *fakeIngredientRepository) SetActive(_ context.Context, id string, active bool) error {
	f.ingredients[id].IsActive = active
	return nil
}

func (f *fakeIngredientRepository) DeleteIngredient(_ context.Context, id string) error {
	delete(f.ingredients, id)
	return nil
}

type fakeUserRepository struct {
	users map[string]*entities.User
}

func (f *fakeUserRepository) CreateUserWithProfile(_ context.Context, user *entities.User, _ *entities.InfoUser) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users[user.ID.String()] = user
	return nil
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetAllUsers(_ context.Context) ([]*entities.User, error) {
	var result []*entities.User
	for _, user := range f.users {
		result = append(result, user)
	}
	return result, nil
}

func (f *fakeUserRepository) UpdateUser(_ context.Context, user *entities.User) error {
	f.users[user.ID.String()] = user
	return nil
}

func (f *fakeUserRepository) DeleteUser(_ context.Context, id string) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, err := f.GetUserByEmail(context.Background(), email)
	return err == nil, nil
}

func (f *fakeUserRepository) GetInfoUserByUserID(_ context.Context, _ string) (*entities.InfoUser, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) SaveInfoUser(_ context.Context, _ *entities.InfoUser) error {
	return nil
}

func (f *fakeUserRepository) GetRoleByName(_ context.Context, _ string) (*entities.Role, error) {
	return nil, gorm.ErrRecordNotFound
}

func newRecipeFixture() (RecipeService, *fakeRecipeRepository, *fakeIngredientRepository, *entities.User) {
	recipeRepo := newFakeRecipeRepository()
	ingredientRepo := &fakeIngredientRepository{ingredients: make(map[string]*entities.Ingredient)}
	userRepo := &fakeUserRepository{users: make(map[string]*entities.User)}

	owner := &entities.User{ID: uuid.New(), Name: "cook", Email: "cook@example.com"}
	userRepo.users[owner.ID.String()] = owner

	service := NewRecipeService(recipeRepo, ingredientRepo, userRepo)
	return service, recipeRepo, ingredientRepo, owner
}

func addIngredient(repo *fakeIngredientRepository, name string, calories float64) *entities.Ingredient {
	ingredient := &entities.Ingredient{ID: uuid.New(), Name: name, Calories: calories, IsActive: true}
	repo.ingredients[ingredient.ID.String()] = ingredient
	return ingredient
}

func TestCreateRecipe_ComputesCalorieTotals(t *testing.T) {
	service, _, ingredientRepo, owner := newRecipeFixture()
	rice := addIngredient(ingredientRepo, "rice", 50)

	response, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Name:        "fried rice",
		Preparation: "fry it",
		UserID:      owner.ID.String(),
		Ingredients: []domain.RecipeIngredientRequest{
			{IngredientID: rice.ID.String(), Quantity: 2},
		},
	})

	require.NoError(t, err)
	require.Len(t, response.Ingredients, 1)
	assert.Equal(t, "rice", response.Ingredients[0].Name)
	assert.Equal(t, 2.0, response.Ingredients[0].Quantity)
	assert.Equal(t, 100.0, response.Ingredients[0].TotalCalories)
}

func TestCreateRecipe_DuplicateNameIsRejected(t *testing.T) {
	service, recipeRepo, ingredientRepo, owner := newRecipeFixture()
	rice := addIngredient(ingredientRepo, "rice", 50)

	request := domain.CreateRecipeRequest{
		Name:        "fried rice",
		Preparation: "fry it",
		UserID:      owner.ID.String(),
		Ingredients: []domain.RecipeIngredientRequest{
			{IngredientID: rice.ID.String(), Quantity: 1},
		},
	}
	_, err := service.CreateRecipe(context.Background(), request)
	require.NoError(t, err)

	_, err = service.CreateRecipe(context.Background(), request)
	assert.ErrorIs(t, err, domain.ErrRecipeNameConflict)
	assert.Len(t, recipeRepo.recipes, 1)
}

func TestCreateRecipe_UnknownIngredientPersistsNothing(t *testing.T) {
	service, recipeRepo, _, owner := newRecipeFixture()

	_, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Name:        "mystery stew",
		Preparation: "stir",
		UserID:      owner.ID.String(),
		Ingredients: []domain.RecipeIngredientRequest{
			{IngredientID: uuid.NewString(), Quantity: 1},
		},
	})

	assert.ErrorIs(t, err, domain.ErrIngredientNotFound)
	assert.Empty(t, recipeRepo.recipes)
	assert.Empty(t, recipeRepo.rows)
}

func TestCreateRecipe_MalformedIngredientID(t *testing.T) {
	service, _, _, owner := newRecipeFixture()

	_, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Name:        "oops",
		Preparation: "none",
		UserID:      owner.ID.String(),
		Ingredients: []domain.RecipeIngredientRequest{
			{IngredientID: "not-a-uuid", Quantity: 1},
		},
	})

	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestUpdateRecipe_ReplacesIngredientSet(t *testing.T) {
	service, recipeRepo, ingredientRepo, owner := newRecipeFixture()
	rice := addIngredient(ingredientRepo, "rice", 50)
	egg := addIngredient(ingredientRepo, "egg", 70)
	oil := addIngredient(ingredientRepo, "oil", 120)

	created, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Name:        "fried rice",
		Preparation: "fry it",
		UserID:      owner.ID.String(),
		Ingredients: []domain.RecipeIngredientRequest{
			{IngredientID: rice.ID.String(), Quantity: 2},
			{IngredientID: egg.ID.String(), Quantity: 1},
		},
	})
	require.NoError(t, err)

	updated, err := service.UpdateRecipe(context.Background(), created.ID, domain.UpdateRecipeRequest{
		Name:        "oily rice",
		Preparation: "fry harder",
		Ingredients: []domain.RecipeIngredientRequest{
			{IngredientID: oil.ID.String(), Quantity: 0.5},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "oily rice", updated.Name)
	require.Len(t, updated.Ingredients, 1)
	assert.Equal(t, oil.ID.String(), updated.Ingredients[0].IngredientID)
	assert.Equal(t, 60.0, updated.Ingredients[0].TotalCalories)
	assert.Len(t, recipeRepo.rows[created.ID], 1)
}

func TestRecipeLookups_MalformedID(t *testing.T) {
	service, _, _, _ := newRecipeFixture()

	_, err := service.GetRecipeByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrParseUUID)

	err = service.DeleteRecipe(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrParseUUID)

	_, err = service.GetRecipesByUser(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestUpdateRecipe_RenameOntoExistingName(t *testing.T) {
	service, _, ingredientRepo, owner := newRecipeFixture()
	rice := addIngredient(ingredientRepo, "rice", 50)

	_, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Name:        "fried rice",
		Preparation: "fry it",
		UserID:      owner.ID.String(),
		Ingredients: []domain.RecipeIngredientRequest{
			{IngredientID: rice.ID.String(), Quantity: 1},
		},
	})
	require.NoError(t, err)

	created, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Name:        "plain rice",
		Preparation: "boil",
		UserID:      owner.ID.String(),
		Ingredients: []domain.RecipeIngredientRequest{
			{IngredientID: rice.ID.String(), Quantity: 1},
		},
	})
	require.NoError(t, err)

	_, err = service.UpdateRecipe(context.Background(), created.ID, domain.UpdateRecipeRequest{
		Name:        "fried rice",
		Preparation: "boil",
	})
	assert.ErrorIs(t, err, domain.ErrRecipeNameConflict)

	// keeping its own name is not a conflict
	_, err = service.UpdateRecipe(context.Background(), created.ID, domain.UpdateRecipeRequest{
		Name:        "plain rice",
		Preparation: "boil longer",
	})
	assert.NoError(t, err)
}

func TestDeleteRecipe_RemovesAssociationRows(t *testing.T) {
	service, recipeRepo, ingredientRepo, owner := newRecipeFixture()
	rice := addIngredient(ingredientRepo, "rice", 50)

	created, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Name:        "fried rice",
		Preparation: "fry it",
		UserID:      owner.ID.String(),
		Ingredients: []domain.RecipeIngredientRequest{
			{IngredientID: rice.ID.String(), Quantity: 2},
		},
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteRecipe(context.Background(), created.ID))
	assert.Empty(t, recipeRepo.recipes)
	assert.Empty(t, recipeRepo.rows[created.ID])
}

func TestRemoveIngredientFromRecipe_NotLinked(t *testing.T) {
	service, _, ingredientRepo, owner := newRecipeFixture()
	rice := addIngredient(ingredientRepo, "rice", 50)
	egg := addIngredient(ingredientRepo, "egg", 70)

	created, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Name:        "plain rice",
		Preparation: "boil",
		UserID:      owner.ID.String(),
		Ingredients: []domain.RecipeIngredientRequest{
			{IngredientID: rice.ID.String(), Quantity: 1},
		},
	})
	require.NoError(t, err)

	err = service.RemoveIngredientFromRecipe(context.Background(), created.ID, egg.ID.String())
	assert.ErrorIs(t, err, domain.ErrIngredientNotLinked)
}

func TestGetRecipesByUser_UnknownUser(t *testing.T) {
	service, _, _, _ := newRecipeFixture()

	_, err := service.GetRecipesByUser(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestAddIngredientToRecipe(t *testing.T) {
	service, recipeRepo, ingredientRepo, owner := newRecipeFixture()
	rice := addIngredient(ingredientRepo, "rice", 50)
	egg := addIngredient(ingredientRepo, "egg", 70)

	created, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Name:        "plain rice",
		Preparation: "boil",
		UserID:      owner.ID.String(),
		Ingredients: []domain.RecipeIngredientRequest{
			{IngredientID: rice.ID.String(), Quantity: 1},
		},
	})
	require.NoError(t, err)

	err = service.AddIngredientToRecipe(context.Background(), created.ID, domain.AddIngredientRequest{
		IngredientID: egg.ID.String(),
		Quantity:     3,
	})
	require.NoError(t, err)
	assert.Len(t, recipeRepo.rows[created.ID], 2)
}
