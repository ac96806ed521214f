package handlers

import (
	"HealthyBites-Backend/domain"
	"HealthyBites-Backend/internal/api/presenters"
	"HealthyBites-Backend/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		CreateRecipe(c *fiber.Ctx) error
		GetRecipesByUser(c *fiber.Ctx) error
		GetRecipeByID(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		GetIngredientsForRecipe(c *fiber.Ctx) error
		AddIngredientToRecipe(c *fiber.Ctx) error
		RemoveIngredientFromRecipe(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	req := new(domain.CreateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.BadRequestResponse(c, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedCreateRecipe, err)
	}

	res, err := h.recipeService.CreateRecipe(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedCreateRecipe, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRecipe)
}

func (h *recipeHandler) GetRecipesByUser(c *fiber.Ctx) error {
	res, err := h.recipeService.GetRecipesByUser(c.Context(), c.Params("userId"))
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedGetRecipes, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecipeByID(c *fiber.Ctx) error {
	res, err := h.recipeService.GetRecipeByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedGetRecipe, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipe)
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	req := new(domain.UpdateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.BadRequestResponse(c, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedUpdateRecipe, err)
	}

	res, err := h.recipeService.UpdateRecipe(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedUpdateRecipe, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateRecipe)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	if err := h.recipeService.DeleteRecipe(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedDeleteRecipe, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRecipe)
}

func (h *recipeHandler) GetIngredientsForRecipe(c *fiber.Ctx) error {
	res, err := h.recipeService.GetIngredientsForRecipe(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedGetRecipe, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeIngredients)
}

func (h *recipeHandler) AddIngredientToRecipe(c *fiber.Ctx) error {
	req := new(domain.AddIngredientRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.BadRequestResponse(c, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedAddIngredient, err)
	}

	if err := h.recipeService.AddIngredientToRecipe(c.Context(), c.Params("id"), *req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedAddIngredient, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessAddIngredient)
}

func (h *recipeHandler) RemoveIngredientFromRecipe(c *fiber.Ctx) error {
	if err := h.recipeService.RemoveIngredientFromRecipe(c.Context(), c.Params("id"), c.Params("ingredientId")); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedRemoveIngredient, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveIngredient)
}
