package handlers

import (
	"HealthyBites-Backend/domain"
	"HealthyBites-Backend/internal/api/presenters"
	"HealthyBites-Backend/pkg/ingredient"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	IngredientHandler interface {
		CreateIngredient(c *fiber.Ctx) error
		GetAllIngredients(c *fiber.Ctx) error
		GetActiveIngredients(c *fiber.Ctx) error
		GetIngredientByID(c *fiber.Ctx) error
		UpdateIngredient(c *fiber.Ctx) error
		DisableIngredient(c *fiber.Ctx) error
		ReactivateIngredient(c *fiber.Ctx) error
		DeleteIngredient(c *fiber.Ctx) error
	}

	ingredientHandler struct {
		ingredientService ingredient.IngredientService
		validator         *validator.Validate
	}
)

func NewIngredientHandler(ingredientService ingredient.IngredientService, validator *validator.Validate) IngredientHandler {
	return &ingredientHandler{
		ingredientService: ingredientService,
		validator:         validator,
	}
}

func (h *ingredientHandler) CreateIngredient(c *fiber.Ctx) error {
	req := new(domain.IngredientRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.BadRequestResponse(c, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedCreateIngredient, err)
	}

	res, err := h.ingredientService.CreateIngredient(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedCreateIngredient, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateIngredient)
}

func (h *ingredientHandler) GetAllIngredients(c *fiber.Ctx) error {
	res, err := h.ingredientService.GetAllIngredients(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedGetIngredients, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetIngredients)
}

func (h *ingredientHandler) GetActiveIngredients(c *fiber.Ctx) error {
	res, err := h.ingredientService.GetActiveIngredients(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedGetIngredients, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetIngredients)
}

func (h *ingredientHandler) GetIngredientByID(c *fiber.Ctx) error {
	res, err := h.ingredientService.GetIngredientByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedGetIngredient, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetIngredient)
}

func (h *ingredientHandler) UpdateIngredient(c *fiber.Ctx) error {
	req := new(domain.IngredientRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.BadRequestResponse(c, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedUpdateIngredient, err)
	}

	res, err := h.ingredientService.UpdateIngredient(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedUpdateIngredient, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateIngredient)
}

func (h *ingredientHandler) DisableIngredient(c *fiber.Ctx) error {
	if err := h.ingredientService.DisableIngredient(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedUpdateIngredient, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDisableIngredient)
}

func (h *ingredientHandler) ReactivateIngredient(c *fiber.Ctx) error {
	res, err := h.ingredientService.ReactivateIngredient(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedUpdateIngredient, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessReactivateIngredient)
}

func (h *ingredientHandler) DeleteIngredient(c *fiber.Ctx) error {
	if err := h.ingredientService.DeleteIngredient(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedDeleteIngredient, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteIngredient)
}
