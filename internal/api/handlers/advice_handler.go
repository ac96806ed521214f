package handlers

import (
	"HealthyBites-Backend/domain"
	"HealthyBites-Backend/internal/api/presenters"
	"HealthyBites-Backend/pkg/advice"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AdviceHandler interface {
		CreateAdvice(c *fiber.Ctx) error
		GetAllAdvices(c *fiber.Ctx) error
		GetAdviceByID(c *fiber.Ctx) error
		UpdateAdvice(c *fiber.Ctx) error
		DeleteAdvice(c *fiber.Ctx) error
	}

	adviceHandler struct {
		adviceService advice.AdviceService
		validator     *validator.Validate
	}
)

func NewAdviceHandler(adviceService advice.AdviceService, validator *validator.Validate) AdviceHandler {
	return &adviceHandler{
		adviceService: adviceService,
		validator:     validator,
	}
}

func (h *adviceHandler) CreateAdvice(c *fiber.Ctx) error {
	req := new(domain.AdviceRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.BadRequestResponse(c, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedCreateAdvice, err)
	}

	res, err := h.adviceService.CreateAdvice(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedCreateAdvice, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateAdvice)
}

func (h *adviceHandler) GetAllAdvices(c *fiber.Ctx) error {
	res, err := h.adviceService.GetAllAdvices(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedGetAdvices, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAdvices)
}

func (h *adviceHandler) GetAdviceByID(c *fiber.Ctx) error {
	res, err := h.adviceService.GetAdviceByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedGetAdvice, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAdvice)
}

func (h *adviceHandler) UpdateAdvice(c *fiber.Ctx) error {
	req := new(domain.AdviceRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.BadRequestResponse(c, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedUpdateAdvice, err)
	}

	res, err := h.adviceService.UpdateAdvice(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedUpdateAdvice, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateAdvice)
}

func (h *adviceHandler) DeleteAdvice(c *fiber.Ctx) error {
	if err := h.adviceService.DeleteAdvice(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedDeleteAdvice, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteAdvice)
}
