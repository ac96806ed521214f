package handlers

import (
	"HealthyBites-Backend/domain"
	"HealthyBites-Backend/internal/api/presenters"
	"HealthyBites-Backend/pkg/midtrans"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MidtransHandler interface {
		CreateTransaction(c *fiber.Ctx) error
		MidtransWebhookHandler(c *fiber.Ctx) error
	}

	midtransHandler struct {
		midtransService midtrans.MidtransService
		validator       *validator.Validate
	}
)

func NewMidtransHandler(midtransService midtrans.MidtransService, validator *validator.Validate) MidtransHandler {
	return &midtransHandler{
		midtransService: midtransService,
		validator:       validator,
	}
}

func (h *midtransHandler) CreateTransaction(c *fiber.Ctx) error {
	email, ok := c.Locals("user_email").(string)
	if !ok || email == "" {
		return presenters.ErrorResponse(c, domain.MessageFailedGetToken, domain.ErrTokenNotFound)
	}

	res, err := h.midtransService.CreateSubscription(c.Context(), email)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedCreateTransaction, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateTransaction)
}

func (h *midtransHandler) MidtransWebhookHandler(c *fiber.Ctx) error {
	req := new(domain.MidtransNotificationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.BadRequestResponse(c, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedProcessWebhook, err)
	}

	if err := h.midtransService.ProcessNotification(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedProcessWebhook, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessProcessWebhook)
}
