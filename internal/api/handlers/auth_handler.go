package handlers

import (
	"HealthyBites-Backend/domain"
	"HealthyBites-Backend/internal/api/presenters"
	"HealthyBites-Backend/pkg/auth"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AuthHandler interface {
		Login(c *fiber.Ctx) error
	}

	authHandler struct {
		authService auth.AuthService
		validator   *validator.Validate
	}
)

func NewAuthHandler(authService auth.AuthService, validator *validator.Validate) AuthHandler {
	return &authHandler{
		authService: authService,
		validator:   validator,
	}
}

func (h *authHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.BadRequestResponse(c, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedLogin, err)
	}

	res, err := h.authService.Login(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedLogin, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLogin)
}
