package handlers

import (
	"HealthyBites-Backend/domain"
	"HealthyBites-Backend/internal/api/presenters"
	"HealthyBites-Backend/pkg/user"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UserHandler interface {
		CreateUser(c *fiber.Ctx) error
		GetAllUsers(c *fiber.Ctx) error
		GetUserByID(c *fiber.Ctx) error
		GetUserByEmail(c *fiber.Ctx) error
		UpdateUser(c *fiber.Ctx) error
		DeleteUser(c *fiber.Ctx) error
		UploadAvatar(c *fiber.Ctx) error
	}

	userHandler struct {
		userService user.UserService
		validator   *validator.Validate
	}
)

func NewUserHandler(userService user.UserService, validator *validator.Validate) UserHandler {
	return &userHandler{
		userService: userService,
		validator:   validator,
	}
}

func (h *userHandler) CreateUser(c *fiber.Ctx) error {
	req := new(domain.CreateUserRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.BadRequestResponse(c, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedCreateUser, err)
	}

	res, err := h.userService.CreateUser(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedCreateUser, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateUser)
}

func (h *userHandler) GetAllUsers(c *fiber.Ctx) error {
	res, err := h.userService.GetAllUsers(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedGetUsers, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUsers)
}

func (h *userHandler) GetUserByID(c *fiber.Ctx) error {
	res, err := h.userService.GetUserByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedGetUser, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUser)
}

func (h *userHandler) GetUserByEmail(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return presenters.BadRequestResponse(c, domain.MessageFailedGetUser, domain.ErrUserNotFound)
	}

	res, err := h.userService.GetUserByEmail(c.Context(), email)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedGetUser, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUser)
}

func (h *userHandler) UpdateUser(c *fiber.Ctx) error {
	req := new(domain.UpdateUserRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.BadRequestResponse(c, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedUpdateUser, err)
	}

	res, err := h.userService.UpdateUser(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedUpdateUser, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateUser)
}

func (h *userHandler) DeleteUser(c *fiber.Ctx) error {
	if err := h.userService.DeleteUser(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedDeleteUser, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteUser)
}

func (h *userHandler) UploadAvatar(c *fiber.Ctx) error {
	file, err := c.FormFile("avatar")
	if err != nil {
		return presenters.BadRequestResponse(c, domain.MessageFailedUploadAvatar, err)
	}

	res, err := h.userService.UploadAvatar(c.Context(), c.Params("id"), file)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedUploadAvatar, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadAvatar)
}
