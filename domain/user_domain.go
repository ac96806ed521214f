package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateUser   = "user created successfully"
	MessageSuccessGetUsers     = "success get users"
	MessageSuccessGetUser      = "success get user"
	MessageSuccessUpdateUser   = "user updated successfully"
	MessageSuccessDeleteUser   = "user deleted successfully"
	MessageSuccessUploadAvatar = "avatar uploaded successfully"

	MessageFailedCreateUser   = "failed to create user"
	MessageFailedGetUsers     = "failed to get users"
	MessageFailedGetUser      = "failed to get user"
	MessageFailedUpdateUser   = "failed to update user"
	MessageFailedDeleteUser   = "failed to delete user"
	MessageFailedUploadAvatar = "failed to upload avatar"

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrRoleNotFound       = errors.New("role not found")
)

type (
	InfoUserRequest struct {
		Height        *float64 `json:"height,omitempty" validate:"omitempty,gt=0"`
		Weight        *float64 `json:"weight,omitempty" validate:"omitempty,gt=0"`
		Sex           string   `json:"sex,omitempty"`
		Age           *int     `json:"age,omitempty" validate:"omitempty,gt=0"`
		ActivityLevel string   `json:"activity_level,omitempty"`
	}

	InfoUserResponse struct {
		ID            string  `json:"id"`
		Height        float64 `json:"height"`
		Weight        float64 `json:"weight"`
		Sex           string  `json:"sex,omitempty"`
		Age           int     `json:"age"`
		ActivityLevel string  `json:"activity_level,omitempty"`
	}

	CreateUserRequest struct {
		Name     string           `json:"name" validate:"required"`
		Email    string           `json:"email" validate:"required,email"`
		Password string           `json:"password" validate:"required,min=8"`
		InfoUser *InfoUserRequest `json:"info_user,omitempty"`
	}

	// UpdateUserRequest carries a partial update: nil/empty fields are left
	// untouched, the profile sub-object is merged field by field.
	UpdateUserRequest struct {
		Name     string           `json:"name,omitempty"`
		Email    string           `json:"email,omitempty" validate:"omitempty,email"`
		Password string           `json:"password,omitempty" validate:"omitempty,min=8"`
		InfoUser *InfoUserRequest `json:"info_user,omitempty"`
	}

	UserResponse struct {
		ID               string            `json:"id"`
		Name             string            `json:"name"`
		Email            string            `json:"email"`
		Role             string            `json:"role"`
		IsEnabled        bool              `json:"is_enabled"`
		IsPremium        bool              `json:"is_premium"`
		AvatarURL        string            `json:"avatar_url,omitempty"`
		RegistrationDate time.Time         `json:"registration_date"`
		InfoUser         *InfoUserResponse `json:"info_user,omitempty"`
	}
)
