package domain

import (
	"errors"
)

var (
	MessageSuccessLogin = "login successful"
	MessageFailedLogin  = "login failed"

	ErrCredentialsInvalid = errors.New("invalid email or password")
)

type (
	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
)
