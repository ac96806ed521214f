package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetAdvices   = "success get advices"
	MessageSuccessGetAdvice    = "success get advice"
	MessageSuccessCreateAdvice = "advice created successfully"
	MessageSuccessUpdateAdvice = "advice updated successfully"
	MessageSuccessDeleteAdvice = "advice deleted successfully"

	MessageFailedGetAdvices   = "failed to get advices"
	MessageFailedGetAdvice    = "failed to get advice"
	MessageFailedCreateAdvice = "failed to create advice"
	MessageFailedUpdateAdvice = "failed to update advice"
	MessageFailedDeleteAdvice = "failed to delete advice"

	ErrAdviceNotFound = errors.New("advice not found")
)

type (
	AdviceRequest struct {
		Title       string `json:"title" validate:"required,max=120"`
		Description string `json:"description" validate:"required,max=200"`
	}

	AdviceResponse struct {
		ID          string    `json:"id"`
		Title       string    `json:"title"`
		Description string    `json:"description"`
		CreatedAt   time.Time `json:"created_at"`
	}
)
