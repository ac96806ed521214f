package domain

import (
	"errors"
)

var (
	MessageSuccessCreateTransaction = "transaction created successfully"
	MessageSuccessProcessWebhook    = "webhook processed successfully"

	MessageFailedCreateTransaction = "failed to create transaction"
	MessageFailedProcessWebhook    = "failed to process webhook"

	ErrTransactionNotFound = errors.New("transaction not found")
	ErrAlreadyPremium      = errors.New("user already premium")
)

type (
	SubscribeResponse struct {
		OrderID     string `json:"order_id"`
		RedirectURL string `json:"redirect_url"`
	}

	MidtransNotificationRequest struct {
		OrderID           string `json:"order_id" validate:"required"`
		TransactionStatus string `json:"transaction_status" validate:"required"`
		FraudStatus       string `json:"fraud_status,omitempty"`
	}
)
