package entities

import (
	"github.com/google/uuid"
)

// PremiumTransaction tracks a midtrans payment for the premium upgrade.
// Status follows midtrans transaction statuses: pending, settlement, expire, cancel.
type PremiumTransaction struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `gorm:"not null" json:"user_id"`
	OrderID     string    `gorm:"uniqueIndex;not null" json:"order_id"`
	Amount      int64     `json:"amount"`
	Status      string    `json:"status"`
	RedirectURL string    `json:"redirect_url,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
