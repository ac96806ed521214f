package entities

import (
	"github.com/google/uuid"
)

type Ingredient struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name     string    `gorm:"not null" json:"name"`
	Calories float64   `gorm:"not null" json:"calories"` // per unit of quantity
	IsActive bool      `json:"is_active"`

	Timestamp
}
