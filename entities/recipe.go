package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Preparation string    `gorm:"type:text" json:"preparation"`
	UserID      uuid.UUID `gorm:"not null" json:"user_id"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

// RecipeIngredient is the join row carrying the quantity of one ingredient
// in one recipe. Association rows are cleaned up explicitly before deleting
// either parent, there are no ORM-side cascades.
type RecipeIngredient struct {
	RecipeID     uuid.UUID `gorm:"type:uuid;primary_key" json:"recipe_id"`
	IngredientID uuid.UUID `gorm:"type:uuid;primary_key" json:"ingredient_id"`
	Quantity     float64   `gorm:"not null" json:"quantity"`

	Recipe     *Recipe     `gorm:"foreignKey:RecipeID"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID"`
}
