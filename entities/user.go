package entities

import (
	"time"

	"github.com/google/uuid"
)

type Timestamp struct {
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp" json:"updated_at"`
}

type Role struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name string    `gorm:"uniqueIndex;not null" json:"name"` // ADMIN, USER

	Timestamp
}

type User struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name             string    `json:"name"`
	Email            string    `gorm:"uniqueIndex;not null" json:"email"`
	Password         string    `gorm:"not null" json:"-"`
	RoleID           uuid.UUID `gorm:"not null" json:"role_id"`
	IsEnabled        bool      `json:"is_enabled"`
	AccountExpired   bool      `json:"account_expired"`
	AccountLocked    bool      `json:"account_locked"`
	IsPremium        bool      `json:"is_premium"`
	AvatarURL        string    `json:"avatar_url,omitempty"`
	RegistrationDate time.Time `gorm:"type:timestamp" json:"registration_date"`

	Role *Role `gorm:"foreignKey:RoleID"`
	Timestamp
}

// InfoUser is the optional body-metrics profile, one row per user.
type InfoUser struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID        uuid.UUID `gorm:"uniqueIndex;not null" json:"user_id"`
	Height        float64   `json:"height"`
	Weight        float64   `json:"weight"`
	Sex           string    `json:"sex,omitempty"`
	Age           int       `json:"age"`
	ActivityLevel string    `json:"activity_level,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
