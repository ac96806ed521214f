package migrate

import (
	"errors"
	"log"

	"HealthyBites-Backend/domain"
	"HealthyBites-Backend/entities"
	"HealthyBites-Backend/internal/utils"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		log.Fatalf("failed to enable uuid extension: %v", err)
	}

	err := db.AutoMigrate(
		&entities.Role{},
		&entities.User{},
		&entities.InfoUser{},
		&entities.Ingredient{},
		&entities.Recipe{},
		&entities.RecipeIngredient{},
		&entities.Advice{},
		&entities.PremiumTransaction{},
	)
	if err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
}

// Seed makes sure the roles referenced at registration time exist and
// provisions the bootstrap admin account.
func Seed(db *gorm.DB) {
	for _, name := range []string{domain.RoleAdmin, domain.RoleUser} {
		role := entities.Role{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&role).Error; err != nil {
			log.Fatalf("failed to seed role %s: %v", name, err)
		}
	}

	var admin entities.User
	err := db.Where("email = ?", "admin@healthybites.com").First(&admin).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("failed to look up admin account: %v", err)
	}

	var adminRole entities.Role
	if err := db.Where("name = ?", domain.RoleAdmin).First(&adminRole).Error; err != nil {
		log.Fatalf("failed to load admin role: %v", err)
	}

	hashed, err := utils.HashPassword("admin")
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}
	admin = entities.User{
		Name:      "admin",
		Email:     "admin@healthybites.com",
		Password:  hashed,
		RoleID:    adminRole.ID,
		IsEnabled: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("failed to seed admin account: %v", err)
	}
}
