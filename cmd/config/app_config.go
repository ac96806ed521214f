package config

import (
	"HealthyBites-Backend/internal/api/handlers"
	"HealthyBites-Backend/internal/api/routes"
	"HealthyBites-Backend/internal/middleware"
	"HealthyBites-Backend/internal/utils"
	"HealthyBites-Backend/internal/utils/storage"
	"HealthyBites-Backend/pkg/advice"
	"HealthyBites-Backend/pkg/auth"
	"HealthyBites-Backend/pkg/ingredient"
	"HealthyBites-Backend/pkg/jwt"
	"HealthyBites-Backend/pkg/midtrans"
	"HealthyBites-Backend/pkg/recipe"
	"HealthyBites-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	ingredientRepository := ingredient.NewIngredientRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	adviceRepository := advice.NewAdviceRepository(db)
	midtransRepository := midtrans.NewMidtransRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, s3)
	authService := auth.NewAuthService(userRepository, jwtService)
	ingredientService := ingredient.NewIngredientService(ingredientRepository)
	recipeService := recipe.NewRecipeService(
		recipeRepository,
		ingredientRepository,
		userRepository,
	)
	adviceService := advice.NewAdviceService(adviceRepository)
	midtransService := midtrans.NewMidtransService(
		midtransRepository,
		userRepository,
	)

	// Handler
	authHandler := handlers.NewAuthHandler(authService, validator)
	userHandler := handlers.NewUserHandler(userService, validator)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	adviceHandler := handlers.NewAdviceHandler(adviceService, validator)
	midtransHandler := handlers.NewMidtransHandler(midtransService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		AuthHandler:       authHandler,
		UserHandler:       userHandler,
		IngredientHandler: ingredientHandler,
		RecipeHandler:     recipeHandler,
		AdviceHandler:     adviceHandler,
		MidtransHandler:   midtransHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
