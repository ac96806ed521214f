package routes

import (
	"HealthyBites-Backend/internal/api/handlers"
	"HealthyBites-Backend/internal/middleware"
	"HealthyBites-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	AuthHandler       handlers.AuthHandler
	UserHandler       handlers.UserHandler
	IngredientHandler handlers.IngredientHandler
	RecipeHandler     handlers.RecipeHandler
	AdviceHandler     handlers.AdviceHandler
	MidtransHandler   handlers.MidtransHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	// role table is enforced before any handler runs
	c.App.Use(c.Middleware.AccessControl(c.JWTService))

	c.Auth()
	c.Users()
	c.Ingredients()
	c.Recipes()
	c.Advices()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth")
	{
		auth.Post("/login", c.AuthHandler.Login)
	}
}

func (c *Config) Users() {
	users := c.App.Group("/api/v1/users")
	{
		users.Post("", c.UserHandler.CreateUser)
		users.Get("", c.UserHandler.GetAllUsers)
		users.Get("/by-email", c.UserHandler.GetUserByEmail)
		users.Post("/subscribe", c.MidtransHandler.CreateTransaction)
		users.Get("/:id", c.UserHandler.GetUserByID)
		users.Put("/:id", c.UserHandler.UpdateUser)
		users.Delete("/:id", c.UserHandler.DeleteUser)
		users.Post("/:id/avatar", c.UserHandler.UploadAvatar)
	}
}

func (c *Config) Ingredients() {
	ingredients := c.App.Group("/api/v1/ingredients")
	{
		ingredients.Get("", c.IngredientHandler.GetAllIngredients)
		ingredients.Get("/active", c.IngredientHandler.GetActiveIngredients)
		ingredients.Post("", c.IngredientHandler.CreateIngredient)
		ingredients.Get("/:id", c.IngredientHandler.GetIngredientByID)
		ingredients.Put("/:id/reactivate", c.IngredientHandler.ReactivateIngredient)
		ingredients.Put("/:id/disable", c.IngredientHandler.DisableIngredient)
		ingredients.Put("/:id", c.IngredientHandler.UpdateIngredient)
		ingredients.Delete("/:id", c.IngredientHandler.DeleteIngredient)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")
	{
		recipes.Get("/user/:userId", c.RecipeHandler.GetRecipesByUser)
		recipes.Post("", c.RecipeHandler.CreateRecipe)
		recipes.Get("/:id/ingredients", c.RecipeHandler.GetIngredientsForRecipe)
		recipes.Post("/:id/ingredients", c.RecipeHandler.AddIngredientToRecipe)
		recipes.Delete("/:id/ingredients/:ingredientId", c.RecipeHandler.RemoveIngredientFromRecipe)
		recipes.Get("/:id", c.RecipeHandler.GetRecipeByID)
		recipes.Put("/:id", c.RecipeHandler.UpdateRecipe)
		recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
	}
}

func (c *Config) Advices() {
	advices := c.App.Group("/api/v1/advices")
	{
		advices.Get("", c.AdviceHandler.GetAllAdvices)
		advices.Post("", c.AdviceHandler.CreateAdvice)
		advices.Get("/:id", c.AdviceHandler.GetAdviceByID)
		advices.Put("/:id", c.AdviceHandler.UpdateAdvice)
		advices.Delete("/:id", c.AdviceHandler.DeleteAdvice)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/webhook/midtrans", c.MidtransHandler.MidtransWebhookHandler)
}
