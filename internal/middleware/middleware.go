package middleware

import (
	"strings"

	"HealthyBites-Backend/domain"
	"HealthyBites-Backend/internal/api/presenters"
	"HealthyBites-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AccessControl(jwtService jwt.JWTService) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE",
	})
}

// Rule maps one (method, path pattern) pair to the roles allowed to call it.
// Public marks the route as reachable without a token; an empty Roles set on
// a non-public rule means any authenticated user.
type Rule struct {
	Method  string
	Pattern string
	Public  bool
	Roles   []string
}

// accessRules is evaluated top to bottom before handler dispatch; the first
// matching rule wins. Routes with no matching rule require authentication.
var accessRules = []Rule{
	{Method: fiber.MethodPost, Pattern: "/api/auth/*", Public: true},
	{Method: fiber.MethodPost, Pattern: "/api/v1/users", Public: true},
	{Method: fiber.MethodGet, Pattern: "/api/v1/users", Public: true},
	{Method: fiber.MethodGet, Pattern: "/api/v1/users/*", Public: true},
	{Method: fiber.MethodGet, Pattern: "/api/ping", Public: true},
	{Method: fiber.MethodPost, Pattern: "/webhook/midtrans", Public: true},

	{Method: fiber.MethodPut, Pattern: "/api/v1/users/*", Roles: []string{domain.RoleUser}},
	{Method: fiber.MethodDelete, Pattern: "/api/v1/users/*", Roles: []string{domain.RoleAdmin}},

	{Method: fiber.MethodGet, Pattern: "/api/v1/advices", Roles: []string{domain.RoleAdmin, domain.RoleUser}},
	{Method: fiber.MethodGet, Pattern: "/api/v1/advices/*", Roles: []string{domain.RoleAdmin, domain.RoleUser}},
	{Method: fiber.MethodGet, Pattern: "/api/v1/ingredients", Roles: []string{domain.RoleAdmin, domain.RoleUser}},
	{Method: fiber.MethodGet, Pattern: "/api/v1/ingredients/*", Roles: []string{domain.RoleAdmin, domain.RoleUser}},
	{Method: fiber.MethodGet, Pattern: "/api/v1/recipes", Roles: []string{domain.RoleAdmin, domain.RoleUser}},
	{Method: fiber.MethodGet, Pattern: "/api/v1/recipes/*", Roles: []string{domain.RoleAdmin, domain.RoleUser}},

	{Method: fiber.MethodPost, Pattern: "/api/v1/advices", Roles: []string{domain.RoleAdmin}},
	{Method: fiber.MethodPut, Pattern: "/api/v1/advices/*", Roles: []string{domain.RoleAdmin}},
	{Method: fiber.MethodDelete, Pattern: "/api/v1/advices/*", Roles: []string{domain.RoleAdmin}},
	{Method: fiber.MethodPost, Pattern: "/api/v1/ingredients", Roles: []string{domain.RoleAdmin}},
	{Method: fiber.MethodPut, Pattern: "/api/v1/ingredients/*", Roles: []string{domain.RoleAdmin}},
	{Method: fiber.MethodDelete, Pattern: "/api/v1/ingredients/*", Roles: []string{domain.RoleAdmin}},

	{Method: fiber.MethodPost, Pattern: "/api/v1/recipes", Roles: []string{domain.RoleUser}},
	{Method: fiber.MethodPost, Pattern: "/api/v1/recipes/*", Roles: []string{domain.RoleUser}},
	{Method: fiber.MethodPut, Pattern: "/api/v1/recipes/*", Roles: []string{domain.RoleUser}},
	{Method: fiber.MethodDelete, Pattern: "/api/v1/recipes/*", Roles: []string{domain.RoleUser}},
}

// MatchRule returns the first rule matching the method and path, if any.
func MatchRule(method, path string) (Rule, bool) {
	for _, rule := range accessRules {
		if rule.Method != method {
			continue
		}
		if matchPattern(rule.Pattern, path) {
			return rule, true
		}
	}
	return Rule{}, false
}

func matchPattern(pattern, path string) bool {
	if prefix, ok := strings.CutSuffix(pattern, "/*"); ok {
		return strings.HasPrefix(path, prefix+"/")
	}
	return pattern == path
}

// AccessControl validates the bearer token where required and enforces the
// role table before any handler runs.
func (m *middleware) AccessControl(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rule, found := MatchRule(c.Method(), c.Path())
		if found && rule.Public {
			return c.Next()
		}

		token := extractBearerToken(c)
		if token == "" {
			return presenters.ErrorResponse(c, domain.MessageFailedGetToken, domain.ErrTokenNotFound)
		}

		email, role, err := jwtService.GetClaimsByToken(token)
		if err != nil {
			return presenters.ErrorResponse(c, domain.MessageFailedTokenInvalid, err)
		}

		c.Locals("user_email", email)
		c.Locals("role", role)

		if found && len(rule.Roles) > 0 && !containsRole(rule.Roles, role) {
			return presenters.ErrorResponse(c, domain.MessageUserNotAllowed, domain.ErrUserNotAllowed)
		}
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) string {
	authorization := c.Get(fiber.HeaderAuthorization)
	if authorization == "" {
		return ""
	}
	parts := strings.SplitN(authorization, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func containsRole(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
