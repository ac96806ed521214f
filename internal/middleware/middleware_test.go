package middleware

import (
	"testing"

	"HealthyBites-Backend/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchRule(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		path      string
		wantFound bool
		wantPub   bool
		wantRoles []string
	}{
		{
			name:      "login is public",
			method:    fiber.MethodPost,
			path:      "/api/auth/login",
			wantFound: true,
			wantPub:   true,
		},
		{
			name:      "registration is public",
			method:    fiber.MethodPost,
			path:      "/api/v1/users",
			wantFound: true,
			wantPub:   true,
		},
		{
			name:      "reading a user is public",
			method:    fiber.MethodGet,
			path:      "/api/v1/users/123",
			wantFound: true,
			wantPub:   true,
		},
		{
			name:      "updating a user needs the user role",
			method:    fiber.MethodPut,
			path:      "/api/v1/users/123",
			wantFound: true,
			wantRoles: []string{domain.RoleUser},
		},
		{
			name:      "deleting a user is admin only",
			method:    fiber.MethodDelete,
			path:      "/api/v1/users/123",
			wantFound: true,
			wantRoles: []string{domain.RoleAdmin},
		},
		{
			name:      "listing ingredients allows both roles",
			method:    fiber.MethodGet,
			path:      "/api/v1/ingredients",
			wantFound: true,
			wantRoles: []string{domain.RoleAdmin, domain.RoleUser},
		},
		{
			name:      "creating an ingredient is admin only",
			method:    fiber.MethodPost,
			path:      "/api/v1/ingredients",
			wantFound: true,
			wantRoles: []string{domain.RoleAdmin},
		},
		{
			name:      "creating a recipe needs the user role",
			method:    fiber.MethodPost,
			path:      "/api/v1/recipes",
			wantFound: true,
			wantRoles: []string{domain.RoleUser},
		},
		{
			name:      "midtrans webhook is public",
			method:    fiber.MethodPost,
			path:      "/webhook/midtrans",
			wantFound: true,
			wantPub:   true,
		},
		{
			name:      "unknown routes fall through",
			method:    fiber.MethodPost,
			path:      "/api/v1/users/subscribe",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, found := MatchRule(tt.method, tt.path)
			require.Equal(t, tt.wantFound, found)
			if !found {
				return
			}
			assert.Equal(t, tt.wantPub, rule.Public)
			assert.Equal(t, tt.wantRoles, rule.Roles)
		})
	}
}

func TestMatchPattern(t *testing.T) {
	assert.True(t, matchPattern("/api/v1/users", "/api/v1/users"))
	assert.False(t, matchPattern("/api/v1/users", "/api/v1/users/123"))
	assert.True(t, matchPattern("/api/v1/users/*", "/api/v1/users/123"))
	assert.True(t, matchPattern("/api/v1/users/*", "/api/v1/users/123/avatar"))
	assert.False(t, matchPattern("/api/v1/users/*", "/api/v1/users"))
	assert.False(t, matchPattern("/api/v1/users/*", "/api/v1/usersx/123"))
}
