package auth

import (
	"context"
	"errors"
	"strings"

	"HealthyBites-Backend/domain"
	"HealthyBites-Backend/internal/utils"
	"HealthyBites-Backend/pkg/jwt"
	"HealthyBites-Backend/pkg/user"

	"gorm.io/gorm"
)

type (
	AuthService interface {
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
	}

	authService struct {
		userRepository user.UserRepository
		jwtService     jwt.JWTService
	}
)

func NewAuthService(userRepository user.UserRepository, jwtService jwt.JWTService) AuthService {
	return &authService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

// Login verifies the credentials and issues a signed token carrying the
// user's email as subject and its single role as a claim. Emails compare
// case-insensitively, passwords never do.
func (s *authService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	account, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrUserNotFound
		}
		return domain.LoginResponse{}, err
	}

	if !utils.CheckPassword(account.Password, req.Password) {
		return domain.LoginResponse{}, domain.ErrCredentialsInvalid
	}

	roleName := domain.RoleUser
	if account.Role != nil {
		roleName = account.Role.Name
	}

	token, err := s.jwtService.GenerateToken(account.Email, roleName)
	if err != nil {
		return domain.LoginResponse{}, err
	}

	return domain.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
	}, nil
}
