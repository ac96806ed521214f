package user

import (
	"context"
	"errors"
	"log"
	"mime/multipart"
	"strings"
	"time"

	"HealthyBites-Backend/domain"
	"HealthyBites-Backend/entities"
	"HealthyBites-Backend/internal/utils"
	"HealthyBites-Backend/internal/utils/mailing"
	"HealthyBites-Backend/internal/utils/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	UserService interface {
		CreateUser(ctx context.Context, req domain.CreateUserRequest) (domain.UserResponse, error)
		GetAllUsers(ctx context.Context) ([]domain.UserResponse, error)
		GetUserByID(ctx context.Context, id string) (domain.UserResponse, error)
		GetUserByEmail(ctx context.Context, email string) (domain.UserResponse, error)
		UpdateUser(ctx context.Context, id string, req domain.UpdateUserRequest) (domain.UserResponse, error)
		DeleteUser(ctx context.Context, id string) error
		UploadAvatar(ctx context.Context, id string, file *multipart.FileHeader) (domain.UserResponse, error)
	}

	userService struct {
		userRepository UserRepository
		s3             storage.AwsS3
	}
)

func NewUserService(userRepository UserRepository, s3 storage.AwsS3) UserService {
	return &userService{
		userRepository: userRepository,
		s3:             s3,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser registers a user with the default USER role. The role row is a
// seeding precondition, a missing row is reported as domain.ErrRoleNotFound.
func (s *userService) CreateUser(ctx context.Context, req domain.CreateUserRequest) (domain.UserResponse, error) {
	email := normalizeEmail(req.Email)

	exists, err := s.userRepository.ExistsByEmail(ctx, email)
	if err != nil {
		return domain.UserResponse{}, err
	}
	if exists {
		return domain.UserResponse{}, domain.ErrEmailAlreadyExists
	}

	role, err := s.userRepository.GetRoleByName(ctx, domain.RoleUser)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrRoleNotFound
		}
		return domain.UserResponse{}, err
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return domain.UserResponse{}, err
	}

	user := &entities.User{
		Name:             req.Name,
		Email:            email,
		Password:         hashed,
		RoleID:           role.ID,
		IsEnabled:        true,
		RegistrationDate: time.Now(),
	}

	var info *entities.InfoUser
	if req.InfoUser != nil {
		info = &entities.InfoUser{}
		mergeInfoUser(info, req.InfoUser)
	}

	if err := s.userRepository.CreateUserWithProfile(ctx, user, info); err != nil {
		return domain.UserResponse{}, err
	}

	// best effort, registration must not fail on SMTP trouble
	if err := mailing.SendWelcomeEmail(user.Email, user.Name); err != nil {
		log.Printf("failed to send welcome email to %s: %v", user.Email, err)
	}

	user.Role = role
	return s.toUserResponse(user, info), nil
}

func (s *userService) GetAllUsers(ctx context.Context) ([]domain.UserResponse, error) {
	users, err := s.userRepository.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.UserResponse, 0, len(users))
	for _, user := range users {
		info, err := s.userRepository.GetInfoUserByUserID(ctx, user.ID.String())
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		result = append(result, s.toUserResponse(user, info))
	}
	return result, nil
}

func (s *userService) GetUserByID(ctx context.Context, id string) (domain.UserResponse, error) {
	user, err := s.resolveUser(ctx, id)
	if err != nil {
		return domain.UserResponse{}, err
	}
	return s.withProfile(ctx, user)
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}
	return s.withProfile(ctx, user)
}

// UpdateUser applies partial-merge semantics: only non-empty fields overwrite,
// the profile sub-object is merged field by field and created on first write.
func (s *userService) UpdateUser(ctx context.Context, id string, req domain.UpdateUserRequest) (domain.UserResponse, error) {
	user, err := s.resolveUser(ctx, id)
	if err != nil {
		return domain.UserResponse{}, err
	}

	if strings.TrimSpace(req.Name) != "" {
		user.Name = req.Name
	}
	if req.Email != "" && !strings.EqualFold(user.Email, req.Email) {
		email := normalizeEmail(req.Email)
		exists, err := s.userRepository.ExistsByEmail(ctx, email)
		if err != nil {
			return domain.UserResponse{}, err
		}
		if exists {
			return domain.UserResponse{}, domain.ErrEmailAlreadyExists
		}
		user.Email = email
	}
	if req.Password != "" {
		hashed, err := utils.HashPassword(req.Password)
		if err != nil {
			return domain.UserResponse{}, err
		}
		user.Password = hashed
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}

	var info *entities.InfoUser
	if req.InfoUser != nil {
		info, err = s.userRepository.GetInfoUserByUserID(ctx, user.ID.String())
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.UserResponse{}, err
			}
			info = &entities.InfoUser{UserID: user.ID}
		}
		mergeInfoUser(info, req.InfoUser)
		if err := s.userRepository.SaveInfoUser(ctx, info); err != nil {
			return domain.UserResponse{}, err
		}
	} else {
		info, err = s.userRepository.GetInfoUserByUserID(ctx, user.ID.String())
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, err
		}
	}

	return s.toUserResponse(user, info), nil
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.resolveUser(ctx, id); err != nil {
		return err
	}
	return s.userRepository.DeleteUser(ctx, id)
}

func (s *userService) UploadAvatar(ctx context.Context, id string, file *multipart.FileHeader) (domain.UserResponse, error) {
	user, err := s.resolveUser(ctx, id)
	if err != nil {
		return domain.UserResponse{}, err
	}

	url, err := s.s3.UploadFile(ctx, file, "avatars")
	if err != nil {
		return domain.UserResponse{}, err
	}

	user.AvatarURL = url
	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}
	return s.withProfile(ctx, user)
}

// helpers

func (s *userService) resolveUser(ctx context.Context, id string) (*entities.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	user, err := s.userRepository.GetUserByID(ctx, userID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func mergeInfoUser(info *entities.InfoUser, req *domain.InfoUserRequest) {
	if req.Height != nil {
		info.Height = *req.Height
	}
	if req.Weight != nil {
		info.Weight = *req.Weight
	}
	if req.Sex != "" {
		info.Sex = req.Sex
	}
	if req.Age != nil {
		info.Age = *req.Age
	}
	if req.ActivityLevel != "" {
		info.ActivityLevel = req.ActivityLevel
	}
}

func (s *userService) withProfile(ctx context.Context, user *entities.User) (domain.UserResponse, error) {
	info, err := s.userRepository.GetInfoUserByUserID(ctx, user.ID.String())
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserResponse{}, err
	}
	return s.toUserResponse(user, info), nil
}

func (s *userService) toUserResponse(user *entities.User, info *entities.InfoUser) domain.UserResponse {
	roleName := ""
	if user.Role != nil {
		roleName = user.Role.Name
	}

	response := domain.UserResponse{
		ID:               user.ID.String(),
		Name:             user.Name,
		Email:            user.Email,
		Role:             roleName,
		IsEnabled:        user.IsEnabled,
		IsPremium:        user.IsPremium,
		AvatarURL:        user.AvatarURL,
		RegistrationDate: user.RegistrationDate,
	}
	if info != nil {
		response.InfoUser = &domain.InfoUserResponse{
			ID:            info.ID.String(),
			Height:        info.Height,
			Weight:        info.Weight,
			Sex:           info.Sex,
			Age:           info.Age,
			ActivityLevel: info.ActivityLevel,
		}
	}
	return response
}
