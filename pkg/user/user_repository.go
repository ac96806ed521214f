package user

import (
	"context"

	"HealthyBites-Backend/entities"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateUserWithProfile(ctx context.Context, user *entities.User, info *entities.InfoUser) error
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		GetAllUsers(ctx context.Context) ([]*entities.User, error)
		UpdateUser(ctx context.Context, user *entities.User) error
		DeleteUser(ctx context.Context, id string) error
		ExistsByEmail(ctx context.Context, email string) (bool, error)

		GetInfoUserByUserID(ctx context.Context, userID string) (*entities.InfoUser, error)
		SaveInfoUser(ctx context.Context, info *entities.InfoUser) error

		GetRoleByName(ctx context.Context, name string) (*entities.Role, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateUserWithProfile persists the user and its optional profile in one
// transaction so a failed profile insert never leaves an orphan user row.
func (r *userRepository) CreateUserWithProfile(ctx context.Context, user *entities.User, info *entities.InfoUser) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		if info != nil {
			info.UserID = user.ID
			if err := tx.Create(info).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Preload("Role").Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Preload("Role").Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetAllUsers(ctx context.Context) ([]*entities.User, error) {
	var users []*entities.User
	if err := r.db.WithContext(ctx).Preload("Role").Order("registration_date asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// DeleteUser removes the user together with everything it owns: profile row,
// recipes and their association rows. Association rows go first to satisfy
// foreign key constraints.
func (r *userRepository) DeleteUser(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipeIDs []string
		if err := tx.Model(&entities.Recipe{}).Where("user_id = ?", id).Pluck("id", &recipeIDs).Error; err != nil {
			return err
		}
		if len(recipeIDs) > 0 {
			if err := tx.Where("recipe_id IN ?", recipeIDs).Delete(&entities.RecipeIngredient{}).Error; err != nil {
				return err
			}
			if err := tx.Where("user_id = ?", id).Delete(&entities.Recipe{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", id).Delete(&entities.InfoUser{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&entities.PremiumTransaction{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.User{}).Error
	})
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) GetInfoUserByUserID(ctx context.Context, userID string) (*entities.InfoUser, error) {
	var info entities.InfoUser
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&info).Error; err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *userRepository) SaveInfoUser(ctx context.Context, info *entities.InfoUser) error {
	return r.db.WithContext(ctx).Save(info).Error
}

func (r *userRepository) GetRoleByName(ctx context.Context, name string) (*entities.Role, error) {
	var role entities.Role
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}
