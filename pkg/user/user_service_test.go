package user

import (
	"context"
	"mime/multipart"
	"testing"

	"HealthyBites-Backend/domain"
	"HealthyBites-Backend/entities"
	"HealthyBites-Backend/internal/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users map[string]*entities.User
	infos map[string]*entities.InfoUser
	roles map[string]*entities.Role
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		users: make(map[string]*entities.User),
		infos: make(map[string]*entities.InfoUser),
		roles: make(map[string]*entities.Role),
	}
}

func (f *fakeUserRepository) CreateUserWithProfile(_ context.Context, user *entities.User, info *entities.InfoUser) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users[user.ID.String()] = user
	if info != nil {
		info.UserID = user.ID
		if info.ID == uuid.Nil {
			info.ID = uuid.New()
		}
		f.infos[user.ID.String()] = info
	}
	return nil
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetAllUsers(_ context.Context) ([]*entities.User, error) {
	var result []*entities.User
	for _, user := range f.users {
		result = append(result, user)
	}
	return result, nil
}

func (f *fakeUserRepository) UpdateUser(_ context.Context, user *entities.User) error {
	f.users[user.ID.String()] = user
	return nil
}

func (f *fakeUserRepository) DeleteUser(_ context.Context, id string) error {
	delete(f.users, id)
	delete(f.infos, id)
	return nil
}

func (f *fakeUserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, user := range f.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepository) GetInfoUserByUserID(_ context.Context, userID string) (*entities.InfoUser, error) {
	info, ok := f.infos[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return info, nil
}

func (f *fakeUserRepository) SaveInfoUser(_ context.Context, info *entities.InfoUser) error {
	if info.ID == uuid.Nil {
		info.ID = uuid.New()
	}
	f.infos[info.UserID.String()] = info
	return nil
}

func (f *fakeUserRepository) GetRoleByName(_ context.Context, name string) (*entities.Role, error) {
	role, ok := f.roles[name]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return role, nil
}

type fakeS3 struct {
	url string
}

func (f *fakeS3) UploadFile(_ context.Context, _ *multipart.FileHeader, _ string) (string, error) {
	return f.url, nil
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func newUserFixture() (UserService, *fakeUserRepository) {
	repo := newFakeUserRepository()
	repo.roles[domain.RoleUser] = &entities.Role{ID: uuid.New(), Name: domain.RoleUser}
	return NewUserService(repo, &fakeS3{url: "https://bucket.s3.example.com/avatars/a.png"}), repo
}

func TestCreateUser_HashesPasswordAndNormalizesEmail(t *testing.T) {
	service, repo := newUserFixture()

	response, err := service.CreateUser(context.Background(), domain.CreateUserRequest{
		Name:     "Jamie",
		Email:    "  Jamie@Example.COM ",
		Password: "supersecret",
	})
	require.NoError(t, err)

	assert.Equal(t, "jamie@example.com", response.Email)
	assert.Equal(t, domain.RoleUser, response.Role)

	stored := repo.users[response.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "supersecret", stored.Password)
	assert.True(t, utils.CheckPassword(stored.Password, "supersecret"))
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	service, _ := newUserFixture()

	request := domain.CreateUserRequest{
		Name:     "Jamie",
		Email:    "jamie@example.com",
		Password: "supersecret",
	}
	_, err := service.CreateUser(context.Background(), request)
	require.NoError(t, err)

	_, err = service.CreateUser(context.Background(), request)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestCreateUser_MissingDefaultRole(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, &fakeS3{})

	_, err := service.CreateUser(context.Background(), domain.CreateUserRequest{
		Name:     "Jamie",
		Email:    "jamie@example.com",
		Password: "supersecret",
	})
	assert.ErrorIs(t, err, domain.ErrRoleNotFound)
}

func TestCreateUser_WithProfile(t *testing.T) {
	service, repo := newUserFixture()

	response, err := service.CreateUser(context.Background(), domain.CreateUserRequest{
		Name:     "Jamie",
		Email:    "jamie@example.com",
		Password: "supersecret",
		InfoUser: &domain.InfoUserRequest{
			Height: floatPtr(180),
			Weight: floatPtr(75),
			Age:    intPtr(30),
		},
	})
	require.NoError(t, err)

	require.NotNil(t, response.InfoUser)
	assert.Equal(t, 180.0, response.InfoUser.Height)
	assert.Equal(t, 75.0, response.InfoUser.Weight)
	assert.Equal(t, 30, response.InfoUser.Age)
	assert.NotNil(t, repo.infos[response.ID])
}

func TestUpdateUser_PartialMergeLeavesOtherFields(t *testing.T) {
	service, repo := newUserFixture()

	created, err := service.CreateUser(context.Background(), domain.CreateUserRequest{
		Name:     "Jamie",
		Email:    "jamie@example.com",
		Password: "supersecret",
		InfoUser: &domain.InfoUserRequest{
			Height: floatPtr(180),
			Weight: floatPtr(75),
		},
	})
	require.NoError(t, err)
	originalHash := repo.users[created.ID].Password

	updated, err := service.UpdateUser(context.Background(), created.ID, domain.UpdateUserRequest{
		Name: "Jamie Oliver",
		InfoUser: &domain.InfoUserRequest{
			Weight: floatPtr(72),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Jamie Oliver", updated.Name)
	assert.Equal(t, "jamie@example.com", updated.Email)
	assert.Equal(t, originalHash, repo.users[created.ID].Password)

	require.NotNil(t, updated.InfoUser)
	assert.Equal(t, 180.0, updated.InfoUser.Height)
	assert.Equal(t, 72.0, updated.InfoUser.Weight)
}

func TestUpdateUser_CreatesProfileOnFirstWrite(t *testing.T) {
	service, repo := newUserFixture()

	created, err := service.CreateUser(context.Background(), domain.CreateUserRequest{
		Name:     "Jamie",
		Email:    "jamie@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	require.Nil(t, repo.infos[created.ID])

	updated, err := service.UpdateUser(context.Background(), created.ID, domain.UpdateUserRequest{
		InfoUser: &domain.InfoUserRequest{Height: floatPtr(170)},
	})
	require.NoError(t, err)

	require.NotNil(t, updated.InfoUser)
	assert.Equal(t, 170.0, updated.InfoUser.Height)
	assert.NotNil(t, repo.infos[created.ID])
}

func TestUpdateUser_DuplicateEmail(t *testing.T) {
	service, _ := newUserFixture()

	_, err := service.CreateUser(context.Background(), domain.CreateUserRequest{
		Name:     "Jamie",
		Email:    "jamie@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	other, err := service.CreateUser(context.Background(), domain.CreateUserRequest{
		Name:     "Robin",
		Email:    "robin@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	_, err = service.UpdateUser(context.Background(), other.ID, domain.UpdateUserRequest{
		Email: "Jamie@Example.com",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUserLookups_MalformedID(t *testing.T) {
	service, _ := newUserFixture()

	_, err := service.GetUserByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrParseUUID)

	_, err = service.UpdateUser(context.Background(), "not-a-uuid", domain.UpdateUserRequest{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrParseUUID)

	err = service.DeleteUser(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestUpdateUser_NotFound(t *testing.T) {
	service, _ := newUserFixture()

	_, err := service.UpdateUser(context.Background(), uuid.NewString(), domain.UpdateUserRequest{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestDeleteUser_NotFound(t *testing.T) {
	service, _ := newUserFixture()

	err := service.DeleteUser(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUploadAvatar_SetsURL(t *testing.T) {
	service, repo := newUserFixture()

	created, err := service.CreateUser(context.Background(), domain.CreateUserRequest{
		Name:     "Jamie",
		Email:    "jamie@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	response, err := service.UploadAvatar(context.Background(), created.ID, &multipart.FileHeader{Filename: "a.png"})
	require.NoError(t, err)

	assert.Equal(t, "https://bucket.s3.example.com/avatars/a.png", response.AvatarURL)
	assert.Equal(t, response.AvatarURL, repo.users[created.ID].AvatarURL)
}
