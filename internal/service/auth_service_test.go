package service

import (
	"testing"
	"time"

	"github.com/schoolhub/sims-backend/internal/common"
	"github.com/schoolhub/sims-backend/internal/domain"
	"github.com/schoolhub/sims-backend/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *domain.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id string) (*domain.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(username string) (*domain.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) List(role string, page, limit int) ([]*domain.User, int64, error) {
	args := m.Called(role, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*domain.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) Update(user *domain.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func testJWTManager() *jwt.Manager {
	return jwt.NewManager("test-secret", 15*time.Minute, 7*24*time.Hour)
}

func createTestUser(password string) *domain.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return &domain.User{
		ID:           "u-1",
		Username:     "jdoe",
		PasswordHash: string(hash),
		Name:         "John Doe",
		Email:        "jdoe@example.com",
		Role:         domain.RoleTeacher,
		Active:       true,
	}
}

func TestLogin(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewAuthService(repo, testJWTManager())

	repo.On("FindByUsername", "jdoe").Return(createTestUser("secret123"), nil)

	pair, user, err := svc.Login(&domain.LoginRequest{Username: "jdoe", Password: "secret123"})

	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, "jdoe", user.Username)
	assert.Equal(t, domain.RoleTeacher, user.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewAuthService(repo, testJWTManager())

	repo.On("FindByUsername", "jdoe").Return(createTestUser("secret123"), nil)

	_, _, err := svc.Login(&domain.LoginRequest{Username: "jdoe", Password: "wrong"})

	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewAuthService(repo, testJWTManager())

	repo.On("FindByUsername", "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, _, err := svc.Login(&domain.LoginRequest{Username: "ghost", Password: "whatever"})

	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewAuthService(repo, testJWTManager())

	user := createTestUser("secret123")
	user.Active = false
	repo.On("FindByUsername", "jdoe").Return(user, nil)

	_, _, err := svc.Login(&domain.LoginRequest{Username: "jdoe", Password: "secret123"})

	assert.ErrorIs(t, err, common.ErrForbidden)
}

func TestRefresh(t *testing.T) {
	repo := new(MockUserRepository)
	manager := testJWTManager()
	svc := NewAuthService(repo, manager)

	user := createTestUser("secret123")
	refresh, err := manager.GenerateRefreshToken(user.ID, user.Name, user.Role)
	assert.NoError(t, err)

	repo.On("FindByID", "u-1").Return(user, nil)

	pair, err := svc.Refresh(refresh)

	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
}

func TestRefresh_GarbageToken(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewAuthService(repo, testJWTManager())

	_, err := svc.Refresh("not-a-token")

	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestRegister(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewAuthService(repo, testJWTManager())

	repo.On("FindByUsername", "newuser").Return(nil, gorm.ErrRecordNotFound)
	repo.On("Create", mock.AnythingOfType("*domain.User")).Return(nil)

	user, err := svc.Register(&domain.RegisterUserRequest{
		Username: "newuser",
		Password: "longenough",
		Name:     "New User",
		Role:     domain.RoleStudent,
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, domain.RoleStudent, user.Role)
	repo.AssertExpectations(t)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewAuthService(repo, testJWTManager())

	repo.On("FindByUsername", "jdoe").Return(createTestUser("secret123"), nil)

	_, err := svc.Register(&domain.RegisterUserRequest{
		Username: "jdoe",
		Password: "longenough",
		Name:     "John Doe",
		Role:     domain.RoleTeacher,
	})

	assert.ErrorIs(t, err, common.ErrUserAlreadyExists)
	repo.AssertNotCalled(t, "Create")
}

func TestGetMe_UnknownUser(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewAuthService(repo, testJWTManager())

	repo.On("FindByID", "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetMe("missing")

	assert.ErrorIs(t, err, common.ErrUserNotFound)
}
