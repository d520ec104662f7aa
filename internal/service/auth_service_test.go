package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yourusername/quizhub-api/internal/domain/entity"
	apperrors "github.com/yourusername/quizhub-api/internal/pkg/errors"
	"github.com/yourusername/quizhub-api/pkg/auth"
)

func newTestAuthService(t *testing.T, userRepo *MockUserRepository) *AuthService {
	t.Helper()

	jwtService, err := auth.NewJWTService("test-secret", 60, "quizhub-api", "quizhub-client")
	require.NoError(t, err)

	svc, err := NewAuthService(userRepo, jwtService)
	require.NoError(t, err)
	return svc
}

func TestRegisterUser_Success(t *testing.T) {
	// Arrange
	userRepo := new(MockUserRepository)
	svc := newTestAuthService(t, userRepo)

	userRepo.On("GetByUsername", "newuser").Return(nil, apperrors.ErrNotFound)
	userRepo.On("Create", mock.AnythingOfType("*entity.User")).Return(nil)

	// Act
	user, err := svc.RegisterUser("newuser", "password123", entity.RoleUser, "")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "newuser", user.Username)
	assert.Equal(t, entity.RoleUser, user.Role)
	userRepo.AssertExpectations(t)
}

func TestRegisterUser_UsernameTaken(t *testing.T) {
	// Arrange: имя уже занято
	userRepo := new(MockUserRepository)
	svc := newTestAuthService(t, userRepo)

	existing := &entity.User{ID: 1, Username: "taken"}
	userRepo.On("GetByUsername", "taken").Return(existing, nil)

	// Act
	_, err := svc.RegisterUser("taken", "password123", entity.RoleUser, "")

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict, "Занятое имя должно давать конфликт")
	userRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestRegisterUser_InvalidRole(t *testing.T) {
	// Arrange: роль вне закрытого набора
	userRepo := new(MockUserRepository)
	svc := newTestAuthService(t, userRepo)

	// Act
	_, err := svc.RegisterUser("someone", "password123", "Superuser", "")

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation, "Недопустимая роль должна давать ошибку валидации")
	userRepo.AssertNotCalled(t, "GetByUsername", mock.Anything)
}

func TestRegisterUser_UsernameCaseSensitive(t *testing.T) {
	// Arrange: "Admin" занято, но "admin" — другое имя
	userRepo := new(MockUserRepository)
	svc := newTestAuthService(t, userRepo)

	userRepo.On("GetByUsername", "admin").Return(nil, apperrors.ErrNotFound)
	userRepo.On("Create", mock.AnythingOfType("*entity.User")).Return(nil)

	// Act
	user, err := svc.RegisterUser("admin", "password123", entity.RoleUser, "")

	// Assert: регистрация проходит — проверка имени регистрозависимая
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
}

func TestLoginUser_Success(t *testing.T) {
	// Arrange
	userRepo := new(MockUserRepository)
	svc := newTestAuthService(t, userRepo)

	hashed, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := &entity.User{ID: 7, Username: "player", Password: string(hashed), Role: entity.RoleUser}
	userRepo.On("GetByUsername", "player").Return(user, nil)

	// Act
	resp, err := svc.LoginUser("player", "correct-password")

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token, "Токен должен быть выдан")
	assert.Equal(t, entity.RoleUser, resp.Role)
	assert.Equal(t, "player", resp.Username)
}

func TestLoginUser_WrongPassword(t *testing.T) {
	// Arrange
	userRepo := new(MockUserRepository)
	svc := newTestAuthService(t, userRepo)

	hashed, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := &entity.User{ID: 7, Username: "player", Password: string(hashed), Role: entity.RoleUser}
	userRepo.On("GetByUsername", "player").Return(user, nil)

	// Act
	_, err = svc.LoginUser("player", "wrong-password")

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized, "Неверный пароль должен давать 401")
}

func TestLoginUser_UnknownUser(t *testing.T) {
	// Arrange
	userRepo := new(MockUserRepository)
	svc := newTestAuthService(t, userRepo)

	userRepo.On("GetByUsername", "ghost").Return(nil, apperrors.ErrNotFound)

	// Act
	_, err := svc.LoginUser("ghost", "whatever")

	// Assert: несуществующий пользователь неотличим от неверного пароля
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
