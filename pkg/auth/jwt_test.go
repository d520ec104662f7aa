package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/quizhub-api/internal/domain/entity"
)

func newTestService(t *testing.T) *JWTService {
	t.Helper()
	svc, err := NewJWTService("test-secret", 60, "quizhub-api", "quizhub-client")
	require.NoError(t, err)
	return svc
}

func TestJWTService_GenerateAndParse(t *testing.T) {
	// Arrange
	svc := newTestService(t)
	user := &entity.User{ID: 42, Username: "player", Role: entity.RoleUser}

	// Act
	token, err := svc.GenerateToken(user)
	require.NoError(t, err)
	claims, err := svc.ParseToken(token)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "player", claims.Username)
	assert.Equal(t, entity.RoleUser, claims.Role)
	assert.NotEmpty(t, claims.ID, "jti должен быть заполнен")
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	// Arrange: токен подписан другим секретом
	svc := newTestService(t)
	other, err := NewJWTService("other-secret", 60, "quizhub-api", "quizhub-client")
	require.NoError(t, err)

	token, err := other.GenerateToken(&entity.User{ID: 1, Username: "x", Role: entity.RoleUser})
	require.NoError(t, err)

	// Act
	_, err = svc.ParseToken(token)

	// Assert
	assert.Error(t, err, "Токен с чужой подписью должен отклоняться")
}

func TestJWTService_RejectsWrongIssuer(t *testing.T) {
	// Arrange: тот же секрет, но другой издатель
	svc := newTestService(t)
	other, err := NewJWTService("test-secret", 60, "other-issuer", "quizhub-client")
	require.NoError(t, err)

	token, err := other.GenerateToken(&entity.User{ID: 1, Username: "x", Role: entity.RoleUser})
	require.NoError(t, err)

	// Act
	_, err = svc.ParseToken(token)

	// Assert
	assert.Error(t, err, "Токен с чужим издателем должен отклоняться")
}

func TestJWTService_RejectsWrongAudience(t *testing.T) {
	// Arrange
	svc := newTestService(t)
	other, err := NewJWTService("test-secret", 60, "quizhub-api", "other-client")
	require.NoError(t, err)

	token, err := other.GenerateToken(&entity.User{ID: 1, Username: "x", Role: entity.RoleUser})
	require.NoError(t, err)

	// Act
	_, err = svc.ParseToken(token)

	// Assert
	assert.Error(t, err, "Токен с чужой аудиторией должен отклоняться")
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ParseToken("not-a-jwt")
	assert.Error(t, err)
}
