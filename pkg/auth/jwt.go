package auth

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/yourusername/quizhub-api/internal/domain/entity"
)

// JWTCustomClaims содержит пользовательские поля для токена
type JWTCustomClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService предоставляет методы для выпуска и проверки JWT
type JWTService struct {
	secret     []byte
	expiration time.Duration
	issuer     string
	audience   string
}

// NewJWTService создает новый сервис JWT и возвращает ошибку при проблемах
func NewJWTService(secret string, expirationMin int, issuer, audience string) (*JWTService, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret is required for JWTService")
	}
	// Время жизни по умолчанию — 60 минут
	if expirationMin <= 0 {
		expirationMin = 60
	}
	if issuer == "" || audience == "" {
		return nil, fmt.Errorf("JWT issuer and audience are required for JWTService")
	}

	return &JWTService{
		secret:     []byte(secret),
		expiration: time.Duration(expirationMin) * time.Minute,
		issuer:     issuer,
		audience:   audience,
	}, nil
}

// GenerateToken создает новый подписанный JWT для пользователя
func (s *JWTService) GenerateToken(user *entity.User) (string, error) {
	now := time.Now()
	claims := &JWTCustomClaims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			Subject:   fmt.Sprintf("%d", user.ID),
			Audience:  jwt.ClaimStrings{s.audience},
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		log.Printf("[JWT] Ошибка генерации токена для пользователя ID=%d: %v", user.ID, err)
		return "", err
	}

	log.Printf("[JWT] Токен успешно сгенерирован для пользователя ID=%d (role=%s)", user.ID, user.Role)
	return tokenString, nil
}

// ParseToken проверяет и расшифровывает JWT токен.
// Отклоняет токен при любой из проблем: неверная подпись, истекший срок,
// несовпадение issuer или audience.
func (s *JWTService) ParseToken(tokenString string) (*JWTCustomClaims, error) {
	claims := &JWTCustomClaims{}

	keyFunc := func(token *jwt.Token) (interface{}, error) {
		// Проверяем метод подписи токена
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			log.Printf("[JWT] Неожиданный метод подписи: %v", token.Header["alg"])
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, keyFunc)
	if err != nil {
		// Более подробное логирование ошибок JWT
		var ve *jwt.ValidationError
		if errors.As(err, &ve) {
			switch {
			case ve.Errors&jwt.ValidationErrorMalformed != 0:
				log.Printf("[JWT] Ошибка: токен имеет неверный формат")
				return nil, errors.New("token is malformed")
			case ve.Errors&jwt.ValidationErrorExpired != 0:
				log.Printf("[JWT] Ошибка: истек срок действия токена для пользователя ID=%d", claims.UserID)
				return nil, errors.New("token is expired")
			case ve.Errors&jwt.ValidationErrorNotValidYet != 0:
				log.Printf("[JWT] Ошибка: токен еще не действителен")
				return nil, errors.New("token not valid yet")
			case ve.Errors&jwt.ValidationErrorSignatureInvalid != 0:
				log.Printf("[JWT] Ошибка: неверная подпись токена для пользователя ID=%d", claims.UserID)
				return nil, errors.New("signature is invalid")
			default:
				log.Printf("[JWT] Ошибка при разборе токена: %v", err)
				return nil, errors.New("token validation failed")
			}
		}
		log.Printf("[JWT] Ошибка при разборе токена: %v", err)
		return nil, err
	}

	if !token.Valid {
		log.Printf("[JWT] Токен недействителен")
		return nil, errors.New("invalid token")
	}

	// Проверяем издателя и аудиторию — несовпадение означает отказ
	if !claims.VerifyIssuer(s.issuer, true) {
		log.Printf("[JWT] Ошибка: неожиданный издатель токена '%s' для пользователя ID=%d", claims.Issuer, claims.UserID)
		return nil, errors.New("invalid token issuer")
	}
	if !claims.VerifyAudience(s.audience, true) {
		log.Printf("[JWT] Ошибка: неожиданная аудитория токена для пользователя ID=%d", claims.UserID)
		return nil, errors.New("invalid token audience")
	}

	return claims, nil
}
