package dto

import (
	"time"

	"github.com/yourusername/quizhub-api/internal/domain/entity"
)

// UserResponse — пользователь в формате для клиента (без хеша пароля)
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserResponse создает DTO пользователя
func NewUserResponse(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Role:      user.Role,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// NewUserResponseList создает список DTO пользователей
func NewUserResponseList(users []entity.User) []*UserResponse {
	list := make([]*UserResponse, 0, len(users))
	for i := range users {
		list = append(list, NewUserResponse(&users[i]))
	}
	return list
}
