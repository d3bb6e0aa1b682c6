package dto

// RegisterRequest - запрос регистрации
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	UserName string `json:"userName" validate:"required"`

	// Необязательная роль; пустая роль означает "user"
	Role string `json:"role,omitempty"`
}

// LoginRequest - запрос входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse - ответ с JWT-токеном
type TokenResponse struct {
	Token string `json:"token"`
}

// UserInfo - публичная информация о пользователе
type UserInfo struct {
	Name     string `json:"name"`
	UserName string `json:"userName"`
}

// UserInfoResponse - обертка для /auth/profile
type UserInfoResponse struct {
	User UserInfo `json:"user"`
}
