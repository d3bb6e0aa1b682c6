package services

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"portfolio_backend/internal/auth"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/internal/validator"
	"portfolio_backend/pkg/apperrors"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.TokenResponse, error)
	GetUserInfo(db *gorm.DB, r *http.Request) (*dto.UserInfoResponse, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
	tokens   *auth.TokenManager
	validate *validator.Validator
}

func NewAuthService(userRepo repositories.UserRepository, tokens *auth.TokenManager, validate *validator.Validator) AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		tokens:   tokens,
		validate: validate,
	}
}

// Register - регистрация нового пользователя.
// Успешная регистрация сразу возвращает токен входа.
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	if err := s.validate.Validate(req); err != nil {
		return nil, apperrors.ValidationError(err)
	}

	if len(req.Password) < 6 {
		return nil, apperrors.ErrShortPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		UserName:     req.UserName,
		PasswordHash: hash,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		switch {
		case errors.Is(err, repositories.ErrEmailExists):
			return nil, apperrors.ErrEmailTaken
		case errors.Is(err, repositories.ErrUserNameExists):
			return nil, apperrors.ErrUsernameTaken
		}
		return nil, apperrors.InternalError(err)
	}

	// Роль из запроса попадает в токен как есть; пустая станет "user"
	token, err := s.tokens.Generate(user.ID, user.UserName, req.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.TokenResponse{Token: token}, nil
}

// Login - аутентификация пользователя
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if err := s.validate.Validate(req); err != nil {
		return nil, apperrors.ValidationError(err)
	}

	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNoUserFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.UserName, "")
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.TokenResponse{Token: token}, nil
}

// GetUserInfo возвращает имя и username владельца токена.
// Просроченный токен отличается от невалидного: клиент по "Token Expired"
// инициирует повторный вход.
func (s *AuthServiceImpl) GetUserInfo(db *gorm.DB, r *http.Request) (*dto.UserInfoResponse, error) {
	userID, err := s.tokens.UserIDFromRequest(r)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrLoginRequired
	}
	if userID == "" {
		return nil, apperrors.ErrLoginRequired
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrAccountGone
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.UserInfoResponse{
		User: dto.UserInfo{
			Name:     user.Name,
			UserName: user.UserName,
		},
	}, nil
}
