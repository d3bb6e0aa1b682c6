package services

import (
	"portfolio_backend/internal/auth"
	"portfolio_backend/internal/imageprocessor"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/storage"
	"portfolio_backend/internal/validator"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService      AuthService
	ProfileService   ProfileService
	PortfolioService PortfolioService
	MediaService     MediaService
}

// NewServiceContainer собирает сервисы со всеми зависимостями
func NewServiceContainer(
	tokens *auth.TokenManager,
	store storage.Storage,
	processor *imageprocessor.Processor,
	validate *validator.Validator,
	mediaFolder string,
) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewProfileRepository()
	portfolioRepo := repositories.NewPortfolioRepository()

	return &ServiceContainer{
		AuthService:      NewAuthService(userRepo, tokens, validate),
		ProfileService:   NewProfileService(profileRepo, validate),
		PortfolioService: NewPortfolioService(userRepo, profileRepo, portfolioRepo),
		MediaService:     NewMediaService(store, processor, profileRepo, mediaFolder),
	}
}
