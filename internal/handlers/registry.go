package handlers

import (
	"portfolio_backend/internal/auth"
	"portfolio_backend/internal/services"
)

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler      *AuthHandler
	ProfileHandler   *ProfileHandler
	PortfolioHandler *PortfolioHandler
	MediaHandler     *MediaHandler
}

// NewAppHandlers собирает хэндлеры поверх контейнера сервисов
func NewAppHandlers(container *services.ServiceContainer, tokens *auth.TokenManager) *AppHandlers {
	base := NewBaseHandler(tokens)

	return &AppHandlers{
		AuthHandler:      NewAuthHandler(base, container.AuthService),
		ProfileHandler:   NewProfileHandler(base, container.ProfileService),
		PortfolioHandler: NewPortfolioHandler(base, container.PortfolioService),
		MediaHandler:     NewMediaHandler(base, container.MediaService),
	}
}
