package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio_backend/internal/auth"
	"portfolio_backend/internal/handlers"
	"portfolio_backend/internal/middleware"
)

// RegisterRoutes регистрирует все HTTP маршруты приложения.
// Аутентификация под /api/auth, все остальное вместе с публичными
// просмотрами - под /api.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	tokens *auth.TokenManager,
) {
	authMW := middleware.AuthMiddleware(tokens)

	// Приветствие на корне, как и прежде просто строка
	ginRouter.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, "Welcome to the portfolio builder API")
	})

	api := ginRouter.Group("/api")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.ProfileHandler.RegisterRoutes(api, authMW)
		appHandlers.PortfolioHandler.RegisterRoutes(api, authMW)
		appHandlers.MediaHandler.RegisterRoutes(api, authMW)
	}
}
