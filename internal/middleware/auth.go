package middleware

import (
	"net/http"

	"portfolio_backend/internal/auth"
	"portfolio_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware - guard для защищенных маршрутов.
// Запрос без заголовка Authorization отклоняется до бизнес-логики;
// невалидная подпись - отдельное сообщение.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := auth.TokenFromRequest(c.Request)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "You are not authenticated!"})
			return
		}

		claims, err := tokens.Parse(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		// Токен с пустым subject отклоняется как невалидный.
		// Пропускать такой запрос дальше нельзя: все мутации
		// скоупятся по личности владельца.
		if claims.Subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		// Сохраняем claims в контекст
		c.Set("userID", claims.Subject)
		c.Set("userName", claims.UserName)
		c.Set("role", claims.Role)

		ctx := logger.WithUserID(c.Request.Context(), claims.Subject)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
