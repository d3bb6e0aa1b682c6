package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"portfolio_backend/internal/auth"
	"portfolio_backend/internal/logger"
	"portfolio_backend/pkg/apperrors"
	"portfolio_backend/pkg/contextkeys"
)

type BaseHandler struct {
	tokens *auth.TokenManager
}

func NewBaseHandler(tokens *auth.TokenManager) *BaseHandler {
	return &BaseHandler{
		tokens: tokens,
	}
}

// GetDB извлекает *gorm.DB (пул или транзакцию) из gin.Context.
// Вызывается в каждом хендлере, который обращается к сервисам.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	dbKey := string(contextkeys.DBContextKey)

	val, ok := c.Get(dbKey)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: db key not found in context", "key", dbKey)
		panic("critical error: DBMiddleware did not set the db key")
	}

	db, ok := val.(*gorm.DB)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: db in context is not *gorm.DB", "key", dbKey, "type", fmt.Sprintf("%T", val))
		panic("critical error: db in context has incorrect type")
	}

	return db
}

// BindJSON привязывает тело запроса без валидации: обязательность
// полей проверяют сервисы, чтобы текст ошибок оставался единым.
func (h *BaseHandler) BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(c.Request.Context(), "Failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}
	return true
}

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		logger.CtxWarn(ctx, "Service error",
			"error", appErr.Message,
			"details", appErr.Details,
			"path", c.Request.URL.Path,
		)
		apperrors.HandleError(c, appErr)
	} else {
		logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
}

// RequireUserName достает username владельца из токена запроса.
// Каждая операция проверяет его заново и называет себя в тексте
// ошибки: "Username is required to <action>".
func (h *BaseHandler) RequireUserName(c *gin.Context, action string) (string, bool) {
	userName, err := h.tokens.UserNameFromRequest(c.Request)
	if err != nil || userName == "" {
		logger.CtxWarn(c.Request.Context(), "Missing username in token",
			"path", c.Request.URL.Path,
			"ip", c.ClientIP(),
		)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Username is required to "+action))
		return "", false
	}
	return userName, true
}

// RequireQuery возвращает обязательный query-параметр или отвечает 400
func (h *BaseHandler) RequireQuery(c *gin.Context, key, label string) (string, bool) {
	value := c.Query(key)
	if value == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError(label+" is required"))
		return "", false
	}
	return value, true
}
