package apperrors

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// HandleError - преобразует любую ошибку в HTTP-ответ.
// Наружу уходит только {"message": ...}: структурные коды
// не являются частью контракта API.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		slog.Error("server error", "error", appErr.Error())
	}

	c.JSON(appErr.HTTPCode, gin.H{"message": appErr.Message})
}

// AsAppError - пытается преобразовать error в *AppError
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
