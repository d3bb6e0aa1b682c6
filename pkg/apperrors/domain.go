package apperrors

import "net/http"

/*
Предопределенные доменные ошибки портфолио-сервиса.
Текст сообщений - это контракт API, его видят клиенты.
*/

// --- Аутентификация ---

var (
	// ErrShortPassword - пароль короче 6 символов
	ErrShortPassword = New(CodeValidationFailed, "auth", "Password is too short (minimum is 6 characters)", http.StatusBadRequest)

	// ErrEmailTaken - email уже занят. Проверка email идет ПЕРЕД
	// проверкой username: при двойном дубликате клиент видит эту ошибку.
	ErrEmailTaken = New(CodeAlreadyExists, "auth", "EmailID has already been taken", http.StatusBadRequest)

	// ErrUsernameTaken - username уже занят
	ErrUsernameTaken = New(CodeAlreadyExists, "auth", "Username has already been taken", http.StatusBadRequest)

	// ErrNoUserFound - логин с неизвестным email
	ErrNoUserFound = New(CodeInvalidCredentials, "auth", "No User Found", http.StatusBadRequest)

	// ErrInvalidCredentials - неверный пароль
	ErrInvalidCredentials = New(CodeInvalidCredentials, "auth", "Invalid Email or password.", http.StatusBadRequest)

	// ErrLoginRequired - запрос без валидного токена к профильным данным
	ErrLoginRequired = New(CodeUnauthorized, "auth", "Login required to manage profile", http.StatusBadRequest)

	// ErrTokenExpired - токен корректен, но просрочен
	ErrTokenExpired = New(CodeTokenExpired, "auth", "Token Expired", http.StatusBadRequest)

	// ErrAccountGone - токен валиден, но пользователя уже нет
	ErrAccountGone = New(CodeNotFound, "auth", "This account doesn't exist", http.StatusBadRequest)

	// ErrAccountNotExist - публичный запрос к несуществующему профилю
	ErrAccountNotExist = New(CodeNotFound, "profile", "Account Not Exist", http.StatusBadRequest)
)

// --- Ресурсы профиля и портфолио ---

var (
	ErrProfileNotFound    = New(CodeNotFound, "profile", "Profile not found", http.StatusNotFound)
	ErrPortfolioNotFound  = New(CodeNotFound, "portfolio", "Portfolio not found", http.StatusNotFound)
	ErrCollectionNotFound = New(CodeNotFound, "portfolio", "Collection not found", http.StatusNotFound)
	ErrCardNotFound       = New(CodeNotFound, "portfolio", "Card or Collection not found", http.StatusNotFound)
	ErrPositionNotFound   = New(CodeNotFound, "profile", "Position not found", http.StatusNotFound)
	ErrEducationNotFound  = New(CodeNotFound, "profile", "Education Record Not Found", http.StatusNotFound)
	ErrServiceNotFound    = New(CodeNotFound, "profile", "Service not found", http.StatusNotFound)
)

// --- Медиа ---

var (
	ErrNoFileUploaded   = New(CodeValidationFailed, "media", "No file uploaded", http.StatusBadRequest)
	ErrImageUploadFail  = New(CodeExternalServiceError, "media", "Image upload failed", http.StatusInternalServerError)
	ErrImageDeleteFail  = New(CodeExternalServiceError, "media", "Failed to delete image", http.StatusBadRequest)
	ErrPublicIDRequired = New(CodeValidationFailed, "media", "Public ID is required", http.StatusBadRequest)
)
