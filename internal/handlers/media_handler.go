package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio_backend/internal/services"
	"portfolio_backend/internal/services/dto"
)

type MediaHandler struct {
	*BaseHandler
	mediaService services.MediaService
}

func NewMediaHandler(base *BaseHandler, mediaService services.MediaService) *MediaHandler {
	return &MediaHandler{
		BaseHandler:  base,
		mediaService: mediaService,
	}
}

// RegisterRoutes регистрирует маршруты работы с изображениями
func (h *MediaHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	protected := rg.Group("", authMW)
	{
		protected.POST("/upload-image", h.UploadImage)
		protected.POST("/delete-image", h.DeleteImage)
		protected.POST("/edit-profile-image", h.EditProfileImage)
	}
}

// formFile достает файл из multipart-формы. Исторически клиент
// отправляет его в поле "image", но принимается и "file".
func formFile(c *gin.Context) *multipart.FileHeader {
	for _, field := range []string{"image", "file"} {
		if file, err := c.FormFile(field); err == nil {
			return file
		}
	}
	return nil
}

func (h *MediaHandler) UploadImage(c *gin.Context) {
	response, err := h.mediaService.UploadImage(c.Request.Context(), formFile(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *MediaHandler) DeleteImage(c *gin.Context) {
	var req dto.DeleteImageRequest
	if !h.BindJSON(c, &req) {
		return
	}

	response, err := h.mediaService.DeleteImage(c.Request.Context(), req.PublicID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// EditProfileImage меняет картинку профиля владельца токена.
// Поле imageId в форме переключает операцию на удаление текущей
// картинки. Ответ - актуальное значение image как голая JSON-строка.
func (h *MediaHandler) EditProfileImage(c *gin.Context) {
	userName, ok := h.RequireUserName(c, "update the profile")
	if !ok {
		return
	}

	imageID := c.PostForm("imageId")

	image, err := h.mediaService.EditProfileImage(c.Request.Context(), h.GetDB(c), userName, imageID, formFile(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, image)
}
