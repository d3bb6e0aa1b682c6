package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio_backend/internal/services"
	"portfolio_backend/internal/services/dto"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

// RegisterRoutes регистрирует маршруты редактирования профиля.
// Все они требуют валидного токена.
func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	protected := rg.Group("", authMW)
	{
		protected.POST("/", h.UpdateProfile)
		protected.POST("/save-about", h.SaveAbout)

		protected.POST("/add-position", h.AddPosition)
		protected.POST("/edit-position", h.EditPosition)
		protected.POST("/delete-position", h.DeletePosition)

		protected.POST("/add-education", h.AddEducation)
		protected.POST("/edit-education", h.EditEducation)
		protected.POST("/delete-education", h.DeleteEducation)

		protected.POST("/add-service", h.AddService)
		protected.POST("/edit-service", h.EditService)
		protected.POST("/delete-service", h.DeleteService)
	}
}

// UpdateProfile обновляет отображаемые поля профиля владельца токена
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userName, ok := h.RequireUserName(c, "update the profile")
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindJSON(c, &req) {
		return
	}

	response, err := h.profileService.UpdateDisplayFields(h.GetDB(c), userName, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ProfileHandler) SaveAbout(c *gin.Context) {
	userName, ok := h.RequireUserName(c, "save about")
	if !ok {
		return
	}

	var req dto.AboutRequest
	if !h.BindJSON(c, &req) {
		return
	}

	response, err := h.profileService.SaveAbout(h.GetDB(c), userName, req.About)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// --- Опыт работы ---

func (h *ProfileHandler) AddPosition(c *gin.Context) {
	userName, ok := h.RequireUserName(c, "add position")
	if !ok {
		return
	}

	var in dto.PositionInput
	if !h.BindJSON(c, &in) {
		return
	}

	response, err := h.profileService.AddPosition(h.GetDB(c), userName, in)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ProfileHandler) EditPosition(c *gin.Context) {
	userName, ok := h.RequireUserName(c, "edit position")
	if !ok {
		return
	}

	positionID, ok := h.RequireQuery(c, "positionId", "Position ID")
	if !ok {
		return
	}

	var in dto.PositionInput
	if !h.BindJSON(c, &in) {
		return
	}

	response, err := h.profileService.EditPosition(h.GetDB(c), userName, positionID, in)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ProfileHandler) DeletePosition(c *gin.Context) {
	userName, ok := h.RequireUserName(c, "delete position")
	if !ok {
		return
	}

	positionID, ok := h.RequireQuery(c, "positionId", "Position ID")
	if !ok {
		return
	}

	response, err := h.profileService.DeletePosition(h.GetDB(c), userName, positionID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// --- Образование ---

func (h *ProfileHandler) AddEducation(c *gin.Context) {
	userName, ok := h.RequireUserName(c, "add education")
	if !ok {
		return
	}

	var in dto.EducationInput
	if !h.BindJSON(c, &in) {
		return
	}

	response, err := h.profileService.AddEducation(h.GetDB(c), userName, in)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ProfileHandler) EditEducation(c *gin.Context) {
	userName, ok := h.RequireUserName(c, "edit education")
	if !ok {
		return
	}

	educationID, ok := h.RequireQuery(c, "educationId", "Education ID")
	if !ok {
		return
	}

	var in dto.EducationInput
	if !h.BindJSON(c, &in) {
		return
	}

	response, err := h.profileService.EditEducation(h.GetDB(c), userName, educationID, in)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ProfileHandler) DeleteEducation(c *gin.Context) {
	userName, ok := h.RequireUserName(c, "delete education")
	if !ok {
		return
	}

	educationID, ok := h.RequireQuery(c, "educationId", "Education ID")
	if !ok {
		return
	}

	response, err := h.profileService.DeleteEducation(h.GetDB(c), userName, educationID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// --- Услуги ---

func (h *ProfileHandler) AddService(c *gin.Context) {
	userName, ok := h.RequireUserName(c, "add service")
	if !ok {
		return
	}

	var in dto.ServiceInput
	if !h.BindJSON(c, &in) {
		return
	}

	response, err := h.profileService.AddService(h.GetDB(c), userName, in)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ProfileHandler) EditService(c *gin.Context) {
	userName, ok := h.RequireUserName(c, "edit service")
	if !ok {
		return
	}

	serviceID, ok := h.RequireQuery(c, "serviceId", "Service ID")
	if !ok {
		return
	}

	var in dto.ServiceInput
	if !h.BindJSON(c, &in) {
		return
	}

	response, err := h.profileService.EditService(h.GetDB(c), userName, serviceID, in)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ProfileHandler) DeleteService(c *gin.Context) {
	userName, ok := h.RequireUserName(c, "delete service")
	if !ok {
		return
	}

	serviceID, ok := h.RequireQuery(c, "serviceId", "Service ID")
	if !ok {
		return
	}

	response, err := h.profileService.DeleteService(h.GetDB(c), userName, serviceID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
