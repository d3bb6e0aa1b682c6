package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio_backend/internal/services"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/pkg/apperrors"
)

type PortfolioHandler struct {
	*BaseHandler
	portfolioService services.PortfolioService
}

func NewPortfolioHandler(base *BaseHandler, portfolioService services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		BaseHandler:      base,
		portfolioService: portfolioService,
	}
}

// RegisterRoutes регистрирует маршруты портфолио.
// Просмотр по username публичный, все остальное за токеном.
func (h *PortfolioHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/profile/:username", h.GetPreview)
	rg.GET("/services/:username", h.GetServices)

	protected := rg.Group("", authMW)
	{
		protected.GET("/", h.GetOwnPortfolio)

		protected.POST("/add-collection", h.AddCollection)
		protected.POST("/edit-collection", h.EditCollection)
		protected.POST("/delete-collection", h.DeleteCollection)

		protected.POST("/add-card", h.AddCard)
		protected.POST("/edit-card", h.EditCard)
		protected.POST("/delete-card", h.DeleteCard)
	}
}

// GetOwnPortfolio отдает профиль и портфолио владельца токена.
// При первом заходе профиль создается лениво, и ответ содержит
// только его, без ключа portfolio.
func (h *PortfolioHandler) GetOwnPortfolio(c *gin.Context) {
	userID := c.GetString("userID")

	response, created, err := h.portfolioService.GetOwnPortfolio(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if created {
		c.JSON(http.StatusOK, dto.OwnPortfolioResponse{Profile: response.Profile})
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *PortfolioHandler) GetPreview(c *gin.Context) {
	userName := c.Param("username")
	if userName == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Username is required"))
		return
	}

	response, err := h.portfolioService.GetPreview(h.GetDB(c), userName)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *PortfolioHandler) GetServices(c *gin.Context) {
	userName := c.Param("username")
	if userName == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Username is required"))
		return
	}

	response, err := h.portfolioService.GetServices(h.GetDB(c), userName)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// --- Коллекции ---

func (h *PortfolioHandler) AddCollection(c *gin.Context) {
	userName, ok := h.RequireUserName(c, "add collection")
	if !ok {
		return
	}

	var req dto.CollectionRequest
	if !h.BindJSON(c, &req) {
		return
	}

	response, err := h.portfolioService.AddCollection(h.GetDB(c), userName, req.Name)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *PortfolioHandler) EditCollection(c *gin.Context) {
	userName, ok := h.RequireUserName(c, "edit collection")
	if !ok {
		return
	}

	collectionID := c.Query("collectionId")

	var req dto.CollectionRequest
	if !h.BindJSON(c, &req) {
		return
	}

	response, err := h.portfolioService.EditCollection(h.GetDB(c), userName, collectionID, req.Name)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *PortfolioHandler) DeleteCollection(c *gin.Context) {
	userName, ok := h.RequireUserName(c, "delete collection")
	if !ok {
		return
	}

	collectionID, ok := h.RequireQuery(c, "collectionId", "Collection ID")
	if !ok {
		return
	}

	response, err := h.portfolioService.DeleteCollection(h.GetDB(c), userName, collectionID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// --- Карточки ---

func (h *PortfolioHandler) AddCard(c *gin.Context) {
	userName, ok := h.RequireUserName(c, "add card")
	if !ok {
		return
	}

	collectionID := c.Query("collectionId")

	var req dto.CardRequest
	if !h.BindJSON(c, &req) {
		return
	}

	response, err := h.portfolioService.AddCard(h.GetDB(c), userName, collectionID, req.Card)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *PortfolioHandler) EditCard(c *gin.Context) {
	userName, ok := h.RequireUserName(c, "edit card")
	if !ok {
		return
	}

	collectionID := c.Query("collectionId")
	cardID, ok := h.RequireQuery(c, "cardId", "Card ID")
	if !ok {
		return
	}

	var req dto.CardRequest
	if !h.BindJSON(c, &req) {
		return
	}

	response, err := h.portfolioService.EditCard(h.GetDB(c), userName, collectionID, cardID, req.Card)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *PortfolioHandler) DeleteCard(c *gin.Context) {
	userName, ok := h.RequireUserName(c, "delete card")
	if !ok {
		return
	}

	collectionID, ok := h.RequireQuery(c, "collectionId", "Collection ID")
	if !ok {
		return
	}
	cardID, ok := h.RequireQuery(c, "cardId", "Card ID")
	if !ok {
		return
	}

	response, err := h.portfolioService.DeleteCard(h.GetDB(c), userName, collectionID, cardID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
