package dto

import (
	"portfolio_backend/internal/models"
)

// CollectionRequest - создание или переименование коллекции
type CollectionRequest struct {
	Name string `json:"name"`
}

// CardRequest - тело add-card / edit-card; карточка вложена под ключом "card"
type CardRequest struct {
	Card CardInput `json:"card"`
}

// CardInput - содержимое карточки портфолио
type CardInput struct {
	Style     string         `json:"style"`
	Color     string         `json:"color"`
	Size      string         `json:"size"`
	Opacity   float64        `json:"opacity"`
	Body      string         `json:"body"`
	URL       string         `json:"url"`
	Image     string         `json:"image"`
	IsSubPage bool           `json:"isSubPage"`
	SubPage   models.SubPage `json:"subPage"`
}

// CollectionsResponse - актуальный список коллекций после мутации.
// Ключ "portfolio" исторический: клиент ожидает именно его.
type CollectionsResponse struct {
	Portfolio []models.Collection `json:"portfolio"`
}

// PortfolioResponse - профиль вместе с портфолио (превью и личный кабинет).
// Отсутствующее портфолио сериализуется как null, клиент на это полагается.
type PortfolioResponse struct {
	Profile   *models.Profile   `json:"profile"`
	Portfolio *models.Portfolio `json:"portfolio"`
}

// OwnPortfolioResponse - ответ GET /api/ для свежесозданного профиля
type OwnPortfolioResponse struct {
	Profile *models.Profile `json:"profile"`
}

// PublicServicesResponse - услуги профиля по имени пользователя
type PublicServicesResponse struct {
	Services []models.Service `json:"services"`
}
