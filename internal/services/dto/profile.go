package dto

import (
	"gorm.io/datatypes"

	"portfolio_backend/internal/models"
)

// UpdateProfileRequest - редактирование отображаемых полей профиля.
// Владелец берется из токена, а не из тела запроса.
// Skills хранится как произвольный JSON: фронтенд сам определяет его форму.
type UpdateProfileRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Skills      datatypes.JSON  `json:"skills"`
	Location    string          `json:"location"`
	Social      []models.Social `json:"social"`
}

// ProfileDisplayResponse - подмножество профиля, возвращаемое после обновления
type ProfileDisplayResponse struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Skills      datatypes.JSON  `json:"skills"`
	Location    string          `json:"location"`
	Social      []models.Social `json:"social"`
}

// AboutRequest - сохранение секции "about"
type AboutRequest struct {
	About string `json:"about"`
}

// AboutResponse - тело ответа save-about
type AboutResponse struct {
	About string `json:"about"`
}

// PositionInput - позиция опыта работы (add/edit)
type PositionInput struct {
	Title             string           `json:"title"`
	Company           string           `json:"company"`
	Location          string           `json:"location"`
	IsCurrentPosition bool             `json:"isCurrentPosition"`
	StartedAt         models.MonthYear `json:"startedAt"`
	EndedAt           models.MonthYear `json:"endedAt"`
	Description       string           `json:"description"`
}

// PositionsResponse - актуальный список позиций после мутации
type PositionsResponse struct {
	Positions []models.Position `json:"positions"`
}

// EducationInput - запись об образовании (add/edit)
type EducationInput struct {
	Title         string `json:"title"`
	Location      string `json:"location"`
	StartedAtYear string `json:"startedAtYear"`
	EndedAtYear   string `json:"endedAtYear"`
	Description   string `json:"description"`
}

// EducationResponse - актуальный список записей об образовании
type EducationResponse struct {
	Education []models.Education `json:"education"`
}

// ServiceInput - предлагаемая услуга (add/edit)
type ServiceInput struct {
	Name         string           `json:"name"`
	FeeType      string           `json:"feeType" validate:"omitempty,is-fee-type"`
	FixedCost    models.FixedCost `json:"fixedCost"`
	Skills       []string         `json:"skills"`
	Description  string           `json:"description"`
	Deliverables string           `json:"deliverables"`
}

// ServicesResponse - актуальный список услуг
type ServicesResponse struct {
	Services []models.Service `json:"services"`
}
