package models

import (
	"gorm.io/datatypes"
)

// Social - ссылка на внешнюю площадку
type Social struct {
	Platform string `json:"platform"`
	Link     string `json:"link"`
}

// MonthYear - точка во времени в том виде, как ее вводит клиент
type MonthYear struct {
	Month string `json:"month"`
	Year  string `json:"year"`
}

// Position - запись об опыте работы. ID уникален внутри массива
// positions одного профиля, но не глобально.
type Position struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Company           string    `json:"company"`
	Location          string    `json:"location"`
	IsCurrentPosition bool      `json:"isCurrentPosition"`
	StartedAt         MonthYear `json:"startedAt"`
	EndedAt           MonthYear `json:"endedAt"`
	Description       string    `json:"description"`
}

// Education - запись об образовании
type Education struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Location      string `json:"location"`
	StartedAtYear string `json:"startedAtYear"`
	EndedAtYear   string `json:"endedAtYear"`
	Description   string `json:"description"`
}

// FixedCost - стоимость услуги с фиксированной ставкой
type FixedCost struct {
	Currency     string `json:"currency"`
	Cost         string `json:"cost"`
	DurationType string `json:"durationType"`
}

// Service - услуга, которую владелец профиля предлагает публично
type Service struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	FeeType      string    `json:"feeType"`
	FixedCost    FixedCost `json:"fixedCost"`
	Skills       []string  `json:"skills"`
	Description  string    `json:"description"`
	Deliverables string    `json:"deliverables"`
}

// Profile - документ профиля, один на userName. Вложенные коллекции
// хранятся JSONB-массивами: семантика документа, а не реляционных
// связей - мутации всегда адресуют элемент по id внутри массива.
type Profile struct {
	BaseModel
	UserName         string                         `gorm:"uniqueIndex;not null" json:"userName"`
	Name             string                         `json:"name"`
	Description      string                         `json:"description"`
	Skills           datatypes.JSON                 `gorm:"type:jsonb" json:"skills"`
	Location         string                         `json:"location"`
	Image            string                         `json:"image"`
	About            string                         `json:"about"`
	Social           datatypes.JSONSlice[Social]    `gorm:"type:jsonb" json:"social"`
	Positions        datatypes.JSONSlice[Position]  `gorm:"type:jsonb" json:"positions"`
	EducationRecords datatypes.JSONSlice[Education] `gorm:"type:jsonb" json:"educationRecords"`
	Services         datatypes.JSONSlice[Service]   `gorm:"type:jsonb" json:"services"`
}

// ReplacePosition заменяет элемент с данным id, сохраняя его id и
// позицию в массиве. Соседние элементы не трогаются.
func (p *Profile) ReplacePosition(id string, updated Position) bool {
	for i := range p.Positions {
		if p.Positions[i].ID == id {
			updated.ID = id
			p.Positions[i] = updated
			return true
		}
	}
	return false
}

// RemovePosition удаляет элемент по id. Отсутствие элемента - не
// no-op, а сигнал вызывающему вернуть not-found.
func (p *Profile) RemovePosition(id string) bool {
	for i := range p.Positions {
		if p.Positions[i].ID == id {
			p.Positions = append(p.Positions[:i], p.Positions[i+1:]...)
			return true
		}
	}
	return false
}

// ReplaceEducation заменяет запись об образовании по id
func (p *Profile) ReplaceEducation(id string, updated Education) bool {
	for i := range p.EducationRecords {
		if p.EducationRecords[i].ID == id {
			updated.ID = id
			p.EducationRecords[i] = updated
			return true
		}
	}
	return false
}

// RemoveEducation удаляет запись об образовании по id
func (p *Profile) RemoveEducation(id string) bool {
	for i := range p.EducationRecords {
		if p.EducationRecords[i].ID == id {
			p.EducationRecords = append(p.EducationRecords[:i], p.EducationRecords[i+1:]...)
			return true
		}
	}
	return false
}

// ReplaceService заменяет услугу по id
func (p *Profile) ReplaceService(id string, updated Service) bool {
	for i := range p.Services {
		if p.Services[i].ID == id {
			updated.ID = id
			p.Services[i] = updated
			return true
		}
	}
	return false
}

// RemoveService удаляет услугу по id
func (p *Profile) RemoveService(id string) bool {
	for i := range p.Services {
		if p.Services[i].ID == id {
			p.Services = append(p.Services[:i], p.Services[i+1:]...)
			return true
		}
	}
	return false
}
