package models

import (
	"gorm.io/datatypes"
)

// SubPageLink - ссылки подстраницы карточки
type SubPageLink struct {
	Code string `json:"code"`
	Live string `json:"live"`
}

// SubPageImage - изображение подстраницы
type SubPageImage struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// SubPage - опциональная подстраница карточки с деталями проекта
type SubPage struct {
	Description   string         `json:"description"`
	Functionality string         `json:"functionality"`
	Tags          []string       `json:"tags"`
	Link          SubPageLink    `json:"link"`
	Images        []SubPageImage `json:"images"`
}

// Card - визуальная карточка внутри коллекции
type Card struct {
	ID        string  `json:"id"`
	Style     string  `json:"style"`
	Color     string  `json:"color"`
	Size      string  `json:"size"`
	Opacity   float64 `json:"opacity"`
	Body      string  `json:"body"`
	URL       string  `json:"url"`
	Image     string  `json:"image"`
	IsSubPage bool    `json:"isSubPage"`
	SubPage   SubPage `json:"subPage"`
}

// Collection - именованная упорядоченная группа карточек
type Collection struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Cards []Card `json:"cards"`
}

// Portfolio - документ портфолио, один на userName.
// Создается лениво (upsert) при первом добавлении коллекции.
type Portfolio struct {
	BaseModel
	UserName    string                          `gorm:"uniqueIndex;not null" json:"userName"`
	Collections datatypes.JSONSlice[Collection] `gorm:"type:jsonb" json:"collections"`
}

// FindCollection возвращает указатель на коллекцию по id или nil
func (p *Portfolio) FindCollection(id string) *Collection {
	for i := range p.Collections {
		if p.Collections[i].ID == id {
			return &p.Collections[i]
		}
	}
	return nil
}

// RemoveCollection удаляет коллекцию по id
func (p *Portfolio) RemoveCollection(id string) bool {
	for i := range p.Collections {
		if p.Collections[i].ID == id {
			p.Collections = append(p.Collections[:i], p.Collections[i+1:]...)
			return true
		}
	}
	return false
}

// ReplaceCard заменяет карточку с данным id, сохраняя ее id и позицию.
// Соседние карточки и их порядок не меняются.
func (c *Collection) ReplaceCard(id string, updated Card) bool {
	for i := range c.Cards {
		if c.Cards[i].ID == id {
			updated.ID = id
			c.Cards[i] = updated
			return true
		}
	}
	return false
}

// RemoveCard удаляет карточку по id
func (c *Collection) RemoveCard(id string) bool {
	for i := range c.Cards {
		if c.Cards[i].ID == id {
			c.Cards = append(c.Cards[:i], c.Cards[i+1:]...)
			return true
		}
	}
	return false
}
