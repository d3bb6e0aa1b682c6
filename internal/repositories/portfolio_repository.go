package repositories

import (
	"errors"

	"portfolio_backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrPortfolioNotFound = errors.New("portfolio not found")

	// ErrCollectionNotFound покрывает и отсутствие самого документа
	// портфолио: внешний фильтр {userName, collectionID} не нашел пары
	ErrCollectionNotFound = errors.New("collection not found")
	ErrCardNotFound       = errors.New("card not found")
)

type PortfolioRepository interface {
	FindByUserName(db *gorm.DB, userName string) (*models.Portfolio, error)

	// AddCollection создает документ портфолио, если его еще нет (upsert)
	AddCollection(db *gorm.DB, userName, name string) ([]models.Collection, error)
	EditCollection(db *gorm.DB, userName, collectionID, name string) ([]models.Collection, error)
	DeleteCollection(db *gorm.DB, userName, collectionID string) ([]models.Collection, error)

	AddCard(db *gorm.DB, userName, collectionID string, card models.Card) ([]models.Collection, error)
	EditCard(db *gorm.DB, userName, collectionID, cardID string, card models.Card) ([]models.Collection, error)
	DeleteCard(db *gorm.DB, userName, collectionID, cardID string) ([]models.Collection, error)
}

type PortfolioRepositoryImpl struct{}

func NewPortfolioRepository() PortfolioRepository {
	return &PortfolioRepositoryImpl{}
}

func (r *PortfolioRepositoryImpl) FindByUserName(db *gorm.DB, userName string) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	err := db.First(&portfolio, "user_name = ?", userName).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPortfolioNotFound
		}
		return nil, err
	}
	return &portfolio, nil
}

func (r *PortfolioRepositoryImpl) lockByUserName(tx *gorm.DB, userName string) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&portfolio, "user_name = ?", userName).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPortfolioNotFound
		}
		return nil, err
	}
	return &portfolio, nil
}

func (r *PortfolioRepositoryImpl) AddCollection(db *gorm.DB, userName, name string) ([]models.Collection, error) {
	var out []models.Collection
	err := db.Transaction(func(tx *gorm.DB) error {
		newCollection := models.Collection{
			ID:    uuid.NewString(),
			Name:  name,
			Cards: []models.Card{},
		}

		portfolio, err := r.lockByUserName(tx, userName)
		if errors.Is(err, ErrPortfolioNotFound) {
			// Первая коллекция: документа еще нет, создаем (upsert)
			portfolio = &models.Portfolio{
				UserName:    userName,
				Collections: datatypes.NewJSONSlice([]models.Collection{newCollection}),
			}
			if err := tx.Create(portfolio).Error; err != nil {
				return err
			}
			out = portfolio.Collections
			return nil
		}
		if err != nil {
			return err
		}

		portfolio.Collections = append(portfolio.Collections, newCollection)
		if err := tx.Model(portfolio).Update("collections", portfolio.Collections).Error; err != nil {
			return err
		}
		out = portfolio.Collections
		return nil
	})
	return out, err
}

func (r *PortfolioRepositoryImpl) EditCollection(db *gorm.DB, userName, collectionID, name string) ([]models.Collection, error) {
	var out []models.Collection
	err := db.Transaction(func(tx *gorm.DB) error {
		portfolio, err := r.lockByUserName(tx, userName)
		if errors.Is(err, ErrPortfolioNotFound) {
			return ErrCollectionNotFound
		}
		if err != nil {
			return err
		}

		collection := portfolio.FindCollection(collectionID)
		if collection == nil {
			return ErrCollectionNotFound
		}
		collection.Name = name

		if err := tx.Model(portfolio).Update("collections", portfolio.Collections).Error; err != nil {
			return err
		}
		out = portfolio.Collections
		return nil
	})
	return out, err
}

func (r *PortfolioRepositoryImpl) DeleteCollection(db *gorm.DB, userName, collectionID string) ([]models.Collection, error) {
	var out []models.Collection
	err := db.Transaction(func(tx *gorm.DB) error {
		portfolio, err := r.lockByUserName(tx, userName)
		if errors.Is(err, ErrPortfolioNotFound) {
			return ErrCollectionNotFound
		}
		if err != nil {
			return err
		}

		if !portfolio.RemoveCollection(collectionID) {
			return ErrCollectionNotFound
		}

		if err := tx.Model(portfolio).Update("collections", portfolio.Collections).Error; err != nil {
			return err
		}
		out = portfolio.Collections
		return nil
	})
	return out, err
}

func (r *PortfolioRepositoryImpl) AddCard(db *gorm.DB, userName, collectionID string, card models.Card) ([]models.Collection, error) {
	var out []models.Collection
	err := db.Transaction(func(tx *gorm.DB) error {
		portfolio, err := r.lockByUserName(tx, userName)
		if errors.Is(err, ErrPortfolioNotFound) {
			return ErrCollectionNotFound
		}
		if err != nil {
			return err
		}

		collection := portfolio.FindCollection(collectionID)
		if collection == nil {
			return ErrCollectionNotFound
		}

		card.ID = uuid.NewString()
		collection.Cards = append(collection.Cards, card)

		if err := tx.Model(portfolio).Update("collections", portfolio.Collections).Error; err != nil {
			return err
		}
		out = portfolio.Collections
		return nil
	})
	return out, err
}

func (r *PortfolioRepositoryImpl) EditCard(db *gorm.DB, userName, collectionID, cardID string, card models.Card) ([]models.Collection, error) {
	var out []models.Collection
	err := db.Transaction(func(tx *gorm.DB) error {
		portfolio, err := r.lockByUserName(tx, userName)
		if errors.Is(err, ErrPortfolioNotFound) {
			return ErrCardNotFound
		}
		if err != nil {
			return err
		}

		collection := portfolio.FindCollection(collectionID)
		if collection == nil {
			return ErrCardNotFound
		}
		if !collection.ReplaceCard(cardID, card) {
			return ErrCardNotFound
		}

		if err := tx.Model(portfolio).Update("collections", portfolio.Collections).Error; err != nil {
			return err
		}
		out = portfolio.Collections
		return nil
	})
	return out, err
}

func (r *PortfolioRepositoryImpl) DeleteCard(db *gorm.DB, userName, collectionID, cardID string) ([]models.Collection, error) {
	var out []models.Collection
	err := db.Transaction(func(tx *gorm.DB) error {
		portfolio, err := r.lockByUserName(tx, userName)
		if errors.Is(err, ErrPortfolioNotFound) {
			return ErrCardNotFound
		}
		if err != nil {
			return err
		}

		collection := portfolio.FindCollection(collectionID)
		if collection == nil {
			return ErrCardNotFound
		}
		// Удаление несуществующей карточки - not-found, не тихий успех
		if !collection.RemoveCard(cardID) {
			return ErrCardNotFound
		}

		if err := tx.Model(portfolio).Update("collections", portfolio.Collections).Error; err != nil {
			return err
		}
		out = portfolio.Collections
		return nil
	})
	return out, err
}
