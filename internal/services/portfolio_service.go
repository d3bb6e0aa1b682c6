package services

import (
	"errors"

	"gorm.io/gorm"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/pkg/apperrors"
)

type PortfolioService interface {
	// GetOwnPortfolio возвращает профиль и портфолио владельца токена.
	// Флаг created взводится, когда профиль создан лениво только что:
	// в этом случае портфолио в ответ не включается.
	GetOwnPortfolio(db *gorm.DB, userID string) (resp *dto.PortfolioResponse, created bool, err error)

	GetPreview(db *gorm.DB, userName string) (*dto.PortfolioResponse, error)
	GetServices(db *gorm.DB, userName string) (*dto.PublicServicesResponse, error)

	AddCollection(db *gorm.DB, userName, name string) (*dto.CollectionsResponse, error)
	EditCollection(db *gorm.DB, userName, collectionID, name string) (*dto.CollectionsResponse, error)
	DeleteCollection(db *gorm.DB, userName, collectionID string) (*dto.CollectionsResponse, error)

	AddCard(db *gorm.DB, userName, collectionID string, in dto.CardInput) (*dto.CollectionsResponse, error)
	EditCard(db *gorm.DB, userName, collectionID, cardID string, in dto.CardInput) (*dto.CollectionsResponse, error)
	DeleteCard(db *gorm.DB, userName, collectionID, cardID string) (*dto.CollectionsResponse, error)
}

type PortfolioServiceImpl struct {
	userRepo      repositories.UserRepository
	profileRepo   repositories.ProfileRepository
	portfolioRepo repositories.PortfolioRepository
}

func NewPortfolioService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	portfolioRepo repositories.PortfolioRepository,
) PortfolioService {
	return &PortfolioServiceImpl{
		userRepo:      userRepo,
		profileRepo:   profileRepo,
		portfolioRepo: portfolioRepo,
	}
}

func (s *PortfolioServiceImpl) GetOwnPortfolio(db *gorm.DB, userID string) (*dto.PortfolioResponse, bool, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, false, apperrors.ErrAccountGone
		}
		return nil, false, apperrors.InternalError(err)
	}

	profile, err := s.profileRepo.FindByUserName(db, user.UserName)
	if errors.Is(err, repositories.ErrProfileNotFound) {
		// Первый вход: профиль создается лениво из данных аккаунта
		profile = &models.Profile{
			UserName: user.UserName,
			Name:     user.Name,
		}
		if err := s.profileRepo.Create(db, profile); err != nil {
			return nil, false, apperrors.InternalError(err)
		}
		return &dto.PortfolioResponse{Profile: profile}, true, nil
	}
	if err != nil {
		return nil, false, apperrors.InternalError(err)
	}

	portfolio, err := s.portfolioRepo.FindByUserName(db, user.UserName)
	if err != nil && !errors.Is(err, repositories.ErrPortfolioNotFound) {
		return nil, false, apperrors.InternalError(err)
	}

	return &dto.PortfolioResponse{Profile: profile, Portfolio: portfolio}, false, nil
}

// GetPreview - публичный просмотр профиля с портфолио по username
func (s *PortfolioServiceImpl) GetPreview(db *gorm.DB, userName string) (*dto.PortfolioResponse, error) {
	profile, err := s.profileRepo.FindByUserName(db, userName)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrAccountNotExist
		}
		return nil, apperrors.InternalError(err)
	}

	portfolio, err := s.portfolioRepo.FindByUserName(db, userName)
	if err != nil && !errors.Is(err, repositories.ErrPortfolioNotFound) {
		return nil, apperrors.InternalError(err)
	}

	return &dto.PortfolioResponse{Profile: profile, Portfolio: portfolio}, nil
}

// GetServices - публичный список услуг профиля
func (s *PortfolioServiceImpl) GetServices(db *gorm.DB, userName string) (*dto.PublicServicesResponse, error) {
	profile, err := s.profileRepo.FindByUserName(db, userName)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrAccountNotExist
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.PublicServicesResponse{Services: []models.Service(profile.Services)}, nil
}

// --- Коллекции ---

func (s *PortfolioServiceImpl) AddCollection(db *gorm.DB, userName, name string) (*dto.CollectionsResponse, error) {
	if name == "" {
		return nil, apperrors.NewBadRequestError("Collection name is required")
	}

	collections, err := s.portfolioRepo.AddCollection(db, userName, name)
	if err != nil {
		return nil, mapPortfolioErr(err)
	}
	return &dto.CollectionsResponse{Portfolio: collections}, nil
}

func (s *PortfolioServiceImpl) EditCollection(db *gorm.DB, userName, collectionID, name string) (*dto.CollectionsResponse, error) {
	if name == "" {
		return nil, apperrors.NewBadRequestError("Collection name is required")
	}

	collections, err := s.portfolioRepo.EditCollection(db, userName, collectionID, name)
	if err != nil {
		return nil, mapPortfolioErr(err)
	}
	return &dto.CollectionsResponse{Portfolio: collections}, nil
}

func (s *PortfolioServiceImpl) DeleteCollection(db *gorm.DB, userName, collectionID string) (*dto.CollectionsResponse, error) {
	if collectionID == "" {
		return nil, apperrors.NewBadRequestError("Collection ID is required")
	}

	collections, err := s.portfolioRepo.DeleteCollection(db, userName, collectionID)
	if err != nil {
		return nil, mapPortfolioErr(err)
	}
	return &dto.CollectionsResponse{Portfolio: collections}, nil
}

// --- Карточки ---

func (s *PortfolioServiceImpl) AddCard(db *gorm.DB, userName, collectionID string, in dto.CardInput) (*dto.CollectionsResponse, error) {
	collections, err := s.portfolioRepo.AddCard(db, userName, collectionID, cardFromInput(in))
	if err != nil {
		return nil, mapPortfolioErr(err)
	}
	return &dto.CollectionsResponse{Portfolio: collections}, nil
}

func (s *PortfolioServiceImpl) EditCard(db *gorm.DB, userName, collectionID, cardID string, in dto.CardInput) (*dto.CollectionsResponse, error) {
	if cardID == "" {
		return nil, apperrors.NewBadRequestError("Card ID is required")
	}

	collections, err := s.portfolioRepo.EditCard(db, userName, collectionID, cardID, cardFromInput(in))
	if err != nil {
		return nil, mapPortfolioErr(err)
	}
	return &dto.CollectionsResponse{Portfolio: collections}, nil
}

func (s *PortfolioServiceImpl) DeleteCard(db *gorm.DB, userName, collectionID, cardID string) (*dto.CollectionsResponse, error) {
	if collectionID == "" {
		return nil, apperrors.NewBadRequestError("Collection ID is required")
	}
	if cardID == "" {
		return nil, apperrors.NewBadRequestError("Card ID is required")
	}

	collections, err := s.portfolioRepo.DeleteCard(db, userName, collectionID, cardID)
	if err != nil {
		return nil, mapPortfolioErr(err)
	}
	return &dto.CollectionsResponse{Portfolio: collections}, nil
}

// mapPortfolioErr переводит ошибки репозитория портфолио в доменные
func mapPortfolioErr(err error) error {
	switch {
	case errors.Is(err, repositories.ErrPortfolioNotFound):
		return apperrors.ErrPortfolioNotFound
	case errors.Is(err, repositories.ErrCollectionNotFound):
		return apperrors.ErrCollectionNotFound
	case errors.Is(err, repositories.ErrCardNotFound):
		return apperrors.ErrCardNotFound
	}
	return apperrors.InternalError(err)
}

func cardFromInput(in dto.CardInput) models.Card {
	return models.Card{
		Style:     in.Style,
		Color:     in.Color,
		Size:      in.Size,
		Opacity:   in.Opacity,
		Body:      in.Body,
		URL:       in.URL,
		Image:     in.Image,
		IsSubPage: in.IsSubPage,
		SubPage:   in.SubPage,
	}
}
