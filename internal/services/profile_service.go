package services

import (
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/internal/validator"
	"portfolio_backend/pkg/apperrors"
)

type ProfileService interface {
	UpdateDisplayFields(db *gorm.DB, userName string, req *dto.UpdateProfileRequest) (*dto.ProfileDisplayResponse, error)
	SaveAbout(db *gorm.DB, userName, about string) (*dto.AboutResponse, error)

	AddPosition(db *gorm.DB, userName string, in dto.PositionInput) (*dto.PositionsResponse, error)
	EditPosition(db *gorm.DB, userName, positionID string, in dto.PositionInput) (*dto.PositionsResponse, error)
	DeletePosition(db *gorm.DB, userName, positionID string) (*dto.PositionsResponse, error)

	AddEducation(db *gorm.DB, userName string, in dto.EducationInput) (*dto.EducationResponse, error)
	EditEducation(db *gorm.DB, userName, educationID string, in dto.EducationInput) (*dto.EducationResponse, error)
	DeleteEducation(db *gorm.DB, userName, educationID string) (*dto.EducationResponse, error)

	AddService(db *gorm.DB, userName string, in dto.ServiceInput) (*dto.ServicesResponse, error)
	EditService(db *gorm.DB, userName, serviceID string, in dto.ServiceInput) (*dto.ServicesResponse, error)
	DeleteService(db *gorm.DB, userName, serviceID string) (*dto.ServicesResponse, error)
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
	validate    *validator.Validator
}

func NewProfileService(profileRepo repositories.ProfileRepository, validate *validator.Validator) ProfileService {
	return &ProfileServiceImpl{
		profileRepo: profileRepo,
		validate:    validate,
	}
}

// UpdateDisplayFields обновляет отображаемые поля профиля и возвращает
// только их: image и about этим запросом не трогаются.
func (s *ProfileServiceImpl) UpdateDisplayFields(db *gorm.DB, userName string, req *dto.UpdateProfileRequest) (*dto.ProfileDisplayResponse, error) {
	fields := map[string]interface{}{
		"name":        req.Name,
		"description": req.Description,
		"skills":      req.Skills,
		"location":    req.Location,
		"social":      datatypes.NewJSONSlice(req.Social),
	}

	profile, err := s.profileRepo.UpdateDisplayFields(db, userName, fields)
	if err != nil {
		return nil, mapProfileErr(err)
	}

	return &dto.ProfileDisplayResponse{
		Name:        profile.Name,
		Description: profile.Description,
		Skills:      profile.Skills,
		Location:    profile.Location,
		Social:      []models.Social(profile.Social),
	}, nil
}

// SaveAbout - сохранение секции "about"
func (s *ProfileServiceImpl) SaveAbout(db *gorm.DB, userName, about string) (*dto.AboutResponse, error) {
	saved, err := s.profileRepo.SaveAbout(db, userName, about)
	if err != nil {
		return nil, mapProfileErr(err)
	}
	return &dto.AboutResponse{About: saved}, nil
}

// --- Опыт работы ---

func (s *ProfileServiceImpl) AddPosition(db *gorm.DB, userName string, in dto.PositionInput) (*dto.PositionsResponse, error) {
	positions, err := s.profileRepo.AddPosition(db, userName, positionFromInput(in))
	if err != nil {
		return nil, mapProfileErr(err)
	}
	return &dto.PositionsResponse{Positions: positions}, nil
}

func (s *ProfileServiceImpl) EditPosition(db *gorm.DB, userName, positionID string, in dto.PositionInput) (*dto.PositionsResponse, error) {
	positions, err := s.profileRepo.EditPosition(db, userName, positionID, positionFromInput(in))
	if err != nil {
		return nil, mapProfileErr(err)
	}
	return &dto.PositionsResponse{Positions: positions}, nil
}

func (s *ProfileServiceImpl) DeletePosition(db *gorm.DB, userName, positionID string) (*dto.PositionsResponse, error) {
	positions, err := s.profileRepo.DeletePosition(db, userName, positionID)
	if err != nil {
		return nil, mapProfileErr(err)
	}
	return &dto.PositionsResponse{Positions: positions}, nil
}

// --- Образование ---

func (s *ProfileServiceImpl) AddEducation(db *gorm.DB, userName string, in dto.EducationInput) (*dto.EducationResponse, error) {
	records, err := s.profileRepo.AddEducation(db, userName, educationFromInput(in))
	if err != nil {
		return nil, mapProfileErr(err)
	}
	return &dto.EducationResponse{Education: records}, nil
}

func (s *ProfileServiceImpl) EditEducation(db *gorm.DB, userName, educationID string, in dto.EducationInput) (*dto.EducationResponse, error) {
	records, err := s.profileRepo.EditEducation(db, userName, educationID, educationFromInput(in))
	if err != nil {
		return nil, mapProfileErr(err)
	}
	return &dto.EducationResponse{Education: records}, nil
}

func (s *ProfileServiceImpl) DeleteEducation(db *gorm.DB, userName, educationID string) (*dto.EducationResponse, error) {
	records, err := s.profileRepo.DeleteEducation(db, userName, educationID)
	if err != nil {
		return nil, mapProfileErr(err)
	}
	return &dto.EducationResponse{Education: records}, nil
}

// --- Услуги ---

func (s *ProfileServiceImpl) AddService(db *gorm.DB, userName string, in dto.ServiceInput) (*dto.ServicesResponse, error) {
	if err := s.validate.Validate(&in); err != nil {
		return nil, apperrors.ValidationError(err)
	}

	services, err := s.profileRepo.AddService(db, userName, serviceFromInput(in))
	if err != nil {
		return nil, mapProfileErr(err)
	}
	return &dto.ServicesResponse{Services: services}, nil
}

func (s *ProfileServiceImpl) EditService(db *gorm.DB, userName, serviceID string, in dto.ServiceInput) (*dto.ServicesResponse, error) {
	if err := s.validate.Validate(&in); err != nil {
		return nil, apperrors.ValidationError(err)
	}

	services, err := s.profileRepo.EditService(db, userName, serviceID, serviceFromInput(in))
	if err != nil {
		return nil, mapProfileErr(err)
	}
	return &dto.ServicesResponse{Services: services}, nil
}

func (s *ProfileServiceImpl) DeleteService(db *gorm.DB, userName, serviceID string) (*dto.ServicesResponse, error) {
	services, err := s.profileRepo.DeleteService(db, userName, serviceID)
	if err != nil {
		return nil, mapProfileErr(err)
	}
	return &dto.ServicesResponse{Services: services}, nil
}

// mapProfileErr переводит ошибки репозитория профиля в доменные
func mapProfileErr(err error) error {
	switch {
	case errors.Is(err, repositories.ErrProfileNotFound):
		return apperrors.ErrProfileNotFound
	case errors.Is(err, repositories.ErrPositionNotFound):
		return apperrors.ErrPositionNotFound
	case errors.Is(err, repositories.ErrEducationNotFound):
		return apperrors.ErrEducationNotFound
	case errors.Is(err, repositories.ErrServiceNotFound):
		return apperrors.ErrServiceNotFound
	}
	return apperrors.InternalError(err)
}

func positionFromInput(in dto.PositionInput) models.Position {
	return models.Position{
		Title:             in.Title,
		Company:           in.Company,
		Location:          in.Location,
		IsCurrentPosition: in.IsCurrentPosition,
		StartedAt:         in.StartedAt,
		EndedAt:           in.EndedAt,
		Description:       in.Description,
	}
}

func educationFromInput(in dto.EducationInput) models.Education {
	return models.Education{
		Title:         in.Title,
		Location:      in.Location,
		StartedAtYear: in.StartedAtYear,
		EndedAtYear:   in.EndedAtYear,
		Description:   in.Description,
	}
}

func serviceFromInput(in dto.ServiceInput) models.Service {
	return models.Service{
		Name:         in.Name,
		FeeType:      in.FeeType,
		FixedCost:    in.FixedCost,
		Skills:       in.Skills,
		Description:  in.Description,
		Deliverables: in.Deliverables,
	}
}
