package repositories

import (
	"errors"

	"portfolio_backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrProfileNotFound   = errors.New("profile not found")
	ErrPositionNotFound  = errors.New("position not found")
	ErrEducationNotFound = errors.New("education record not found")
	ErrServiceNotFound   = errors.New("service not found")
)

type ProfileRepository interface {
	FindByUserName(db *gorm.DB, userName string) (*models.Profile, error)
	Create(db *gorm.DB, profile *models.Profile) error

	// Поля документа
	UpdateDisplayFields(db *gorm.DB, userName string, fields map[string]interface{}) (*models.Profile, error)
	UpdateImage(db *gorm.DB, userName, imageURL string) (string, error)
	SaveAbout(db *gorm.DB, userName, about string) (string, error)

	// Вложенные массивы: одна скоупленная мутация на операцию
	AddPosition(db *gorm.DB, userName string, pos models.Position) ([]models.Position, error)
	EditPosition(db *gorm.DB, userName, positionID string, pos models.Position) ([]models.Position, error)
	DeletePosition(db *gorm.DB, userName, positionID string) ([]models.Position, error)

	AddEducation(db *gorm.DB, userName string, edu models.Education) ([]models.Education, error)
	EditEducation(db *gorm.DB, userName, educationID string, edu models.Education) ([]models.Education, error)
	DeleteEducation(db *gorm.DB, userName, educationID string) ([]models.Education, error)

	AddService(db *gorm.DB, userName string, svc models.Service) ([]models.Service, error)
	EditService(db *gorm.DB, userName, serviceID string, svc models.Service) ([]models.Service, error)
	DeleteService(db *gorm.DB, userName, serviceID string) ([]models.Service, error)
}

type ProfileRepositoryImpl struct{}

func NewProfileRepository() ProfileRepository {
	return &ProfileRepositoryImpl{}
}

func (r *ProfileRepositoryImpl) FindByUserName(db *gorm.DB, userName string) (*models.Profile, error) {
	var profile models.Profile
	err := db.First(&profile, "user_name = ?", userName).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) Create(db *gorm.DB, profile *models.Profile) error {
	return db.Create(profile).Error
}

// lockByUserName выбирает документ с блокировкой строки: мутация
// массива выполняется как единая find-and-update операция.
func (r *ProfileRepositoryImpl) lockByUserName(tx *gorm.DB, userName string) (*models.Profile, error) {
	var profile models.Profile
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&profile, "user_name = ?", userName).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateDisplayFields(db *gorm.DB, userName string, fields map[string]interface{}) (*models.Profile, error) {
	var out *models.Profile
	err := db.Transaction(func(tx *gorm.DB) error {
		profile, err := r.lockByUserName(tx, userName)
		if err != nil {
			return err
		}
		if err := tx.Model(profile).Updates(fields).Error; err != nil {
			return err
		}
		out = profile
		return nil
	})
	return out, err
}

func (r *ProfileRepositoryImpl) UpdateImage(db *gorm.DB, userName, imageURL string) (string, error) {
	result := db.Model(&models.Profile{}).Where("user_name = ?", userName).Update("image", imageURL)
	if result.Error != nil {
		return "", result.Error
	}
	if result.RowsAffected == 0 {
		return "", ErrProfileNotFound
	}
	return imageURL, nil
}

func (r *ProfileRepositoryImpl) SaveAbout(db *gorm.DB, userName, about string) (string, error) {
	result := db.Model(&models.Profile{}).Where("user_name = ?", userName).Update("about", about)
	if result.Error != nil {
		return "", result.Error
	}
	if result.RowsAffected == 0 {
		return "", ErrProfileNotFound
	}
	return about, nil
}

// --- Positions ---

func (r *ProfileRepositoryImpl) AddPosition(db *gorm.DB, userName string, pos models.Position) ([]models.Position, error) {
	var out []models.Position
	err := db.Transaction(func(tx *gorm.DB) error {
		profile, err := r.lockByUserName(tx, userName)
		if err != nil {
			return err
		}
		pos.ID = uuid.NewString()
		profile.Positions = append(profile.Positions, pos)
		if err := tx.Model(profile).Update("positions", profile.Positions).Error; err != nil {
			return err
		}
		out = profile.Positions
		return nil
	})
	return out, err
}

func (r *ProfileRepositoryImpl) EditPosition(db *gorm.DB, userName, positionID string, pos models.Position) ([]models.Position, error) {
	var out []models.Position
	err := db.Transaction(func(tx *gorm.DB) error {
		profile, err := r.lockByUserName(tx, userName)
		if err != nil {
			return err
		}
		if !profile.ReplacePosition(positionID, pos) {
			return ErrPositionNotFound
		}
		if err := tx.Model(profile).Update("positions", profile.Positions).Error; err != nil {
			return err
		}
		out = profile.Positions
		return nil
	})
	return out, err
}

func (r *ProfileRepositoryImpl) DeletePosition(db *gorm.DB, userName, positionID string) ([]models.Position, error) {
	var out []models.Position
	err := db.Transaction(func(tx *gorm.DB) error {
		profile, err := r.lockByUserName(tx, userName)
		if err != nil {
			return err
		}
		if !profile.RemovePosition(positionID) {
			return ErrPositionNotFound
		}
		if err := tx.Model(profile).Update("positions", profile.Positions).Error; err != nil {
			return err
		}
		out = profile.Positions
		return nil
	})
	return out, err
}

// --- Education ---

func (r *ProfileRepositoryImpl) AddEducation(db *gorm.DB, userName string, edu models.Education) ([]models.Education, error) {
	var out []models.Education
	err := db.Transaction(func(tx *gorm.DB) error {
		profile, err := r.lockByUserName(tx, userName)
		if err != nil {
			return err
		}
		edu.ID = uuid.NewString()
		profile.EducationRecords = append(profile.EducationRecords, edu)
		if err := tx.Model(profile).Update("education_records", profile.EducationRecords).Error; err != nil {
			return err
		}
		out = profile.EducationRecords
		return nil
	})
	return out, err
}

func (r *ProfileRepositoryImpl) EditEducation(db *gorm.DB, userName, educationID string, edu models.Education) ([]models.Education, error) {
	var out []models.Education
	err := db.Transaction(func(tx *gorm.DB) error {
		profile, err := r.lockByUserName(tx, userName)
		if err != nil {
			return err
		}
		if !profile.ReplaceEducation(educationID, edu) {
			return ErrEducationNotFound
		}
		if err := tx.Model(profile).Update("education_records", profile.EducationRecords).Error; err != nil {
			return err
		}
		out = profile.EducationRecords
		return nil
	})
	return out, err
}

func (r *ProfileRepositoryImpl) DeleteEducation(db *gorm.DB, userName, educationID string) ([]models.Education, error) {
	var out []models.Education
	err := db.Transaction(func(tx *gorm.DB) error {
		profile, err := r.lockByUserName(tx, userName)
		if err != nil {
			return err
		}
		if !profile.RemoveEducation(educationID) {
			return ErrEducationNotFound
		}
		if err := tx.Model(profile).Update("education_records", profile.EducationRecords).Error; err != nil {
			return err
		}
		out = profile.EducationRecords
		return nil
	})
	return out, err
}

// --- Services ---

func (r *ProfileRepositoryImpl) AddService(db *gorm.DB, userName string, svc models.Service) ([]models.Service, error) {
	var out []models.Service
	err := db.Transaction(func(tx *gorm.DB) error {
		profile, err := r.lockByUserName(tx, userName)
		if err != nil {
			return err
		}
		svc.ID = uuid.NewString()
		profile.Services = append(profile.Services, svc)
		if err := tx.Model(profile).Update("services", profile.Services).Error; err != nil {
			return err
		}
		out = profile.Services
		return nil
	})
	return out, err
}

func (r *ProfileRepositoryImpl) EditService(db *gorm.DB, userName, serviceID string, svc models.Service) ([]models.Service, error) {
	var out []models.Service
	err := db.Transaction(func(tx *gorm.DB) error {
		profile, err := r.lockByUserName(tx, userName)
		if err != nil {
			return err
		}
		if !profile.ReplaceService(serviceID, svc) {
			return ErrServiceNotFound
		}
		if err := tx.Model(profile).Update("services", profile.Services).Error; err != nil {
			return err
		}
		out = profile.Services
		return nil
	})
	return out, err
}

func (r *ProfileRepositoryImpl) DeleteService(db *gorm.DB, userName, serviceID string) ([]models.Service, error) {
	var out []models.Service
	err := db.Transaction(func(tx *gorm.DB) error {
		profile, err := r.lockByUserName(tx, userName)
		if err != nil {
			return err
		}
		if !profile.RemoveService(serviceID) {
			return ErrServiceNotFound
		}
		if err := tx.Model(profile).Update("services", profile.Services).Error; err != nil {
			return err
		}
		out = profile.Services
		return nil
	})
	return out, err
}
