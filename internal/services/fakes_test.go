package services

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
)

// In-memory реализации репозиториев для тестов сервисов.
// Повторяют контракт настоящих реализаций, включая сентинел-ошибки.

type fakeUserRepo struct {
	users []*models.User
}

func (r *fakeUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ *gorm.DB, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ *gorm.DB, user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrEmailExists
		}
	}
	for _, u := range r.users {
		if u.UserName == user.UserName {
			return repositories.ErrUserNameExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	r.users = append(r.users, user)
	return nil
}

type fakeProfileRepo struct {
	profiles map[string]*models.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*models.Profile)}
}

func (r *fakeProfileRepo) find(userName string) (*models.Profile, error) {
	p, ok := r.profiles[userName]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	return p, nil
}

func (r *fakeProfileRepo) FindByUserName(_ *gorm.DB, userName string) (*models.Profile, error) {
	return r.find(userName)
}

func (r *fakeProfileRepo) Create(_ *gorm.DB, profile *models.Profile) error {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	r.profiles[profile.UserName] = profile
	return nil
}

func (r *fakeProfileRepo) UpdateDisplayFields(_ *gorm.DB, userName string, fields map[string]interface{}) (*models.Profile, error) {
	p, err := r.find(userName)
	if err != nil {
		return nil, err
	}
	if v, ok := fields["name"].(string); ok {
		p.Name = v
	}
	if v, ok := fields["description"].(string); ok {
		p.Description = v
	}
	if v, ok := fields["location"].(string); ok {
		p.Location = v
	}
	if v, ok := fields["skills"].(datatypes.JSON); ok {
		p.Skills = v
	}
	if v, ok := fields["social"].(datatypes.JSONSlice[models.Social]); ok {
		p.Social = v
	}
	return p, nil
}

func (r *fakeProfileRepo) UpdateImage(_ *gorm.DB, userName, imageURL string) (string, error) {
	p, err := r.find(userName)
	if err != nil {
		return "", err
	}
	p.Image = imageURL
	return imageURL, nil
}

func (r *fakeProfileRepo) SaveAbout(_ *gorm.DB, userName, about string) (string, error) {
	p, err := r.find(userName)
	if err != nil {
		return "", err
	}
	p.About = about
	return about, nil
}

func (r *fakeProfileRepo) AddPosition(_ *gorm.DB, userName string, pos models.Position) ([]models.Position, error) {
	p, err := r.find(userName)
	if err != nil {
		return nil, err
	}
	pos.ID = uuid.NewString()
	p.Positions = append(p.Positions, pos)
	return p.Positions, nil
}

func (r *fakeProfileRepo) EditPosition(_ *gorm.DB, userName, positionID string, pos models.Position) ([]models.Position, error) {
	p, err := r.find(userName)
	if err != nil {
		return nil, err
	}
	if !p.ReplacePosition(positionID, pos) {
		return nil, repositories.ErrPositionNotFound
	}
	return p.Positions, nil
}

func (r *fakeProfileRepo) DeletePosition(_ *gorm.DB, userName, positionID string) ([]models.Position, error) {
	p, err := r.find(userName)
	if err != nil {
		return nil, err
	}
	if !p.RemovePosition(positionID) {
		return nil, repositories.ErrPositionNotFound
	}
	return p.Positions, nil
}

func (r *fakeProfileRepo) AddEducation(_ *gorm.DB, userName string, edu models.Education) ([]models.Education, error) {
	p, err := r.find(userName)
	if err != nil {
		return nil, err
	}
	edu.ID = uuid.NewString()
	p.EducationRecords = append(p.EducationRecords, edu)
	return p.EducationRecords, nil
}

func (r *fakeProfileRepo) EditEducation(_ *gorm.DB, userName, educationID string, edu models.Education) ([]models.Education, error) {
	p, err := r.find(userName)
	if err != nil {
		return nil, err
	}
	if !p.ReplaceEducation(educationID, edu) {
		return nil, repositories.ErrEducationNotFound
	}
	return p.EducationRecords, nil
}

func (r *fakeProfileRepo) DeleteEducation(_ *gorm.DB, userName, educationID string) ([]models.Education, error) {
	p, err := r.find(userName)
	if err != nil {
		return nil, err
	}
	if !p.RemoveEducation(educationID) {
		return nil, repositories.ErrEducationNotFound
	}
	return p.EducationRecords, nil
}

func (r *fakeProfileRepo) AddService(_ *gorm.DB, userName string, svc models.Service) ([]models.Service, error) {
	p, err := r.find(userName)
	if err != nil {
		return nil, err
	}
	svc.ID = uuid.NewString()
	p.Services = append(p.Services, svc)
	return p.Services, nil
}

func (r *fakeProfileRepo) EditService(_ *gorm.DB, userName, serviceID string, svc models.Service) ([]models.Service, error) {
	p, err := r.find(userName)
	if err != nil {
		return nil, err
	}
	if !p.ReplaceService(serviceID, svc) {
		return nil, repositories.ErrServiceNotFound
	}
	return p.Services, nil
}

func (r *fakeProfileRepo) DeleteService(_ *gorm.DB, userName, serviceID string) ([]models.Service, error) {
	p, err := r.find(userName)
	if err != nil {
		return nil, err
	}
	if !p.RemoveService(serviceID) {
		return nil, repositories.ErrServiceNotFound
	}
	return p.Services, nil
}

type fakePortfolioRepo struct {
	portfolios map[string]*models.Portfolio
}

func newFakePortfolioRepo() *fakePortfolioRepo {
	return &fakePortfolioRepo{portfolios: make(map[string]*models.Portfolio)}
}

func (r *fakePortfolioRepo) FindByUserName(_ *gorm.DB, userName string) (*models.Portfolio, error) {
	p, ok := r.portfolios[userName]
	if !ok {
		return nil, repositories.ErrPortfolioNotFound
	}
	return p, nil
}

func (r *fakePortfolioRepo) AddCollection(_ *gorm.DB, userName, name string) ([]models.Collection, error) {
	p, ok := r.portfolios[userName]
	if !ok {
		p = &models.Portfolio{UserName: userName}
		r.portfolios[userName] = p
	}
	p.Collections = append(p.Collections, models.Collection{
		ID:    uuid.NewString(),
		Name:  name,
		Cards: []models.Card{},
	})
	return p.Collections, nil
}

func (r *fakePortfolioRepo) EditCollection(_ *gorm.DB, userName, collectionID, name string) ([]models.Collection, error) {
	p, ok := r.portfolios[userName]
	if !ok {
		return nil, repositories.ErrCollectionNotFound
	}
	c := p.FindCollection(collectionID)
	if c == nil {
		return nil, repositories.ErrCollectionNotFound
	}
	c.Name = name
	return p.Collections, nil
}

func (r *fakePortfolioRepo) DeleteCollection(_ *gorm.DB, userName, collectionID string) ([]models.Collection, error) {
	p, ok := r.portfolios[userName]
	if !ok {
		return nil, repositories.ErrCollectionNotFound
	}
	if !p.RemoveCollection(collectionID) {
		return nil, repositories.ErrCollectionNotFound
	}
	return p.Collections, nil
}

func (r *fakePortfolioRepo) AddCard(_ *gorm.DB, userName, collectionID string, card models.Card) ([]models.Collection, error) {
	p, ok := r.portfolios[userName]
	if !ok {
		return nil, repositories.ErrCollectionNotFound
	}
	c := p.FindCollection(collectionID)
	if c == nil {
		return nil, repositories.ErrCollectionNotFound
	}
	card.ID = uuid.NewString()
	c.Cards = append(c.Cards, card)
	return p.Collections, nil
}

func (r *fakePortfolioRepo) EditCard(_ *gorm.DB, userName, collectionID, cardID string, card models.Card) ([]models.Collection, error) {
	p, ok := r.portfolios[userName]
	if !ok {
		return nil, repositories.ErrCardNotFound
	}
	c := p.FindCollection(collectionID)
	if c == nil {
		return nil, repositories.ErrCardNotFound
	}
	if !c.ReplaceCard(cardID, card) {
		return nil, repositories.ErrCardNotFound
	}
	return p.Collections, nil
}

func (r *fakePortfolioRepo) DeleteCard(_ *gorm.DB, userName, collectionID, cardID string) ([]models.Collection, error) {
	p, ok := r.portfolios[userName]
	if !ok {
		return nil, repositories.ErrCardNotFound
	}
	c := p.FindCollection(collectionID)
	if c == nil {
		return nil, repositories.ErrCardNotFound
	}
	if !c.RemoveCard(cardID) {
		return nil, repositories.ErrCardNotFound
	}
	return p.Collections, nil
}

// fakeStorage - in-memory объектное хранилище
type fakeStorage struct {
	objects map[string][]byte
	saveErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string][]byte)}
}

func (s *fakeStorage) Save(_ context.Context, path string, reader io.Reader, _ string) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.objects[path] = data
	return nil
}

func (s *fakeStorage) Get(_ context.Context, path string) (io.ReadCloser, error) {
	data, ok := s.objects[path]
	if !ok {
		return nil, fmt.Errorf("object not found: %s", path)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *fakeStorage) Delete(_ context.Context, path string) error {
	delete(s.objects, path)
	return nil
}

func (s *fakeStorage) Exists(_ context.Context, path string) (bool, error) {
	_, ok := s.objects[path]
	return ok, nil
}

func (s *fakeStorage) GetURL(_ context.Context, path string) (string, error) {
	return "https://cdn.example.com/" + path, nil
}
