package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/pkg/apperrors"
)

type portfolioFixture struct {
	users      *fakeUserRepo
	profiles   *fakeProfileRepo
	portfolios *fakePortfolioRepo
	svc        PortfolioService
}

func newPortfolioFixture() *portfolioFixture {
	users := &fakeUserRepo{}
	profiles := newFakeProfileRepo()
	portfolios := newFakePortfolioRepo()
	return &portfolioFixture{
		users:      users,
		profiles:   profiles,
		portfolios: portfolios,
		svc:        NewPortfolioService(users, profiles, portfolios),
	}
}

func (f *portfolioFixture) seedUser(t *testing.T) *models.User {
	t.Helper()
	user := &models.User{Name: "Alice", Email: "alice@example.com", UserName: "alice"}
	require.NoError(t, f.users.Create(nil, user))
	return user
}

// Первый заход в кабинет создает профиль лениво; ответ содержит
// только профиль. Повторный заход отдает и портфолио.
func TestPortfolioService_GetOwnPortfolio_LazyProfile(t *testing.T) {
	t.Parallel()

	f := newPortfolioFixture()
	user := f.seedUser(t)

	resp, created, err := f.svc.GetOwnPortfolio(nil, user.ID)
	require.NoError(t, err)
	assert.True(t, created)
	require.NotNil(t, resp.Profile)
	assert.Equal(t, "alice", resp.Profile.UserName)
	assert.Equal(t, "Alice", resp.Profile.Name, "имя профиля берется из аккаунта")
	assert.Nil(t, resp.Portfolio)

	resp, created, err = f.svc.GetOwnPortfolio(nil, user.ID)
	require.NoError(t, err)
	assert.False(t, created, "профиль уже существует")
	assert.NotNil(t, resp.Profile)
	assert.Nil(t, resp.Portfolio, "портфолио еще не создано - в ответе null")
}

func TestPortfolioService_GetOwnPortfolio_UnknownUser(t *testing.T) {
	t.Parallel()

	f := newPortfolioFixture()

	_, _, err := f.svc.GetOwnPortfolio(nil, "no-such-id")
	assert.ErrorIs(t, err, apperrors.ErrAccountGone)
}

func TestPortfolioService_GetPreview(t *testing.T) {
	t.Parallel()

	f := newPortfolioFixture()
	require.NoError(t, f.profiles.Create(nil, &models.Profile{UserName: "alice", Name: "Alice"}))

	resp, err := f.svc.GetPreview(nil, "alice")
	require.NoError(t, err)
	assert.NotNil(t, resp.Profile)
	assert.Nil(t, resp.Portfolio)

	_, err = f.svc.GetPreview(nil, "ghost")
	assert.ErrorIs(t, err, apperrors.ErrAccountNotExist)
}

func TestPortfolioService_GetServices(t *testing.T) {
	t.Parallel()

	f := newPortfolioFixture()
	require.NoError(t, f.profiles.Create(nil, &models.Profile{
		UserName: "alice",
		Services: []models.Service{{ID: "s1", Name: "Consulting"}},
	}))

	resp, err := f.svc.GetServices(nil, "alice")
	require.NoError(t, err)
	require.Len(t, resp.Services, 1)
	assert.Equal(t, "Consulting", resp.Services[0].Name)

	_, err = f.svc.GetServices(nil, "ghost")
	assert.ErrorIs(t, err, apperrors.ErrAccountNotExist)
}

func TestPortfolioService_CollectionLifecycle(t *testing.T) {
	t.Parallel()

	f := newPortfolioFixture()

	// Имя коллекции обязательно
	_, err := f.svc.AddCollection(nil, "alice", "")
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "Collection name is required", appErr.Message)

	// Первая коллекция создает документ портфолио (upsert)
	resp, err := f.svc.AddCollection(nil, "alice", "Web")
	require.NoError(t, err)
	require.Len(t, resp.Portfolio, 1)
	id := resp.Portfolio[0].ID
	require.NotEmpty(t, id)

	resp, err = f.svc.EditCollection(nil, "alice", id, "Web projects")
	require.NoError(t, err)
	assert.Equal(t, "Web projects", resp.Portfolio[0].Name)

	_, err = f.svc.EditCollection(nil, "alice", "missing", "x")
	assert.ErrorIs(t, err, apperrors.ErrCollectionNotFound)

	resp, err = f.svc.DeleteCollection(nil, "alice", id)
	require.NoError(t, err)
	assert.Empty(t, resp.Portfolio)
}

func TestPortfolioService_CardLifecycle(t *testing.T) {
	t.Parallel()

	f := newPortfolioFixture()

	collections, err := f.svc.AddCollection(nil, "alice", "Web")
	require.NoError(t, err)
	collectionID := collections.Portfolio[0].ID

	card := dto.CardInput{
		Style: "tall",
		Color: "#fff",
		Body:  "My project",
		URL:   "https://example.com",
		SubPage: models.SubPage{
			Description: "Details",
			Tags:        []string{"go", "api"},
		},
	}

	resp, err := f.svc.AddCard(nil, "alice", collectionID, card)
	require.NoError(t, err)
	require.Len(t, resp.Portfolio[0].Cards, 1)
	cardID := resp.Portfolio[0].Cards[0].ID
	require.NotEmpty(t, cardID)
	assert.Equal(t, []string{"go", "api"}, resp.Portfolio[0].Cards[0].SubPage.Tags)

	// Добавление в несуществующую коллекцию
	_, err = f.svc.AddCard(nil, "alice", "missing", card)
	assert.ErrorIs(t, err, apperrors.ErrCollectionNotFound)

	edited, err := f.svc.EditCard(nil, "alice", collectionID, cardID, dto.CardInput{Body: "Updated"})
	require.NoError(t, err)
	assert.Equal(t, cardID, edited.Portfolio[0].Cards[0].ID)
	assert.Equal(t, "Updated", edited.Portfolio[0].Cards[0].Body)

	_, err = f.svc.EditCard(nil, "alice", collectionID, "missing", dto.CardInput{})
	assert.ErrorIs(t, err, apperrors.ErrCardNotFound)

	deleted, err := f.svc.DeleteCard(nil, "alice", collectionID, cardID)
	require.NoError(t, err)
	assert.Empty(t, deleted.Portfolio[0].Cards)

	_, err = f.svc.DeleteCard(nil, "alice", collectionID, cardID)
	assert.ErrorIs(t, err, apperrors.ErrCardNotFound)
}

// Мутации одного пользователя не видят документы другого
func TestPortfolioService_CrossAccountScoping(t *testing.T) {
	t.Parallel()

	f := newPortfolioFixture()

	collections, err := f.svc.AddCollection(nil, "alice", "Web")
	require.NoError(t, err)
	collectionID := collections.Portfolio[0].ID

	_, err = f.svc.EditCollection(nil, "mallory", collectionID, "Hacked")
	assert.ErrorIs(t, err, apperrors.ErrCollectionNotFound)

	_, err = f.svc.DeleteCollection(nil, "mallory", collectionID)
	assert.ErrorIs(t, err, apperrors.ErrCollectionNotFound)

	// Документ Алисы не пострадал
	preview, err := f.portfolios.FindByUserName(nil, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Web", preview.Collections[0].Name)
}
