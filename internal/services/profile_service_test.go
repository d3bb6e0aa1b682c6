package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/internal/validator"
	"portfolio_backend/pkg/apperrors"
)

func newProfileService(profiles *fakeProfileRepo) ProfileService {
	return NewProfileService(profiles, validator.New())
}

func seedProfile(profiles *fakeProfileRepo, userName string) *models.Profile {
	p := &models.Profile{UserName: userName, Name: "Alice"}
	_ = profiles.Create(nil, p)
	return p
}

func TestProfileService_UpdateDisplayFields(t *testing.T) {
	t.Parallel()

	profiles := newFakeProfileRepo()
	seedProfile(profiles, "alice")
	svc := newProfileService(profiles)

	resp, err := svc.UpdateDisplayFields(nil, "alice", &dto.UpdateProfileRequest{
		Name:        "Alice A.",
		Description: "Backend engineer",
		Skills:      datatypes.JSON(`["go","sql"]`),
		Location:    "Berlin",
		Social:      []models.Social{{Platform: "github", Link: "https://github.com/alice"}},
	})
	require.NoError(t, err)

	// Ответ - только отображаемые поля
	assert.Equal(t, "Alice A.", resp.Name)
	assert.Equal(t, "Backend engineer", resp.Description)
	assert.Equal(t, "Berlin", resp.Location)
	assert.JSONEq(t, `["go","sql"]`, string(resp.Skills))

	// Чужой профиль недостижим: скоупинг по userName из токена
	_, err = svc.UpdateDisplayFields(nil, "bob", &dto.UpdateProfileRequest{Name: "Mallory"})
	assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
}

func TestProfileService_SaveAbout(t *testing.T) {
	t.Parallel()

	profiles := newFakeProfileRepo()
	seedProfile(profiles, "alice")
	svc := newProfileService(profiles)

	resp, err := svc.SaveAbout(nil, "alice", "Hello, I build backends.")
	require.NoError(t, err)
	assert.Equal(t, "Hello, I build backends.", resp.About)

	_, err = svc.SaveAbout(nil, "ghost", "x")
	assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
}

func TestProfileService_PositionLifecycle(t *testing.T) {
	t.Parallel()

	profiles := newFakeProfileRepo()
	seedProfile(profiles, "alice")
	svc := newProfileService(profiles)

	added, err := svc.AddPosition(nil, "alice", dto.PositionInput{
		Title:     "Engineer",
		Company:   "Acme",
		StartedAt: models.MonthYear{Month: "январь", Year: "2021"},
	})
	require.NoError(t, err)
	require.Len(t, added.Positions, 1)
	id := added.Positions[0].ID
	require.NotEmpty(t, id, "добавленная позиция получает id")

	edited, err := svc.EditPosition(nil, "alice", id, dto.PositionInput{Title: "Lead", Company: "Acme"})
	require.NoError(t, err)
	assert.Equal(t, id, edited.Positions[0].ID)
	assert.Equal(t, "Lead", edited.Positions[0].Title)

	_, err = svc.EditPosition(nil, "alice", "missing", dto.PositionInput{})
	assert.ErrorIs(t, err, apperrors.ErrPositionNotFound)

	deleted, err := svc.DeletePosition(nil, "alice", id)
	require.NoError(t, err)
	assert.Empty(t, deleted.Positions)

	// Повторное удаление - not-found, не тихий успех
	_, err = svc.DeletePosition(nil, "alice", id)
	assert.ErrorIs(t, err, apperrors.ErrPositionNotFound)
}

func TestProfileService_EducationLifecycle(t *testing.T) {
	t.Parallel()

	profiles := newFakeProfileRepo()
	seedProfile(profiles, "alice")
	svc := newProfileService(profiles)

	added, err := svc.AddEducation(nil, "alice", dto.EducationInput{
		Title:         "BSc Computer Science",
		StartedAtYear: "2015",
		EndedAtYear:   "2019",
	})
	require.NoError(t, err)
	require.Len(t, added.Education, 1)
	id := added.Education[0].ID

	edited, err := svc.EditEducation(nil, "alice", id, dto.EducationInput{Title: "MSc Computer Science"})
	require.NoError(t, err)
	assert.Equal(t, "MSc Computer Science", edited.Education[0].Title)

	_, err = svc.DeleteEducation(nil, "alice", "missing")
	assert.ErrorIs(t, err, apperrors.ErrEducationNotFound)

	deleted, err := svc.DeleteEducation(nil, "alice", id)
	require.NoError(t, err)
	assert.Empty(t, deleted.Education)
}

func TestProfileService_ServiceLifecycle(t *testing.T) {
	t.Parallel()

	profiles := newFakeProfileRepo()
	seedProfile(profiles, "alice")
	svc := newProfileService(profiles)

	added, err := svc.AddService(nil, "alice", dto.ServiceInput{
		Name:    "Consulting",
		FeeType: validator.FeeTypeHourly,
		FixedCost: models.FixedCost{
			Currency:     "EUR",
			Cost:         "100",
			DurationType: "hour",
		},
		Skills: []string{"go"},
	})
	require.NoError(t, err)
	require.Len(t, added.Services, 1)
	id := added.Services[0].ID

	// Неизвестный тип ставки отклоняется валидатором
	_, err = svc.AddService(nil, "alice", dto.ServiceInput{Name: "Barter", FeeType: "barter"})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "All fields must be filled", appErr.Message)

	edited, err := svc.EditService(nil, "alice", id, dto.ServiceInput{Name: "Architecture review", FeeType: validator.FeeTypeNegotiable})
	require.NoError(t, err)
	assert.Equal(t, "Architecture review", edited.Services[0].Name)

	deleted, err := svc.DeleteService(nil, "alice", id)
	require.NoError(t, err)
	assert.Empty(t, deleted.Services)

	_, err = svc.DeleteService(nil, "alice", id)
	assert.ErrorIs(t, err, apperrors.ErrServiceNotFound)
}
