package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strikearena/SA-ReservationService/internal/domain"
	profileRepo "github.com/strikearena/SA-ReservationService/internal/infra/storage/profile"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeProfileRepo struct {
	profiles map[string]*domain.UserProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*domain.UserProfile)}
}

func (f *fakeProfileRepo) GetByUserID(_ context.Context, userID string) (*domain.UserProfile, error) {
	if p, ok := f.profiles[userID]; ok {
		return p, nil
	}
	return nil, profileRepo.ErrProfileNotFound
}

func (f *fakeProfileRepo) Upsert(_ context.Context, p *domain.UserProfile) error {
	f.profiles[p.UserID] = p
	return nil
}

func TestGet(t *testing.T) {
	t.Run("нет профиля — пустой ответ без ошибки", func(t *testing.T) {
		service := NewService(newFakeProfileRepo(), nopLogger{})

		resp, err := service.Get(context.Background(), "user-1")
		require.NoError(t, err)

		assert.Empty(t, resp.Name)
		assert.Empty(t, resp.Email)
		assert.Empty(t, resp.TeamName)
	})

	t.Run("возвращает сохраненный профиль", func(t *testing.T) {
		repo := newFakeProfileRepo()
		repo.profiles["user-1"] = &domain.UserProfile{
			UserID:   "user-1",
			Name:     "Иван",
			Email:    "ivan@example.com",
			TeamName: "Strike Team",
		}
		service := NewService(repo, nopLogger{})

		resp, err := service.Get(context.Background(), "user-1")
		require.NoError(t, err)

		assert.Equal(t, "Иван", resp.Name)
		assert.Equal(t, "Strike Team", resp.TeamName)
	})
}

func TestRemember(t *testing.T) {
	repo := newFakeProfileRepo()
	service := NewService(repo, nopLogger{})

	// последняя запись побеждает
	first := &domain.UserProfile{UserID: "user-1", Name: "Иван", Email: "ivan@example.com", TeamName: "Alpha"}
	second := &domain.UserProfile{UserID: "user-1", Name: "Иван", Email: "ivan@example.com", TeamName: "Bravo"}

	require.NoError(t, service.Remember(context.Background(), first))
	require.NoError(t, service.Remember(context.Background(), second))

	resp, err := service.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Bravo", resp.TeamName)
}
