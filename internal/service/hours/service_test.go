package hours

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strikearena/SA-ReservationService/internal/domain"
	hoursRepo "github.com/strikearena/SA-ReservationService/internal/infra/storage/hours"
	"github.com/strikearena/SA-ReservationService/internal/service/hours/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeHoursRepo struct {
	stored *domain.BusinessHours
}

func (f *fakeHoursRepo) Get(_ context.Context) (*domain.BusinessHours, error) {
	if f.stored == nil {
		return nil, hoursRepo.ErrHoursNotFound
	}
	return f.stored, nil
}

func (f *fakeHoursRepo) Upsert(_ context.Context, h *domain.BusinessHours) error {
	f.stored = h
	return nil
}

func TestGet(t *testing.T) {
	t.Run("без сохраненной записи возвращает часы по умолчанию", func(t *testing.T) {
		service := NewService(&fakeHoursRepo{}, nopLogger{})

		resp, err := service.Get(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "09:00", resp.OpenTime)
		assert.Equal(t, "17:00", resp.CloseTime)
	})

	t.Run("возвращает сохраненные часы", func(t *testing.T) {
		repo := &fakeHoursRepo{stored: &domain.BusinessHours{OpenTime: "10:00", CloseTime: "18:30"}}
		service := NewService(repo, nopLogger{})

		resp, err := service.Get(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "10:00", resp.OpenTime)
		assert.Equal(t, "18:30", resp.CloseTime)
	})
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name    string
		req     models.UpdateHoursRequest
		wantErr error
	}{
		{
			name: "валидные часы",
			req:  models.UpdateHoursRequest{OpenTime: "08:00", CloseTime: "20:00"},
		},
		{
			name:    "время без ведущего нуля",
			req:     models.UpdateHoursRequest{OpenTime: "9:00", CloseTime: "17:00"},
			wantErr: ErrInvalidTimeFormat,
		},
		{
			name:    "открытие позже закрытия",
			req:     models.UpdateHoursRequest{OpenTime: "18:00", CloseTime: "09:00"},
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "открытие равно закрытию",
			req:     models.UpdateHoursRequest{OpenTime: "09:00", CloseTime: "09:00"},
			wantErr: ErrInvalidTimeRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeHoursRepo{}
			service := NewService(repo, nopLogger{})

			resp, err := service.Update(context.Background(), &tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, repo.stored)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.req.OpenTime, resp.OpenTime)
			assert.Equal(t, tt.req.CloseTime, resp.CloseTime)
			require.NotNil(t, repo.stored)
		})
	}
}
