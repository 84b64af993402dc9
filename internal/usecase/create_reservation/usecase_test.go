package create_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strikearena/SA-ReservationService/internal/domain"
	"github.com/strikearena/SA-ReservationService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fakeTxManager вызывает fn напрямую: сериализуемость проверяет Postgres,
// здесь важна только последовательность операций внутри fn.
type fakeTxManager struct {
	serializableCalls int
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.serializableCalls++
	return fn(ctx)
}

func (f *fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeReservationRepo struct {
	byDate map[string][]*domain.Reservation
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{byDate: make(map[string][]*domain.Reservation)}
}

func (f *fakeReservationRepo) ListByDate(_ context.Context, date string) ([]*domain.Reservation, error) {
	return f.byDate[date], nil
}

func (f *fakeReservationRepo) Create(_ context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	r.ID = "res-1"
	r.CreatedAt = time.Now()
	f.byDate[r.Date] = append(f.byDate[r.Date], r)
	return r, nil
}

type fakeProfileRepo struct {
	saved *domain.UserProfile
	err   error
}

func (f *fakeProfileRepo) Upsert(_ context.Context, p *domain.UserProfile) error {
	if f.err != nil {
		return f.err
	}
	f.saved = p
	return nil
}

func validRequest() *Request {
	return &Request{
		Name:         "Иван",
		Email:        "ivan@example.com",
		Team:         "Strike Team",
		Date:         "2026-09-01",
		Time:         "13:30",
		PeopleCount:  ptr.Ptr(5),
		RentalNeeded: ptr.Ptr(false),
	}
}

func TestExecute(t *testing.T) {
	t.Run("создает бронирование в сериализуемой транзакции", func(t *testing.T) {
		repo := newFakeReservationRepo()
		tx := &fakeTxManager{}
		uc := NewUseCase(repo, &fakeProfileRepo{}, tx, nopLogger{})

		resp, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)

		assert.Equal(t, "res-1", resp.ID)
		assert.Equal(t, "afternoon", resp.Session)
		assert.Equal(t, 5, resp.PeopleCount)
		assert.False(t, resp.CreatedAt.IsZero())
		assert.Equal(t, 1, tx.serializableCalls)
		require.Len(t, repo.byDate["2026-09-01"], 1)
	})

	t.Run("сохраняет профиль владельца после создания", func(t *testing.T) {
		profiles := &fakeProfileRepo{}
		uc := NewUseCase(newFakeReservationRepo(), profiles, &fakeTxManager{}, nopLogger{})

		req := validRequest()
		req.OwnerUserID = ptr.Ptr("user-1")

		_, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)

		require.NotNil(t, profiles.saved)
		assert.Equal(t, "user-1", profiles.saved.UserID)
		assert.Equal(t, "Иван", profiles.saved.Name)
		assert.Equal(t, "Strike Team", profiles.saved.TeamName)
	})

	t.Run("ошибка сохранения профиля не отменяет бронирование", func(t *testing.T) {
		profiles := &fakeProfileRepo{err: assert.AnError}
		uc := NewUseCase(newFakeReservationRepo(), profiles, &fakeTxManager{}, nopLogger{})

		req := validRequest()
		req.OwnerUserID = ptr.Ptr("user-1")

		resp, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "res-1", resp.ID)
	})

	t.Run("анонимная заявка не трогает профили", func(t *testing.T) {
		profiles := &fakeProfileRepo{}
		uc := NewUseCase(newFakeReservationRepo(), profiles, &fakeTxManager{}, nopLogger{})

		_, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
		assert.Nil(t, profiles.saved)
	})

	t.Run("превышение лимита не создает запись", func(t *testing.T) {
		repo := newFakeReservationRepo()
		repo.byDate["2026-09-01"] = []*domain.Reservation{
			{Date: "2026-09-01", PeopleCount: 38},
		}
		uc := NewUseCase(repo, &fakeProfileRepo{}, &fakeTxManager{}, nopLogger{})

		_, err := uc.Execute(context.Background(), validRequest())
		require.ErrorIs(t, err, domain.ErrCapacityExceeded)
		assert.Len(t, repo.byDate["2026-09-01"], 1)
	})

	t.Run("последовательные заявки заполняют день ровно до лимита", func(t *testing.T) {
		repo := newFakeReservationRepo()
		uc := NewUseCase(repo, &fakeProfileRepo{}, &fakeTxManager{}, nopLogger{})

		// 8 заявок по 5 человек занимают все 40 мест
		for i := 0; i < 8; i++ {
			_, err := uc.Execute(context.Background(), validRequest())
			require.NoError(t, err, "reservation %d", i)
		}

		// девятая не проходит даже на одного человека
		req := validRequest()
		req.PeopleCount = ptr.Ptr(1)
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
	})

	t.Run("пропущенное поле аренды", func(t *testing.T) {
		uc := NewUseCase(newFakeReservationRepo(), &fakeProfileRepo{}, &fakeTxManager{}, nopLogger{})

		req := validRequest()
		req.RentalNeeded = nil

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrMissingField)
	})
}
