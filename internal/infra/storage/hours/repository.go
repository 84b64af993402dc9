package hours

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/strikearena/SA-ReservationService/internal/domain"
	"github.com/strikearena/SA-ReservationService/pkg/dbmetrics"
	"github.com/strikearena/SA-ReservationService/pkg/psqlbuilder"
)

// singletonID единственная глобальная запись о часах работы
const singletonID = 1

// Repository репозиторий часов работы площадки
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория часов работы
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает текущие часы работы
func (r *Repository) Get(ctx context.Context) (*domain.BusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("open_time", "close_time", "updated_at").
		From("business_hours").
		Where(squirrel.Eq{"id": singletonID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var hours domain.BusinessHours
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&hours.OpenTime,
		&hours.CloseTime,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan business hours: %v", ErrScanRow, err)
	}

	hours.UpdatedAt = updatedAt.Time

	return &hours, nil
}

// Upsert сохраняет часы работы (последняя запись побеждает)
func (r *Repository) Upsert(ctx context.Context, hours *domain.BusinessHours) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("business_hours").
		Columns("id", "open_time", "close_time").
		Values(singletonID, hours.OpenTime, hours.CloseTime).
		Suffix(`ON CONFLICT (id) DO UPDATE
			SET open_time = EXCLUDED.open_time,
			    close_time = EXCLUDED.close_time,
			    updated_at = NOW()`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
