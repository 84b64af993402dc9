package profile

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/strikearena/SA-ReservationService/internal/domain"
	"github.com/strikearena/SA-ReservationService/pkg/dbmetrics"
	"github.com/strikearena/SA-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий профилей пользователей (данные для префилла формы)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория профилей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByUserID получает профиль пользователя
func (r *Repository) GetByUserID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"user_id",
		"name",
		"email",
		"team_name",
		"updated_at",
	).
		From("user_profiles").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	var profile domain.UserProfile
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&profile.UserID,
		&profile.Name,
		&profile.Email,
		&profile.TeamName,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - scan profile: %v", ErrScanRow, err)
	}

	profile.UpdatedAt = updatedAt.Time

	return &profile, nil
}

// Upsert создает или обновляет профиль пользователя (последняя запись побеждает).
// Вызывается при каждом успешном подтверждении бронирования.
func (r *Repository) Upsert(ctx context.Context, profile *domain.UserProfile) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("user_profiles").
		Columns("user_id", "name", "email", "team_name").
		Values(profile.UserID, profile.Name, profile.Email, profile.TeamName).
		Suffix(`ON CONFLICT (user_id) DO UPDATE
			SET name = EXCLUDED.name,
			    email = EXCLUDED.email,
			    team_name = EXCLUDED.team_name,
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
