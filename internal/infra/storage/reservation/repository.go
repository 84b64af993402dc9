package reservation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/strikearena/SA-ReservationService/internal/domain"
	"github.com/strikearena/SA-ReservationService/pkg/dbmetrics"
	"github.com/strikearena/SA-ReservationService/pkg/psqlbuilder"
)

const reservationColumns = "id, name, email, team, date, time, people_count, rental_needed, session, checked_in, owner_user_id, created_at"

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое бронирование. ID (uuid) и created_at назначаются
// здесь, на стороне сервера. Если в контексте есть активная транзакция
// (через dbmetrics.WithTx), использует её.
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	reservation.ID = uuid.NewString()

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"id",
			"name",
			"email",
			"team",
			"date",
			"time",
			"people_count",
			"rental_needed",
			"session",
			"checked_in",
			"owner_user_id",
		).
		Values(
			reservation.ID,
			reservation.Name,
			reservation.Email,
			reservation.Team,
			reservation.Date,
			reservation.Time,
			reservation.PeopleCount,
			reservation.RentalNeeded,
			string(reservation.Session),
			reservation.CheckedIn,
			reservation.OwnerUserID,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	reservation.CreatedAt = createdAt.Time

	return reservation, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	reservation, err := r.scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return reservation, nil
}

// ListAll получает все бронирования, отсортированные по дате и времени.
// Админский список работает по полному скану и фильтрует в памяти.
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectBuilder().
		OrderBy("date ASC, time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// ListByDate получает бронирования на конкретную дату.
// Внутри транзакции добавляет FOR UPDATE — так проверка лимита в usecase
// создания бронирования блокирует конкурирующие записи на ту же дату.
func (r *Repository) ListByDate(ctx context.Context, date string) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.selectBuilder().
		Where(squirrel.Eq{"date": date}).
		OrderBy("time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// ListByDateRange получает бронирования за период [from, to] включительно.
// Используется календарем для агрегации по месяцу.
func (r *Repository) ListByDateRange(ctx context.Context, from, to string) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectBuilder().
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		OrderBy("date ASC, time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// SetCheckedIn обновляет флаг чек-ина бронирования
func (r *Repository) SetCheckedIn(ctx context.Context, id string, checkedIn bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("checked_in", checkedIn).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetCheckedIn - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetCheckedIn - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetCheckedIn - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// Delete физически удаляет бронирование (необратимо, soft-delete не предусмотрен)
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// Вспомогательные методы

func (r *Repository) selectBuilder() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"name",
		"email",
		"team",
		"date",
		"time",
		"people_count",
		"rental_needed",
		"session",
		"checked_in",
		"owner_user_id",
		"created_at",
	).From("reservations")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanReservation(row rowScanner) (*domain.Reservation, error) {
	var reservation domain.Reservation
	var session sql.NullString
	var ownerUserID sql.NullString
	var createdAt sql.NullTime

	err := row.Scan(
		&reservation.ID,
		&reservation.Name,
		&reservation.Email,
		&reservation.Team,
		&reservation.Date,
		&reservation.Time,
		&reservation.PeopleCount,
		&reservation.RentalNeeded,
		&session,
		&reservation.CheckedIn,
		&ownerUserID,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	// session может быть NULL или произвольной строкой у legacy-записей
	reservation.Session = domain.Session(session.String)
	if ownerUserID.Valid {
		reservation.OwnerUserID = &ownerUserID.String
	}
	reservation.CreatedAt = createdAt.Time

	return &reservation, nil
}

func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		reservation, err := r.scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
