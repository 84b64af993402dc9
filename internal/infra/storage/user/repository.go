package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/strikearena/SA-ReservationService/internal/domain"
	"github.com/strikearena/SA-ReservationService/pkg/dbmetrics"
	"github.com/strikearena/SA-ReservationService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки Postgres при нарушении уникального индекса
const uniqueViolation = "23505"

// Repository репозиторий учетных записей пользователей
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую учетную запись. ID (uuid) назначается здесь.
func (r *Repository) Create(ctx context.Context, account *domain.UserAccount) (*domain.UserAccount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	account.ID = uuid.NewString()

	query, args, err := psqlbuilder.Insert("users").
		Columns("id", "email", "password_hash", "role").
		Values(account.ID, account.Email, account.PasswordHash, string(account.Role)).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	account.CreatedAt = createdAt.Time

	return account, nil
}

// GetByEmail получает учетную запись по email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.UserAccount, error) {
	return r.getByCondition(ctx, "GetByEmail", squirrel.Eq{"email": email})
}

// GetByID получает учетную запись по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.UserAccount, error) {
	return r.getByCondition(ctx, "GetByID", squirrel.Eq{"id": id})
}

// Вспомогательные методы

func (r *Repository) getByCondition(ctx context.Context, method string, cond squirrel.Eq) (*domain.UserAccount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "email", "password_hash", "role", "created_at").
		From("users").
		Where(cond).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	var account domain.UserAccount
	var role string
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&account.ID,
		&account.Email,
		&account.PasswordHash,
		&role,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan user: %v", ErrScanRow, method, err)
	}

	account.Role = domain.UserRole(role)
	account.CreatedAt = createdAt.Time

	return &account, nil
}
