package assignment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/VeloStudio-SeatingService/internal/domain"
	"github.com/m04kA/VeloStudio-SeatingService/pkg/psqlbuilder"
	"github.com/m04kA/VeloStudio-SeatingService/pkg/txmanager"
)

// Код ошибки PostgreSQL для нарушения уникального ограничения
const pqUniqueViolation = "23505"

// Repository журнал идемпотентности provisioning'а
// Append-only: записи создаются один раз при успешной выгрузке профиля
// и никогда не обновляются. Единственный источник истины для
// "эта пара (reservation, account) уже обработана".
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр журнала
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Exists проверяет, есть ли запись для пары (reservation, account)
func (r *Repository) Exists(ctx context.Context, reservationID int64, accountIdentifier string) (bool, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("assignment_records").
		Where(squirrel.Eq{
			"reservation_id":     reservationID,
			"account_identifier": accountIdentifier,
		}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: Exists - scan row: %v", ErrScanRow, err)
	}

	return true, nil
}

// Create записывает факт успешного provisioning'а пары (reservation, account)
// Конкурентная вставка той же пары схлопывается в ErrDuplicateRecord,
// который вызывающий код трактует как "уже применено".
func (r *Repository) Create(ctx context.Context, record *domain.AssignmentRecord) (*domain.AssignmentRecord, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("assignment_records").
		Columns("reservation_id", "account_identifier").
		Values(record.ReservationID, record.AccountIdentifier).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&record.ID, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return nil, ErrDuplicateRecord
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	record.CreatedAt = createdAt.Time

	return record, nil
}
