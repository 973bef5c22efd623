package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/VeloStudio-SeatingService/internal/domain"
	"github.com/m04kA/VeloStudio-SeatingService/pkg/psqlbuilder"
	"github.com/m04kA/VeloStudio-SeatingService/pkg/txmanager"
)

var reservationColumns = []string{
	"id",
	"slot_id",
	"stand_id",
	"stand_code",
	"client_id",
	"client_name",
	"status",
	"source",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий расписания: слоты и резервации станков в слотах
// Владеет инвариантом уникальности: на (slot_id, stand_id) не более одной
// резервации в статусе booked (частичный уникальный индекс в БД).
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetSlot получает слот по ID
func (r *Repository) GetSlot(ctx context.Context, id int64) (*domain.Slot, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"slot_date",
		"start_time",
		"end_time",
		"label",
		"session_kind",
		"instructor_name",
		"created_at",
		"updated_at",
	).
		From("slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSlot - build select query: %v", ErrBuildQuery, err)
	}

	var slot domain.Slot
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&slot.Date,
		&slot.StartTime,
		&slot.EndTime,
		&slot.Label,
		&slot.SessionKind,
		&slot.InstructorName,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSlot - scan slot: %v", ErrScanRow, err)
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return &slot, nil
}

// ListSlotsByDate получает все слоты на указанную дату, отсортированные по времени начала
func (r *Repository) ListSlotsByDate(ctx context.Context, date time.Time) ([]*domain.Slot, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"slot_date",
		"start_time",
		"end_time",
		"label",
		"session_kind",
		"instructor_name",
		"created_at",
		"updated_at",
	).
		From("slots").
		Where(squirrel.Eq{"slot_date": date}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListSlotsByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListSlotsByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.Slot, 0)
	for rows.Next() {
		var slot domain.Slot
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&slot.ID,
			&slot.Date,
			&slot.StartTime,
			&slot.EndTime,
			&slot.Label,
			&slot.SessionKind,
			&slot.InstructorName,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListSlotsByDate - scan row: %v", ErrScanRow, err)
		}

		slot.CreatedAt = createdAt.Time
		slot.UpdatedAt = updatedAt.Time
		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListSlotsByDate - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// GetReservation получает резервацию по ID
func (r *Repository) GetReservation(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции блокируем строку: резервацию сейчас будут менять
	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetReservation - build select query: %v", ErrBuildQuery, err)
	}

	reservation, err := r.scanReservationRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetReservation - scan reservation: %v", ErrScanRow, err)
	}

	return reservation, nil
}

// ListOpenReservations получает открытые места слота:
// статус available, клиент не назначен. Отсортированы по коду станка.
func (r *Repository) ListOpenReservations(ctx context.Context, slotID int64) ([]*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{
			"slot_id":   slotID,
			"status":    domain.StatusAvailable,
			"client_id": nil,
		}).
		OrderBy("stand_code ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListOpenReservations - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOpenReservations - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// ListValidReservations получает занятые места слота для прохода рассадки:
// статус booked с назначенным клиентом; cancelled/legacy/blocked исключены.
func (r *Repository) ListValidReservations(ctx context.Context, slotID int64) ([]*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{
			"slot_id": slotID,
			"status":  domain.StatusBooked,
		}).
		Where(squirrel.NotEq{"client_id": nil}).
		OrderBy("stand_code ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListValidReservations - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListValidReservations - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// GetBySlotAndStand получает резервацию станка в слоте
// Терминальные статусы (cancelled/legacy/blocked) не учитываются.
func (r *Repository) GetBySlotAndStand(ctx context.Context, slotID, standID int64) (*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{
			"slot_id":  slotID,
			"stand_id": standID,
		}).
		Where(squirrel.NotEq{"status": domain.ExcludedStatuses}).
		OrderBy("id ASC").
		Limit(1)

	// Протокол обмена станками читает эти строки перед перезаписью
	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlotAndStand - build select query: %v", ErrBuildQuery, err)
	}

	reservation, err := r.scanReservationRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlotAndStand - scan reservation: %v", ErrScanRow, err)
	}

	return reservation, nil
}

// CreateReservation создает новую резервацию
// Используется при генерации слота, для walk-in клиентов и в протоколе обмена.
func (r *Repository) CreateReservation(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"slot_id",
			"stand_id",
			"stand_code",
			"client_id",
			"client_name",
			"status",
			"source",
			"notes",
		).
		Values(
			reservation.SlotID,
			reservation.StandID,
			reservation.StandCode,
			reservation.ClientID,
			reservation.ClientName,
			reservation.Status,
			reservation.Source,
			reservation.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateReservation - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&reservation.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: CreateReservation - execute insert: %v", ErrExecQuery, err)
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return reservation, nil
}

// ClaimAvailable условно занимает открытую резервацию за клиентом
// Обновляет строку только если статус всё ещё available: проигравший гонку
// получает ErrSeatTaken, а не молчаливый успех.
func (r *Repository) ClaimAvailable(ctx context.Context, id int64, clientID int64, clientName, source string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.StatusBooked).
		Set("client_id", clientID).
		Set("client_name", clientName).
		Set("source", source).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":     id,
			"status": domain.StatusAvailable,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ClaimAvailable - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ClaimAvailable - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ClaimAvailable - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Различаем "резервации нет" и "резервацию успели занять"
		if _, err := r.GetReservation(ctx, id); err != nil {
			return err
		}
		return ErrSeatTaken
	}

	return nil
}

// AttachClient переносит личность клиента на резервацию и переводит её в booked
// Используется протоколом обмена; статус строки не проверяется.
func (r *Repository) AttachClient(ctx context.Context, id int64, clientID *int64, clientName *string, source string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.StatusBooked).
		Set("client_id", clientID).
		Set("client_name", clientName).
		Set("source", source).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AttachClient - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "AttachClient")
}

// Release освобождает резервацию: клиент снимается, статус возвращается в available
// Станок и source сохраняются для аудита. Идемпотентна: повторный вызов
// на уже свободной резервации - no-op.
func (r *Repository) Release(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.StatusAvailable).
		Set("client_id", nil).
		Set("client_name", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Release - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Release")
}

// DetachStand временно отвязывает резервацию от станка (stand_id = NULL)
// Первый шаг трёхзаписного обмена: освобождает старый станок, чтобы
// уникальность (slot_id, stand_id) не нарушалась в промежуточной точке.
func (r *Repository) DetachStand(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("stand_id", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DetachStand - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "DetachStand")
}

// AttachStand привязывает резервацию к станку, обновляя денормализованный код
func (r *Repository) AttachStand(ctx context.Context, id int64, standID int64, standCode string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("stand_id", standID).
		Set("stand_code", standCode).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AttachStand - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "AttachStand")
}

// execExpectingRow выполняет update и требует ровно одну затронутую строку
func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, query string, args []interface{}, method string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, method, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// scanReservationRow сканирует одну строку резервации
func (r *Repository) scanReservationRow(row *sql.Row) (*domain.Reservation, error) {
	var reservation domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&reservation.ID,
		&reservation.SlotID,
		&reservation.StandID,
		&reservation.StandCode,
		&reservation.ClientID,
		&reservation.ClientName,
		&reservation.Status,
		&reservation.Source,
		&reservation.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return &reservation, nil
}

// scanReservations сканирует результаты запроса в слайс резерваций
func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		var reservation domain.Reservation
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&reservation.ID,
			&reservation.SlotID,
			&reservation.StandID,
			&reservation.StandCode,
			&reservation.ClientID,
			&reservation.ClientName,
			&reservation.Status,
			&reservation.Source,
			&reservation.Notes,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}

		reservation.CreatedAt = createdAt.Time
		reservation.UpdatedAt = updatedAt.Time
		reservations = append(reservations, &reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
