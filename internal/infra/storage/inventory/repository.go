package inventory

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/VeloStudio-SeatingService/internal/domain"
	"github.com/m04kA/VeloStudio-SeatingService/pkg/psqlbuilder"
	"github.com/m04kA/VeloStudio-SeatingService/pkg/txmanager"
)

// Repository read-only репозиторий инвентаря: станки и велосипеды
// CRUD инвентаря принадлежит админским/импортным потокам; сервис рассадки
// инвентарь только читает.
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория инвентаря
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetStand получает станок по ID
func (r *Repository) GetStand(ctx context.Context, id int64) (*domain.Stand, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"code",
		"title",
		"bike_id",
		"axle_type",
		"cassette_speeds",
		"position",
	).
		From("stands").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetStand - build select query: %v", ErrBuildQuery, err)
	}

	var stand domain.Stand
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&stand.ID,
		&stand.Code,
		&stand.Title,
		&stand.BikeID,
		&stand.AxleType,
		&stand.CassetteSpeeds,
		&stand.Position,
	)

	if err == sql.ErrNoRows {
		return nil, ErrStandNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetStand - scan stand: %v", ErrScanRow, err)
	}

	return &stand, nil
}

// ListStands получает все станки, отсортированные по позиции, затем по коду
func (r *Repository) ListStands(ctx context.Context) ([]*domain.Stand, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"code",
		"title",
		"bike_id",
		"axle_type",
		"cassette_speeds",
		"position",
	).
		From("stands").
		OrderBy("position ASC NULLS LAST, code ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListStands - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListStands - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	stands := make([]*domain.Stand, 0)
	for rows.Next() {
		var stand domain.Stand
		err := rows.Scan(
			&stand.ID,
			&stand.Code,
			&stand.Title,
			&stand.BikeID,
			&stand.AxleType,
			&stand.CassetteSpeeds,
			&stand.Position,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListStands - scan row: %v", ErrScanRow, err)
		}
		stands = append(stands, &stand)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListStands - rows error: %v", ErrScanRow, err)
	}

	return stands, nil
}

// GetBike получает велосипед по ID
func (r *Repository) GetBike(ctx context.Context, id int64) (*domain.Bike, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"title",
		"owner",
		"height_min_cm",
		"height_max_cm",
	).
		From("bikes").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBike - build select query: %v", ErrBuildQuery, err)
	}

	var bike domain.Bike
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&bike.ID,
		&bike.Title,
		&bike.Owner,
		&bike.HeightMinCm,
		&bike.HeightMaxCm,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBikeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBike - scan bike: %v", ErrScanRow, err)
	}

	return &bike, nil
}

// ListBikes получает все велосипеды, отсортированные по ID
// Порядок важен: подбор любимого велосипеда по свободному тексту должен быть
// воспроизводим, поэтому итерация всегда идет по возрастанию ID.
func (r *Repository) ListBikes(ctx context.Context) ([]*domain.Bike, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"title",
		"owner",
		"height_min_cm",
		"height_max_cm",
	).
		From("bikes").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBikes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBikes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bikes := make([]*domain.Bike, 0)
	for rows.Next() {
		var bike domain.Bike
		err := rows.Scan(
			&bike.ID,
			&bike.Title,
			&bike.Owner,
			&bike.HeightMinCm,
			&bike.HeightMaxCm,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListBikes - scan row: %v", ErrScanRow, err)
		}
		bikes = append(bikes, &bike)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBikes - rows error: %v", ErrScanRow, err)
	}

	return bikes, nil
}
