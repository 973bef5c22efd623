package clients

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/VeloStudio-SeatingService/internal/domain"
	"github.com/m04kA/VeloStudio-SeatingService/pkg/psqlbuilder"
	"github.com/m04kA/VeloStudio-SeatingService/pkg/txmanager"
)

// Repository read-only справочник клиентов
// Профили заводятся импортом/админкой; сервис рассадки их только читает.
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр справочника клиентов
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetClient получает профиль клиента по ID
func (r *Repository) GetClient(ctx context.Context, id int64) (*domain.Client, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"first_name",
		"last_name",
		"height",
		"weight",
		"ftp",
		"gender",
		"favorite_bike",
	).
		From("clients").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetClient - build select query: %v", ErrBuildQuery, err)
	}

	var client domain.Client
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&client.ID,
		&client.FirstName,
		&client.LastName,
		&client.Height,
		&client.Weight,
		&client.FTP,
		&client.Gender,
		&client.FavoriteBike,
	)

	if err == sql.ErrNoRows {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetClient - scan client: %v", ErrScanRow, err)
	}

	return &client, nil
}
