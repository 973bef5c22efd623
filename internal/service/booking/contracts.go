package booking

import (
	"context"

	"github.com/m04kA/VeloStudio-SeatingService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetSlot(ctx context.Context, id int64) (*domain.Slot, error)
	GetReservation(ctx context.Context, id int64) (*domain.Reservation, error)
	GetBySlotAndStand(ctx context.Context, slotID, standID int64) (*domain.Reservation, error)
	CreateReservation(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	ClaimAvailable(ctx context.Context, id int64, clientID int64, clientName, source string) error
	AttachClient(ctx context.Context, id int64, clientID *int64, clientName *string, source string) error
	Release(ctx context.Context, id int64) error
	DetachStand(ctx context.Context, id int64) error
	AttachStand(ctx context.Context, id int64, standID int64, standCode string) error
}

// InventoryRepository интерфейс каталога инвентаря (только чтение)
type InventoryRepository interface {
	GetStand(ctx context.Context, id int64) (*domain.Stand, error)
}

// TransactionManager интерфейс для управления транзакциями
// Каждая операция движка выполняется как одна атомарная транзакция.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
