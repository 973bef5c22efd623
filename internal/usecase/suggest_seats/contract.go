package suggest_seats

import (
	"context"

	"github.com/m04kA/VeloStudio-SeatingService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetSlot(ctx context.Context, id int64) (*domain.Slot, error)
	ListOpenReservations(ctx context.Context, slotID int64) ([]*domain.Reservation, error)
}

// InventoryRepository интерфейс справочника станков и велосипедов
type InventoryRepository interface {
	ListStands(ctx context.Context) ([]*domain.Stand, error)
	ListBikes(ctx context.Context) ([]*domain.Bike, error)
}

// ClientRepository интерфейс справочника клиентов
type ClientRepository interface {
	GetClient(ctx context.Context, id int64) (*domain.Client, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
