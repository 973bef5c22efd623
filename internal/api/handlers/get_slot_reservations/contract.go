package get_slot_reservations

import (
	"context"

	"github.com/m04kA/VeloStudio-SeatingService/internal/domain"
)

type ScheduleRepository interface {
	GetSlot(ctx context.Context, id int64) (*domain.Slot, error)
	ListValidReservations(ctx context.Context, slotID int64) ([]*domain.Reservation, error)
	ListOpenReservations(ctx context.Context, slotID int64) ([]*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
