package seat_slot

import (
	"context"

	seatSlot "github.com/m04kA/VeloStudio-SeatingService/internal/usecase/seat_slot"
)

type SeatSlotUseCase interface {
	Execute(ctx context.Context, slotID int64) (*seatSlot.Report, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
