package reassign_stand

import (
	"context"

	"github.com/m04kA/VeloStudio-SeatingService/internal/service/booking"
)

type BookingEngine interface {
	Reassign(ctx context.Context, slotID, standFrom, standTo int64) (*booking.SwapResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
