package create_walkin

import (
	"context"

	"github.com/m04kA/VeloStudio-SeatingService/internal/domain"
)

type BookingEngine interface {
	AddWalkIn(ctx context.Context, slotID, standID, clientID int64, clientName, source string) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
