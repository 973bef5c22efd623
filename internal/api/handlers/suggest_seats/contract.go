package suggest_seats

import (
	"context"

	suggestSeats "github.com/m04kA/VeloStudio-SeatingService/internal/usecase/suggest_seats"
)

type SuggestSeatsUseCase interface {
	Execute(ctx context.Context, slotID, clientID int64) (*suggestSeats.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
