package claim_reservation

import "context"

type BookingEngine interface {
	Claim(ctx context.Context, reservationID, clientID int64, clientName, source string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
