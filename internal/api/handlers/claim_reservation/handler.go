package claim_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/VeloStudio-SeatingService/internal/api/handlers"
	"github.com/m04kA/VeloStudio-SeatingService/internal/service/booking"
)

const (
	msgInvalidReservationID = "некорректный ID резервации"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgNotFound             = "резервация не найдена"
	msgSeatTaken            = "место уже занято, перечитайте слот и выберите другое"
	msgInvalidInput         = "некорректные данные клиента"
)

type Handler struct {
	engine BookingEngine
	logger Logger
}

func NewHandler(engine BookingEngine, logger Logger) *Handler {
	return &Handler{
		engine: engine,
		logger: logger,
	}
}

// Handle POST /api/v1/reservations/{reservationId}/claim
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/claim - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req ClaimReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/{id}/claim - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.engine.Claim(r.Context(), reservationID, req.ClientID, req.ClientName, req.Source)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{id}/claim - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, booking.ErrSeatConflict):
			h.logger.Warn("POST /reservations/{id}/claim - Seat taken: reservation_id=%d, client_id=%d",
				reservationID, req.ClientID)
			handlers.RespondConflict(w, msgSeatTaken)

		case errors.Is(err, booking.ErrInvalidInput):
			h.logger.Warn("POST /reservations/{id}/claim - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations/{id}/claim - Failed to claim: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{id}/claim - Seat claimed successfully: reservation_id=%d, client_id=%d",
		reservationID, req.ClientID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
