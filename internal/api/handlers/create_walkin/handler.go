package create_walkin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/VeloStudio-SeatingService/internal/api/handlers"
	"github.com/m04kA/VeloStudio-SeatingService/internal/service/booking"
)

const (
	msgInvalidSlotID      = "некорректный ID слота"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSlotNotFound       = "слот не найден"
	msgStandNotFound      = "станок не найден"
	msgSeatTaken          = "станок уже занят в этом слоте"
	msgInvalidInput       = "некорректные данные клиента"
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

// Handle POST /api/v1/slots/{slotId}/walkins
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /slots/{id}/walkins - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	var req CreateWalkInRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots/{id}/walkins - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	reservation, err := h.engine.AddWalkIn(r.Context(), slotID, req.StandID, req.ClientID, req.ClientName, req.Source)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrSlotNotFound):
			h.logger.Warn("POST /slots/{id}/walkins - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, booking.ErrStandNotFound):
			h.logger.Warn("POST /slots/{id}/walkins - Stand not found: slot_id=%d, stand_id=%d", slotID, req.StandID)
			handlers.RespondNotFound(w, msgStandNotFound)

		case errors.Is(err, booking.ErrSeatConflict):
			h.logger.Warn("POST /slots/{id}/walkins - Seat taken: slot_id=%d, stand_id=%d", slotID, req.StandID)
			handlers.RespondConflict(w, msgSeatTaken)

		case errors.Is(err, booking.ErrInvalidInput):
			h.logger.Warn("POST /slots/{id}/walkins - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /slots/{id}/walkins - Failed to add walk-in: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots/{id}/walkins - Walk-in seated successfully: reservation_id=%d, slot_id=%d, stand_id=%d",
		reservation.ID, slotID, req.StandID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(reservation))
}
