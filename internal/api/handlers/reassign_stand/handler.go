package reassign_stand

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
	msgStandNotInSlot     = "у исходного станка нет резервации в этом слоте"
	msgInvalidInput       = "некорректные параметры обмена"
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

// Handle POST /api/v1/slots/{slotId}/reassign
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /slots/{id}/reassign - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	var req ReassignStandRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots/{id}/reassign - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.engine.Reassign(r.Context(), slotID, req.StandFrom, req.StandTo)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrSlotNotFound):
			h.logger.Warn("POST /slots/{id}/reassign - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, booking.ErrStandNotFound):
			h.logger.Warn("POST /slots/{id}/reassign - Stand not found: slot_id=%d, stand_to=%d", slotID, req.StandTo)
			handlers.RespondNotFound(w, msgStandNotFound)

		case errors.Is(err, booking.ErrStandNotInSlot):
			h.logger.Warn("POST /slots/{id}/reassign - Source stand not in slot: slot_id=%d, stand_from=%d",
				slotID, req.StandFrom)
			handlers.RespondNotFound(w, msgStandNotInSlot)

		case errors.Is(err, booking.ErrInvalidInput):
			h.logger.Warn("POST /slots/{id}/reassign - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /slots/{id}/reassign - Failed to reassign: slot_id=%d, stand_from=%d, stand_to=%d, error=%v",
				slotID, req.StandFrom, req.StandTo, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots/{id}/reassign - Stands reassigned successfully: slot_id=%d, stand_from=%d, stand_to=%d",
		slotID, req.StandFrom, req.StandTo)
	handlers.RespondJSON(w, http.StatusOK, FromSwapResult(result))
}
