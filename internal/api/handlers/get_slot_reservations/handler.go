package get_slot_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/VeloStudio-SeatingService/internal/api/handlers"
	"github.com/m04kA/VeloStudio-SeatingService/internal/domain"
	scheduleRepo "github.com/m04kA/VeloStudio-SeatingService/internal/infra/storage/schedule"
)

const (
	msgInvalidSlotID = "некорректный ID слота"
	msgInvalidView   = "некорректный параметр view, ожидается valid или open"
	msgSlotNotFound  = "слот не найден"
)

type Handler struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

func NewHandler(scheduleRepo ScheduleRepository, logger Logger) *Handler {
	return &Handler{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// Handle GET /api/v1/slots/{slotId}/reservations?view=valid|open
// view=valid (по умолчанию) - занятые места с клиентами,
// view=open - открытые места без клиентов.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /slots/{id}/reservations - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	view := r.URL.Query().Get("view")
	if view == "" {
		view = "valid"
	}
	if view != "valid" && view != "open" {
		h.logger.Warn("GET /slots/{id}/reservations - Invalid view: %s", view)
		handlers.RespondBadRequest(w, msgInvalidView)
		return
	}

	if _, err := h.scheduleRepo.GetSlot(r.Context(), slotID); err != nil {
		if errors.Is(err, scheduleRepo.ErrSlotNotFound) {
			h.logger.Warn("GET /slots/{id}/reservations - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)
			return
		}
		h.logger.Error("GET /slots/{id}/reservations - Failed to get slot: slot_id=%d, error=%v", slotID, err)
		handlers.RespondInternalError(w)
		return
	}

	var reservations []*domain.Reservation
	switch view {
	case "open":
		list, err := h.scheduleRepo.ListOpenReservations(r.Context(), slotID)
		if err != nil {
			h.logger.Error("GET /slots/{id}/reservations - Failed to list open reservations: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
			return
		}
		reservations = list
	default:
		list, err := h.scheduleRepo.ListValidReservations(r.Context(), slotID)
		if err != nil {
			h.logger.Error("GET /slots/{id}/reservations - Failed to list reservations: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
			return
		}
		reservations = list
	}

	response := SlotReservationsResponse{
		SlotID:       slotID,
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}
	for _, reservation := range reservations {
		response.Reservations = append(response.Reservations, FromDomain(reservation))
	}

	h.logger.Info("GET /slots/{id}/reservations - Retrieved %d reservations: slot_id=%d, view=%s",
		len(response.Reservations), slotID, view)
	handlers.RespondJSON(w, http.StatusOK, response)
}
