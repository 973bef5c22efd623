package seat_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/VeloStudio-SeatingService/internal/api/handlers"
	seatSlot "github.com/m04kA/VeloStudio-SeatingService/internal/usecase/seat_slot"
)

const (
	msgInvalidSlotID = "некорректный ID слота"
	msgSlotNotFound  = "слот не найден"
)

type Handler struct {
	useCase SeatSlotUseCase
	logger  Logger
}

func NewHandler(useCase SeatSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots/{slotId}/seat
// Запускает проход рассадки. Проход идемпотентен, повторный запуск
// безопасен: уже обработанные места возвращаются в alreadySeated.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /slots/{id}/seat - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	report, err := h.useCase.Execute(r.Context(), slotID)
	if err != nil {
		switch {
		case errors.Is(err, seatSlot.ErrSlotNotFound):
			h.logger.Warn("POST /slots/{id}/seat - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, seatSlot.ErrInvalidInput):
			h.logger.Warn("POST /slots/{id}/seat - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSlotID)

		default:
			h.logger.Error("POST /slots/{id}/seat - Failed to seat slot: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots/{id}/seat - Run %s finished: slot_id=%d, seated=%d, already=%d, skipped=%d, failed=%d",
		report.RunID, slotID, len(report.Seated), len(report.AlreadySeated), len(report.Skipped), len(report.Failed))
	handlers.RespondJSON(w, http.StatusOK, FromReport(report))
}
