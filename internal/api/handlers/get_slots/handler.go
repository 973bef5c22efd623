package get_slots

import (
	"net/http"
	"time"

	"github.com/m04kA/VeloStudio-SeatingService/internal/api/handlers"
	"github.com/m04kA/VeloStudio-SeatingService/internal/domain"
)

const (
	msgMissingDate = "отсутствует параметр date"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
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

// Handle GET /api/v1/slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /slots - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	slots, err := h.scheduleRepo.ListSlotsByDate(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /slots - Failed to list slots: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	response := SlotsResponse{
		Date:  dateStr,
		Slots: make([]SlotResponse, 0, len(slots)),
	}
	for _, slot := range slots {
		response.Slots = append(response.Slots, FromDomain(slot))
	}

	h.logger.Info("GET /slots - Retrieved %d slots: date=%s", len(response.Slots), dateStr)
	handlers.RespondJSON(w, http.StatusOK, response)
}
