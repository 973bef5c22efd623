package suggest_seats

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/VeloStudio-SeatingService/internal/api/handlers"
	suggestSeats "github.com/m04kA/VeloStudio-SeatingService/internal/usecase/suggest_seats"
)

const (
	msgInvalidSlotID   = "некорректный ID слота"
	msgInvalidClientID = "некорректный ID клиента"
	msgSlotNotFound    = "слот не найден"
	msgClientNotFound  = "клиент не найден"
)

type Handler struct {
	useCase SuggestSeatsUseCase
	logger  Logger
}

func NewHandler(useCase SuggestSeatsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots/{slotId}/clients/{clientId}/suggestions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /slots/{id}/clients/{id}/suggestions - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	clientID, err := strconv.ParseInt(vars["clientId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /slots/{id}/clients/{id}/suggestions - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), slotID, clientID)
	if err != nil {
		switch {
		case errors.Is(err, suggestSeats.ErrSlotNotFound):
			h.logger.Warn("GET /slots/{id}/clients/{id}/suggestions - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, suggestSeats.ErrClientNotFound):
			h.logger.Warn("GET /slots/{id}/clients/{id}/suggestions - Client not found: client_id=%d", clientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, suggestSeats.ErrInvalidInput):
			h.logger.Warn("GET /slots/{id}/clients/{id}/suggestions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSlotID)

		default:
			h.logger.Error("GET /slots/{id}/clients/{id}/suggestions - Failed to suggest seats: slot_id=%d, client_id=%d, error=%v",
				slotID, clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots/{id}/clients/{id}/suggestions - Ranked %d seats: slot_id=%d, client_id=%d",
		len(result.Suggestions), slotID, clientID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
