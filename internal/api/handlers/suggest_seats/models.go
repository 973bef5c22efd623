package suggest_seats

import suggestSeats "github.com/m04kA/VeloStudio-SeatingService/internal/usecase/suggest_seats"

// SuggestionResponse одно место в порядке пригодности
type SuggestionResponse struct {
	ReservationID int64   `json:"reservationId"`
	StandID       *int64  `json:"standId,omitempty"`
	StandCode     string  `json:"standCode"`
	StandLabel    string  `json:"standLabel,omitempty"`
	BikeTitle     *string `json:"bikeTitle,omitempty"`
	Score         float64 `json:"score"`
}

// SuggestSeatsResponse упорядоченный список мест для клиента
type SuggestSeatsResponse struct {
	SlotID      int64                `json:"slotId"`
	ClientID    int64                `json:"clientId"`
	Suggestions []SuggestionResponse `json:"suggestions"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *suggestSeats.Response) *SuggestSeatsResponse {
	out := &SuggestSeatsResponse{
		SlotID:      resp.SlotID,
		ClientID:    resp.ClientID,
		Suggestions: make([]SuggestionResponse, 0, len(resp.Suggestions)),
	}
	for _, s := range resp.Suggestions {
		out.Suggestions = append(out.Suggestions, SuggestionResponse{
			ReservationID: s.ReservationID,
			StandID:       s.StandID,
			StandCode:     s.StandCode,
			StandLabel:    s.StandLabel,
			BikeTitle:     s.BikeTitle,
			Score:         s.Score,
		})
	}
	return out
}
