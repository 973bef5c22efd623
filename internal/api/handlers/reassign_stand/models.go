package reassign_stand

import "github.com/m04kA/VeloStudio-SeatingService/internal/service/booking"

// ReassignStandRequest HTTP модель запроса на обмен станками
type ReassignStandRequest struct {
	StandFrom int64 `json:"standFrom"`
	StandTo   int64 `json:"standTo"`
}

// ReassignStandResponse HTTP модель результата обмена
// Пустая строка означает, что сторона была свободна.
type ReassignStandResponse struct {
	FromClient string `json:"fromClient"`
	ToClient   string `json:"toClient"`
}

// FromSwapResult конвертирует результат обмена в HTTP модель
func FromSwapResult(result *booking.SwapResult) *ReassignStandResponse {
	return &ReassignStandResponse{
		FromClient: result.FromClient,
		ToClient:   result.ToClient,
	}
}
