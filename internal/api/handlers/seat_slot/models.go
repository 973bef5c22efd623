package seat_slot

import seatSlot "github.com/m04kA/VeloStudio-SeatingService/internal/usecase/seat_slot"

// SeatOutcomeResponse исход обработки одного места
type SeatOutcomeResponse struct {
	ReservationID     int64  `json:"reservationId"`
	StandCode         string `json:"standCode"`
	ClientName        string `json:"clientName"`
	AccountIdentifier string `json:"accountIdentifier,omitempty"`
	Reason            string `json:"reason,omitempty"`
}

// SeatSlotResponse итог прохода рассадки по слоту
type SeatSlotResponse struct {
	RunID  string `json:"runId"`
	SlotID int64  `json:"slotId"`

	Seated        []SeatOutcomeResponse `json:"seated"`
	AlreadySeated []SeatOutcomeResponse `json:"alreadySeated"`
	Skipped       []SeatOutcomeResponse `json:"skipped"`
	Failed        []SeatOutcomeResponse `json:"failed"`
}

// FromReport конвертирует отчет use case в HTTP модель
func FromReport(report *seatSlot.Report) *SeatSlotResponse {
	return &SeatSlotResponse{
		RunID:         report.RunID,
		SlotID:        report.SlotID,
		Seated:        fromOutcomes(report.Seated),
		AlreadySeated: fromOutcomes(report.AlreadySeated),
		Skipped:       fromOutcomes(report.Skipped),
		Failed:        fromOutcomes(report.Failed),
	}
}

func fromOutcomes(outcomes []seatSlot.SeatOutcome) []SeatOutcomeResponse {
	out := make([]SeatOutcomeResponse, 0, len(outcomes))
	for _, o := range outcomes {
		out = append(out, SeatOutcomeResponse{
			ReservationID:     o.ReservationID,
			StandCode:         o.StandCode,
			ClientName:        o.ClientName,
			AccountIdentifier: o.AccountIdentifier,
			Reason:            o.Reason,
		})
	}
	return out
}
