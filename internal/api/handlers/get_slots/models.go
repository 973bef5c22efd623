package get_slots

import (
	"github.com/m04kA/VeloStudio-SeatingService/internal/domain"
)

// SlotResponse HTTP модель слота
type SlotResponse struct {
	ID             int64   `json:"id"`
	Date           string  `json:"date"`
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	Label          *string `json:"label,omitempty"`
	SessionKind    string  `json:"sessionKind"`
	InstructorName *string `json:"instructorName,omitempty"`
}

// SlotsResponse список слотов на дату
type SlotsResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// FromDomain конвертирует доменный слот в HTTP модель
func FromDomain(s *domain.Slot) SlotResponse {
	return SlotResponse{
		ID:             s.ID,
		Date:           s.Date.Format(domain.DateFormat),
		StartTime:      s.StartTime.String(),
		EndTime:        s.EndTime.String(),
		Label:          s.Label,
		SessionKind:    string(s.SessionKind),
		InstructorName: s.InstructorName,
	}
}
