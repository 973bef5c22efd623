package get_slot_reservations

import (
	"time"

	"github.com/m04kA/VeloStudio-SeatingService/internal/domain"
)

// ReservationResponse HTTP модель резервации
type ReservationResponse struct {
	ID         int64   `json:"id"`
	SlotID     int64   `json:"slotId"`
	StandID    *int64  `json:"standId,omitempty"`
	StandCode  string  `json:"standCode"`
	ClientID   *int64  `json:"clientId,omitempty"`
	ClientName *string `json:"clientName,omitempty"`
	Status     string  `json:"status"`
	Source     string  `json:"source,omitempty"`
	Notes      *string `json:"notes,omitempty"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

// SlotReservationsResponse список резерваций слота
type SlotReservationsResponse struct {
	SlotID       int64                 `json:"slotId"`
	Reservations []ReservationResponse `json:"reservations"`
}

// FromDomain конвертирует доменную резервацию в HTTP модель
func FromDomain(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:         r.ID,
		SlotID:     r.SlotID,
		StandID:    r.StandID,
		StandCode:  r.StandCode,
		ClientID:   r.ClientID,
		ClientName: r.ClientName,
		Status:     string(r.Status),
		Source:     r.Source,
		Notes:      r.Notes,
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  r.UpdatedAt.Format(time.RFC3339),
	}
}
