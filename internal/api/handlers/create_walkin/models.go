package create_walkin

import (
	"time"

	"github.com/m04kA/VeloStudio-SeatingService/internal/domain"
)

// CreateWalkInRequest HTTP модель запроса на добавление walk-in клиента
type CreateWalkInRequest struct {
	StandID    int64  `json:"standId"`
	ClientID   int64  `json:"clientId"`
	ClientName string `json:"clientName"`
	Source     string `json:"source"`
}

// ReservationResponse HTTP модель созданной резервации
type ReservationResponse struct {
	ID         int64   `json:"id"`
	SlotID     int64   `json:"slotId"`
	StandID    *int64  `json:"standId,omitempty"`
	StandCode  string  `json:"standCode"`
	ClientID   *int64  `json:"clientId,omitempty"`
	ClientName *string `json:"clientName,omitempty"`
	Status     string  `json:"status"`
	Source     string  `json:"source,omitempty"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

// FromDomain конвертирует доменную резервацию в HTTP модель
func FromDomain(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:         r.ID,
		SlotID:     r.SlotID,
		StandID:    r.StandID,
		StandCode:  r.StandCode,
		ClientID:   r.ClientID,
		ClientName: r.ClientName,
		Status:     string(r.Status),
		Source:     r.Source,
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  r.UpdatedAt.Format(time.RFC3339),
	}
}
