package claim_reservation

// ClaimReservationRequest HTTP модель запроса на занятие места
type ClaimReservationRequest struct {
	ClientID   int64  `json:"clientId"`
	ClientName string `json:"clientName"`
	Source     string `json:"source"`
}
