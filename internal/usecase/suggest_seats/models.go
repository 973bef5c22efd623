package suggest_seats

// Suggestion одно открытое место слота в порядке пригодности для клиента
type Suggestion struct {
	ReservationID int64
	StandID       *int64
	StandCode     string
	StandLabel    string
	BikeTitle     *string
	Score         float64
}

// Response упорядоченный список мест: лучшие первыми
type Response struct {
	SlotID      int64
	ClientID    int64
	Suggestions []Suggestion
}
