package seat_slot

// Причины пропуска места: место не обрабатывалось вовсе,
// в отличие от Failed, где выгрузка была начата и не удалась.
const (
	SkipNoStand   = "no stand attached"
	SkipNoAccount = "no account mapping"
	SkipNoClient  = "client not found"
)

// SeatOutcome результат обработки одного места слота
type SeatOutcome struct {
	ReservationID     int64
	StandCode         string
	ClientName        string
	AccountIdentifier string // пусто, если до привязки аккаунта не дошло
	Reason            string // причина пропуска или текст ошибки
}

// Report итог прохода рассадки по слоту
// Каждое валидное место попадает ровно в одну из четырех корзин.
type Report struct {
	RunID  string
	SlotID int64

	Seated        []SeatOutcome
	AlreadySeated []SeatOutcome
	Skipped       []SeatOutcome
	Failed        []SeatOutcome
}

// Total возвращает общее число обработанных мест
func (r *Report) Total() int {
	return len(r.Seated) + len(r.AlreadySeated) + len(r.Skipped) + len(r.Failed)
}
