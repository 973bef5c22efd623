package booking

import "errors"

var (
	// ErrReservationNotFound возвращается, когда резервация не найдена
	ErrReservationNotFound = errors.New("booking: reservation not found")

	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("booking: slot not found")

	// ErrStandNotFound возвращается, когда станок отсутствует в инвентаре
	ErrStandNotFound = errors.New("booking: stand not found")

	// ErrStandNotInSlot возвращается, когда у станка нет резервации в слоте
	ErrStandNotInSlot = errors.New("booking: stand has no reservation in this slot")

	// ErrSeatConflict возвращается, когда место занято: условное обновление
	// проиграло гонку или целевой станок уже занят
	ErrSeatConflict = errors.New("booking: seat conflict")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках движка
	ErrInternal = errors.New("booking: internal error")
)
