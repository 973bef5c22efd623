package provisioning

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("provisioning: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	// (журнал недоступен и т.п.); ошибки внешней платформы сюда не попадают,
	// они возвращаются как Result со статусом Failed
	ErrInternal = errors.New("provisioning: internal error")
)
