package inventory

import "errors"

var (
	// ErrStandNotFound возвращается, когда станок не найден
	ErrStandNotFound = errors.New("inventory.repository: stand not found")

	// ErrBikeNotFound возвращается, когда велосипед не найден
	ErrBikeNotFound = errors.New("inventory.repository: bike not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("inventory.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("inventory.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("inventory.repository: failed to scan row")
)
