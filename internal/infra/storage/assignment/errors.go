package assignment

import "errors"

var (
	// ErrDuplicateRecord возвращается при попытке повторно записать
	// уже существующую пару (reservation, account)
	ErrDuplicateRecord = errors.New("assignment.repository: record already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("assignment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("assignment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("assignment.repository: failed to scan row")
)
