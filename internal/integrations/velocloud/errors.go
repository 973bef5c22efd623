package velocloud

import "errors"

var (
	// ErrAuth возвращается при неверных учетных данных или отказе в авторизации
	ErrAuth = errors.New("velocloud client: authentication failed")

	// ErrInternal возвращается при внутренних ошибках клиента
	// (невозможность построить или выполнить запрос, включая таймаут)
	ErrInternal = errors.New("velocloud client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе платформы
	ErrInvalidResponse = errors.New("velocloud client: invalid response")
)
