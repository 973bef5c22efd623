package velocloud

// Session авторизованная сессия на платформе
// Привязана к base URL конкретного аккаунта.
type Session struct {
	BaseURL string
	Token   string
}

// Profile профиль аккаунта на платформе
// Все поля опциональны: платформа может не хранить часть данных.
type Profile struct {
	WeightKg  *float64 `json:"weightKg,omitempty"`
	HeightCm  *float64 `json:"heightCm,omitempty"`
	FTP       *int     `json:"ftp,omitempty"`
	Gender    *string  `json:"gender,omitempty"`
	BirthDate *string  `json:"birthDate,omitempty"` // YYYY-MM-DD
}

// UserFields частичное обновление имени пользователя аккаунта
type UserFields struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
}

// IsEmpty сообщает, что обновлять нечего
func (f UserFields) IsEmpty() bool {
	return f.FirstName == nil && f.LastName == nil
}

// ProfileFields частичное обновление профиля аккаунта
// FTP и BirthDate обязательны: платформа отклоняет профиль без них.
type ProfileFields struct {
	WeightKg  *float64 `json:"weightKg,omitempty"`
	HeightCm  *float64 `json:"heightCm,omitempty"`
	FTP       int      `json:"ftp"`
	Gender    *string  `json:"gender,omitempty"`
	BirthDate string   `json:"birthDate"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// ErrorResponse модель ошибки платформы
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
