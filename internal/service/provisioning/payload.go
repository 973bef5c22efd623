package provisioning

import (
	"math"
	"strings"

	"github.com/m04kA/VeloStudio-SeatingService/internal/domain"
	"github.com/m04kA/VeloStudio-SeatingService/internal/integrations/velocloud"
)

// Чистые функции сборки payload'ов для внешней платформы.
// Вся нормализация данных клиента собрана здесь и покрыта тестами отдельно
// от сетевой части.

// SplitName разбивает комбинированное имя на имя и фамилию
// Первый токен - имя, остаток - фамилия. Пустая строка дает две пустых части.
func SplitName(combined string) (first, last string) {
	parts := strings.Fields(combined)
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// NormalizeGender приводит текстовые варианты пола к male/female
// Возвращает nil для неизвестных или пустых значений: вызывающий код
// подставит значение из существующего профиля аккаунта.
func NormalizeGender(gender *string) *string {
	if gender == nil {
		return nil
	}

	normalized := strings.ToLower(strings.TrimSpace(*gender))
	switch normalized {
	case "m", "male", "man", "м", "муж", "мужской", "мужчина":
		v := "male"
		return &v
	case "f", "female", "woman", "ж", "жен", "женский", "женщина":
		v := "female"
		return &v
	default:
		return nil
	}
}

// ResolveFTP возвращает целочисленный FTP клиента или студийный дефолт,
// когда значение отсутствует или некорректно
func ResolveFTP(ftp *float64, defaultFTP int) int {
	if ftp == nil || *ftp <= 0 || math.IsNaN(*ftp) || math.IsInf(*ftp, 0) {
		return defaultFTP
	}
	return int(*ftp)
}

// BuildUserFields собирает payload обновления имени пользователя
// Если у клиента имя не разбито на части, разбивается комбинированное
// имя из резервации.
func BuildUserFields(client *domain.Client, reservation *domain.Reservation) velocloud.UserFields {
	first := strings.TrimSpace(client.FirstName)
	last := strings.TrimSpace(client.LastName)

	if first == "" && last == "" {
		first, last = SplitName(reservation.ClientDisplayName())
	}

	var fields velocloud.UserFields
	if first != "" {
		fields.FirstName = &first
	}
	if last != "" {
		fields.LastName = &last
	}
	return fields
}

// BuildProfileFields собирает payload обновления профиля
// Недостающие обязательные поля берутся из текущего профиля аккаунта:
// пол - из remote профиля, дата рождения - из remote или плейсхолдер.
func BuildProfileFields(client *domain.Client, remote *velocloud.Profile, defaultFTP int) velocloud.ProfileFields {
	fields := velocloud.ProfileFields{
		WeightKg: client.Weight,
		HeightCm: client.Height,
		FTP:      ResolveFTP(client.FTP, defaultFTP),
	}

	if gender := NormalizeGender(client.Gender); gender != nil {
		fields.Gender = gender
	} else if remote != nil && remote.Gender != nil {
		fields.Gender = remote.Gender
	}

	if remote != nil && remote.BirthDate != nil && *remote.BirthDate != "" {
		fields.BirthDate = *remote.BirthDate
	} else {
		fields.BirthDate = domain.DefaultBirthDate
	}

	return fields
}
