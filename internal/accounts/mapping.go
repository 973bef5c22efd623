package accounts

import (
	"github.com/m04kA/VeloStudio-SeatingService/internal/config"
	"github.com/m04kA/VeloStudio-SeatingService/internal/domain"
)

// Mapping статическая привязка станков к аккаунтам внешней платформы
// Загружается один раз при старте из конфигурации и после этого неизменяема:
// никакого глобального состояния, только явная зависимость у потребителей.
type Mapping struct {
	byStand map[int64]domain.ExternalAccount
}

// NewMapping строит привязку из секции [[accounts]] конфигурации
func NewMapping(entries []config.AccountConfig) *Mapping {
	byStand := make(map[int64]domain.ExternalAccount, len(entries))
	for _, e := range entries {
		byStand[e.StandID] = domain.ExternalAccount{
			Identifier:  e.Identifier,
			Email:       e.Email,
			Password:    e.Password,
			BaseURL:     e.BaseURL,
			DisplayName: e.DisplayName,
		}
	}
	return &Mapping{byStand: byStand}
}

// ForStand возвращает аккаунт, привязанный к станку
// Второе значение false, если станок не привязан ни к одному аккаунту.
func (m *Mapping) ForStand(standID int64) (domain.ExternalAccount, bool) {
	acc, ok := m.byStand[standID]
	return acc, ok
}

// Size возвращает количество привязанных станков
func (m *Mapping) Size() int {
	return len(m.byStand)
}
