package seat_slot

import (
	"context"

	"github.com/m04kA/VeloStudio-SeatingService/internal/domain"
	"github.com/m04kA/VeloStudio-SeatingService/internal/service/provisioning"
)

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetSlot(ctx context.Context, id int64) (*domain.Slot, error)
	ListValidReservations(ctx context.Context, slotID int64) ([]*domain.Reservation, error)
}

// ClientRepository интерфейс справочника клиентов
type ClientRepository interface {
	GetClient(ctx context.Context, id int64) (*domain.Client, error)
}

// AccountMapping интерфейс привязки станков к аккаунтам платформы
type AccountMapping interface {
	ForStand(standID int64) (domain.ExternalAccount, bool)
}

// Provisioner интерфейс идемпотентной выгрузки профиля на аккаунт
type Provisioner interface {
	Apply(ctx context.Context, reservation *domain.Reservation, client *domain.Client, account *domain.ExternalAccount) (*provisioning.Result, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
