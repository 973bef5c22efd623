package provisioning

import (
	"context"
	"time"

	"github.com/m04kA/VeloStudio-SeatingService/internal/domain"
	"github.com/m04kA/VeloStudio-SeatingService/internal/integrations/velocloud"
)

// LedgerRepository интерфейс журнала идемпотентности
type LedgerRepository interface {
	Exists(ctx context.Context, reservationID int64, accountIdentifier string) (bool, error)
	Create(ctx context.Context, record *domain.AssignmentRecord) (*domain.AssignmentRecord, error)
}

// PlatformClient интерфейс клиента платформы виртуального велоспорта
type PlatformClient interface {
	Login(ctx context.Context, baseURL, email, password string) (*velocloud.Session, error)
	FetchProfile(ctx context.Context, session *velocloud.Session) (*velocloud.Profile, error)
	UpdateUser(ctx context.Context, session *velocloud.Session, fields velocloud.UserFields) error
	UpdateProfile(ctx context.Context, session *velocloud.Session, fields velocloud.ProfileFields) error
}

// MetricsRecorder интерфейс для метрик внешних вызовов (опционален, может быть nil)
type MetricsRecorder interface {
	ObserveExternalCall(target, operation, outcome string, elapsed time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
