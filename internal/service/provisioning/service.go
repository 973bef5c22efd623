package provisioning

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/VeloStudio-SeatingService/internal/domain"
	assignmentRepo "github.com/m04kA/VeloStudio-SeatingService/internal/infra/storage/assignment"
)

const metricsTarget = "velocloud"

// Status исход provisioning'а одной пары (reservation, account)
type Status string

const (
	// StatusApplied профиль выгружен, запись в журнале создана
	StatusApplied Status = "applied"

	// StatusAlreadyApplied пара уже есть в журнале, сетевых вызовов не было
	// Это не успех и не ошибка, а отдельный исход идемпотентного пропуска.
	StatusAlreadyApplied Status = "already_applied"

	// StatusFailed выгрузка не удалась, журнал не тронут, повтор возможен
	StatusFailed Status = "failed"
)

// Result результат provisioning'а
type Result struct {
	Status Status
	Error  string // текст ошибки платформы без учетных данных, только для Failed
}

// Service идемпотентно выгружает профиль клиента на аккаунт внешней платформы
// Ровно один раз на пару (reservation, account): журнал проверяется перед
// каждой попыткой и пишется только после успеха обоих удаленных вызовов.
type Service struct {
	ledger     LedgerRepository
	platform   PlatformClient
	defaultFTP int
	metrics    MetricsRecorder // может быть nil
	logger     Logger
}

// NewService создает новый экземпляр сервиса provisioning'а
func NewService(
	ledger LedgerRepository,
	platform PlatformClient,
	defaultFTP int,
	metrics MetricsRecorder,
	logger Logger,
) *Service {
	return &Service{
		ledger:     ledger,
		platform:   platform,
		defaultFTP: defaultFTP,
		metrics:    metrics,
		logger:     logger,
	}
}

// Apply выгружает профиль клиента на аккаунт, привязанный к резервации
//
// Шаги: проверка журнала -> login -> чтение remote профиля -> сборка
// payload'ов -> до двух удаленных обновлений -> запись в журнал.
// Ошибка любого удаленного вызова возвращается как Result{Failed} с текстом
// ошибки; журнал при этом не пишется, повторная попытка возможна.
// Ошибка журнала (БД) возвращается как error.
func (s *Service) Apply(ctx context.Context, reservation *domain.Reservation, client *domain.Client, account *domain.ExternalAccount) (*Result, error) {
	if reservation == nil || client == nil || account == nil {
		return nil, fmt.Errorf("%w: reservation, client and account are required", ErrInvalidInput)
	}

	s.logger.Info("Apply: reservation=%d client=%d account=%s", reservation.ID, client.ID, account.Identifier)

	// 1. Журнал: пара уже обработана - пропускаем без сетевых вызовов
	applied, err := s.ledger.Exists(ctx, reservation.ID, account.Identifier)
	if err != nil {
		return nil, fmt.Errorf("%w: Apply - check ledger: %v", ErrInternal, err)
	}
	if applied {
		s.logger.Info("Apply: reservation=%d account=%s already applied, skipping", reservation.ID, account.Identifier)
		return &Result{Status: StatusAlreadyApplied}, nil
	}

	// 2. Аутентификация
	start := time.Now()
	session, err := s.platform.Login(ctx, account.BaseURL, account.Email, account.Password)
	s.observe("login", start, err)
	if err != nil {
		s.logger.Warn("Apply: login failed for account=%s: %v", account.Identifier, err)
		return s.failed("login failed", err), nil
	}

	// 3. Текущий remote профиль: сохраняем поля, которых нет у клиента
	start = time.Now()
	remote, err := s.platform.FetchProfile(ctx, session)
	s.observe("fetch_profile", start, err)
	if err != nil {
		s.logger.Warn("Apply: fetch profile failed for account=%s: %v", account.Identifier, err)
		return s.failed("fetch profile failed", err), nil
	}

	// 4. Payload'ы
	userFields := BuildUserFields(client, reservation)
	profileFields := BuildProfileFields(client, remote, s.defaultFTP)

	// 5. Удаленные обновления: имя (если есть что обновлять) и профиль
	if !userFields.IsEmpty() {
		start = time.Now()
		err = s.platform.UpdateUser(ctx, session, userFields)
		s.observe("update_user", start, err)
		if err != nil {
			s.logger.Warn("Apply: update user failed for account=%s: %v", account.Identifier, err)
			return s.failed("update user failed", err), nil
		}
	}

	start = time.Now()
	err = s.platform.UpdateProfile(ctx, session, profileFields)
	s.observe("update_profile", start, err)
	if err != nil {
		s.logger.Warn("Apply: update profile failed for account=%s: %v", account.Identifier, err)
		return s.failed("update profile failed", err), nil
	}

	// 6. Журнал пишется только после успеха всех применимых вызовов
	_, err = s.ledger.Create(ctx, &domain.AssignmentRecord{
		ReservationID:     reservation.ID,
		AccountIdentifier: account.Identifier,
	})
	if err != nil {
		// Конкурентный проход успел записать ту же пару - профиль уже выгружен
		if errors.Is(err, assignmentRepo.ErrDuplicateRecord) {
			s.logger.Info("Apply: reservation=%d account=%s recorded concurrently", reservation.ID, account.Identifier)
			return &Result{Status: StatusAlreadyApplied}, nil
		}
		return nil, fmt.Errorf("%w: Apply - write ledger: %v", ErrInternal, err)
	}

	s.logger.Info("Apply: reservation=%d account=%s applied", reservation.ID, account.Identifier)
	return &Result{Status: StatusApplied}, nil
}

func (s *Service) failed(stage string, err error) *Result {
	return &Result{
		Status: StatusFailed,
		Error:  fmt.Sprintf("%s: %v", stage, err),
	}
}

// observe фиксирует метрики внешнего вызова, если метрики включены
func (s *Service) observe(operation string, start time.Time, err error) {
	if s.metrics == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	s.metrics.ObserveExternalCall(metricsTarget, operation, outcome, time.Since(start))
}
