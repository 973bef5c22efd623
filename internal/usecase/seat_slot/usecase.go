package seat_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/VeloStudio-SeatingService/internal/domain"
	clientsRepo "github.com/m04kA/VeloStudio-SeatingService/internal/infra/storage/clients"
	scheduleRepo "github.com/m04kA/VeloStudio-SeatingService/internal/infra/storage/schedule"
	"github.com/m04kA/VeloStudio-SeatingService/internal/service/provisioning"
)

// UseCase use case прохода рассадки: выгрузка профилей всех валидных
// резерваций слота на привязанные к станкам аккаунты платформы
type UseCase struct {
	scheduleRepo ScheduleRepository
	clientRepo   ClientRepository
	accounts     AccountMapping
	provisioner  Provisioner
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	clientRepo ClientRepository,
	accounts AccountMapping,
	provisioner Provisioner,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		clientRepo:   clientRepo,
		accounts:     accounts,
		provisioner:  provisioner,
		logger:       logger,
	}
}

// Execute обрабатывает все валидные резервации слота по одной
// Ошибка одного места никогда не прерывает проход: место уходит в Failed,
// обработка продолжается. Проход идемпотентен за счет журнала provisioning'а:
// повторный запуск кладет уже обработанные места в AlreadySeated без
// сетевых вызовов.
func (uc *UseCase) Execute(ctx context.Context, slotID int64) (*Report, error) {
	if slotID <= 0 {
		return nil, fmt.Errorf("%w: slot id must be positive", ErrInvalidInput)
	}

	runID := uuid.New().String()
	uc.logger.Info("SeatSlot: run=%s slot=%d started", runID, slotID)

	if _, err := uc.scheduleRepo.GetSlot(ctx, slotID); err != nil {
		if errors.Is(err, scheduleRepo.ErrSlotNotFound) {
			uc.logger.Warn("SeatSlot: run=%s slot id=%d not found", runID, slotID)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("SeatSlot: run=%s failed to get slot id=%d: %v", runID, slotID, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	reservations, err := uc.scheduleRepo.ListValidReservations(ctx, slotID)
	if err != nil {
		uc.logger.Error("SeatSlot: run=%s failed to list reservations for slot=%d: %v", runID, slotID, err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	report := &Report{RunID: runID, SlotID: slotID}

	for _, reservation := range reservations {
		uc.processSeat(ctx, runID, reservation, report)
	}

	uc.logger.Info("SeatSlot: run=%s slot=%d done: seated=%d already=%d skipped=%d failed=%d",
		runID, slotID, len(report.Seated), len(report.AlreadySeated), len(report.Skipped), len(report.Failed))

	return report, nil
}

// processSeat обрабатывает одно место и кладет исход в соответствующую корзину
func (uc *UseCase) processSeat(ctx context.Context, runID string, reservation *domain.Reservation, report *Report) {
	outcome := SeatOutcome{
		ReservationID: reservation.ID,
		StandCode:     reservation.StandCode,
		ClientName:    reservation.ClientDisplayName(),
	}

	if reservation.StandID == nil {
		uc.logger.Warn("SeatSlot: run=%s reservation=%d has no stand", runID, reservation.ID)
		outcome.Reason = SkipNoStand
		report.Skipped = append(report.Skipped, outcome)
		return
	}

	account, ok := uc.accounts.ForStand(*reservation.StandID)
	if !ok {
		uc.logger.Warn("SeatSlot: run=%s reservation=%d stand=%d has no account mapping",
			runID, reservation.ID, *reservation.StandID)
		outcome.Reason = SkipNoAccount
		report.Skipped = append(report.Skipped, outcome)
		return
	}
	outcome.AccountIdentifier = account.Identifier

	client, err := uc.fetchClient(ctx, reservation)
	if err != nil {
		if errors.Is(err, clientsRepo.ErrClientNotFound) {
			uc.logger.Warn("SeatSlot: run=%s reservation=%d client not found", runID, reservation.ID)
			outcome.Reason = SkipNoClient
			report.Skipped = append(report.Skipped, outcome)
			return
		}
		uc.logger.Error("SeatSlot: run=%s reservation=%d failed to get client: %v", runID, reservation.ID, err)
		outcome.Reason = fmt.Sprintf("get client: %v", err)
		report.Failed = append(report.Failed, outcome)
		return
	}

	result, err := uc.provisioner.Apply(ctx, reservation, client, &account)
	if err != nil {
		uc.logger.Error("SeatSlot: run=%s reservation=%d account=%s provisioning error: %v",
			runID, reservation.ID, account.Identifier, err)
		outcome.Reason = fmt.Sprintf("provisioning: %v", err)
		report.Failed = append(report.Failed, outcome)
		return
	}

	switch result.Status {
	case provisioning.StatusApplied:
		report.Seated = append(report.Seated, outcome)
	case provisioning.StatusAlreadyApplied:
		report.AlreadySeated = append(report.AlreadySeated, outcome)
	case provisioning.StatusFailed:
		outcome.Reason = result.Error
		report.Failed = append(report.Failed, outcome)
	default:
		outcome.Reason = fmt.Sprintf("unexpected provisioning status %q", result.Status)
		report.Failed = append(report.Failed, outcome)
	}
}

func (uc *UseCase) fetchClient(ctx context.Context, reservation *domain.Reservation) (*domain.Client, error) {
	if reservation.ClientID == nil {
		return nil, clientsRepo.ErrClientNotFound
	}
	return uc.clientRepo.GetClient(ctx, *reservation.ClientID)
}
