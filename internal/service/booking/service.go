package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/VeloStudio-SeatingService/internal/domain"
	scheduleRepo "github.com/m04kA/VeloStudio-SeatingService/internal/infra/storage/schedule"
	inventoryRepo "github.com/m04kA/VeloStudio-SeatingService/internal/infra/storage/inventory"
)

// SwapSource тег происхождения для резерваций, изменённых обменом станков
const SwapSource = "wizard-swap"

// SwapResult результат обмена станками: имена клиентов обеих сторон
// для подтверждающего сообщения оператору. Пустая строка - сторона была свободна.
type SwapResult struct {
	FromClient string
	ToClient   string
}

// Engine движок бронирования
// Единственная точка мутации строк резерваций: claim, cancel, walk-in и обмен
// станками выполняются здесь, каждый в одной атомарной транзакции.
type Engine struct {
	scheduleRepo  ScheduleRepository
	inventoryRepo InventoryRepository
	txManager     TransactionManager
	logger        Logger
}

// NewEngine создает новый экземпляр движка бронирования
func NewEngine(
	scheduleRepo ScheduleRepository,
	inventoryRepo InventoryRepository,
	txManager TransactionManager,
	logger Logger,
) *Engine {
	return &Engine{
		scheduleRepo:  scheduleRepo,
		inventoryRepo: inventoryRepo,
		txManager:     txManager,
		logger:        logger,
	}
}

// Claim занимает открытую резервацию за клиентом
// Условное обновление: если резервацию успели занять между чтением слота
// и этим вызовом, возвращается ErrSeatConflict - вызывающий перечитывает
// слот и пробует другого кандидата, молчаливого переназначения нет.
func (e *Engine) Claim(ctx context.Context, reservationID, clientID int64, clientName, source string) error {
	e.logger.Info("Claim: reservation=%d client=%d source=%s", reservationID, clientID, source)

	if err := validateClaimInput(reservationID, clientID, clientName); err != nil {
		e.logger.Warn("Claim: validation failed: %v", err)
		return err
	}

	err := e.txManager.Do(ctx, func(txCtx context.Context) error {
		return e.scheduleRepo.ClaimAvailable(txCtx, reservationID, clientID, clientName, source)
	})

	if err != nil {
		switch {
		case errors.Is(err, scheduleRepo.ErrReservationNotFound):
			e.logger.Warn("Claim: reservation id=%d not found", reservationID)
			return ErrReservationNotFound
		case errors.Is(err, scheduleRepo.ErrSeatTaken):
			e.logger.Warn("Claim: reservation id=%d lost the race", reservationID)
			return ErrSeatConflict
		default:
			e.logger.Error("Claim: repository error for reservation id=%d: %v", reservationID, err)
			return fmt.Errorf("%w: Claim - repository error: %v", ErrInternal, err)
		}
	}

	e.logger.Info("Claim: reservation id=%d booked for client=%d", reservationID, clientID)
	return nil
}

// Cancel освобождает резервацию
// Идемпотентна: отмена уже свободной резервации - успешный no-op.
// Станок и source сохраняются для аудита.
func (e *Engine) Cancel(ctx context.Context, reservationID int64) error {
	e.logger.Info("Cancel: reservation=%d", reservationID)

	if reservationID <= 0 {
		return fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}

	err := e.txManager.Do(ctx, func(txCtx context.Context) error {
		return e.scheduleRepo.Release(txCtx, reservationID)
	})

	if err != nil {
		if errors.Is(err, scheduleRepo.ErrReservationNotFound) {
			e.logger.Warn("Cancel: reservation id=%d not found", reservationID)
			return ErrReservationNotFound
		}
		e.logger.Error("Cancel: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	e.logger.Info("Cancel: reservation id=%d released", reservationID)
	return nil
}

// AddWalkIn сажает walk-in клиента на станок в слоте
// Если резервация для (slot, stand) уже существует - занимает её как Claim;
// иначе создает новую строку сразу в статусе booked. Это единственный путь,
// создающий строки резерваций вне генерации слота.
func (e *Engine) AddWalkIn(ctx context.Context, slotID, standID, clientID int64, clientName, source string) (*domain.Reservation, error) {
	e.logger.Info("AddWalkIn: slot=%d stand=%d client=%d source=%s", slotID, standID, clientID, source)

	if err := validateWalkInInput(slotID, standID, clientID, clientName); err != nil {
		e.logger.Warn("AddWalkIn: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Reservation

	err := e.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if _, err := e.scheduleRepo.GetSlot(txCtx, slotID); err != nil {
			if errors.Is(err, scheduleRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			return fmt.Errorf("%w: AddWalkIn - get slot: %v", ErrInternal, err)
		}

		existing, err := e.scheduleRepo.GetBySlotAndStand(txCtx, slotID, standID)
		if err != nil && !errors.Is(err, scheduleRepo.ErrReservationNotFound) {
			return fmt.Errorf("%w: AddWalkIn - get reservation: %v", ErrInternal, err)
		}

		if existing != nil {
			if existing.IsOccupied() {
				e.logger.Warn("AddWalkIn: stand=%d in slot=%d already occupied", standID, slotID)
				return ErrSeatConflict
			}
			if err := e.scheduleRepo.AttachClient(txCtx, existing.ID, &clientID, &clientName, source); err != nil {
				return fmt.Errorf("%w: AddWalkIn - attach client: %v", ErrInternal, err)
			}
			updated, err := e.scheduleRepo.GetReservation(txCtx, existing.ID)
			if err != nil {
				return fmt.Errorf("%w: AddWalkIn - reread reservation: %v", ErrInternal, err)
			}
			result = updated
			return nil
		}

		stand, err := e.inventoryRepo.GetStand(txCtx, standID)
		if err != nil {
			if errors.Is(err, inventoryRepo.ErrStandNotFound) {
				return ErrStandNotFound
			}
			return fmt.Errorf("%w: AddWalkIn - get stand: %v", ErrInternal, err)
		}

		created, err := e.scheduleRepo.CreateReservation(txCtx, &domain.Reservation{
			SlotID:     slotID,
			StandID:    &standID,
			StandCode:  stand.Code,
			ClientID:   &clientID,
			ClientName: &clientName,
			Status:     domain.StatusBooked,
			Source:     source,
		})
		if err != nil {
			return fmt.Errorf("%w: AddWalkIn - create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	e.logger.Info("AddWalkIn: reservation id=%d booked for client=%d on stand=%d", result.ID, clientID, standID)
	return result, nil
}

// Reassign перемещает клиента со станка standFrom на станок standTo в пределах слота
//
// Три непересекающихся случая по тому, что сейчас занимает standTo:
//   a) резервации на standTo нет - создается новая booked строка с личностью
//      исходного клиента, исходная строка освобождается;
//   b) резервация есть, но свободна - личность переносится на целевую строку,
//      исходная освобождается; двух строк на один станок не возникает;
//   c) резервация занята другим клиентом - полноценный обмен тремя записями
//      в одной транзакции: stand_id исходной строки временно обнуляется,
//      затем целевая строка получает исходный станок, затем исходная -
//      целевой. Ни в одной промежуточной точке две строки не указывают
//      на один (slot_id, stand_id).
//
// Возвращает имена клиентов обеих сторон для подтверждающего сообщения.
func (e *Engine) Reassign(ctx context.Context, slotID, standFrom, standTo int64) (*SwapResult, error) {
	e.logger.Info("Reassign: slot=%d standFrom=%d standTo=%d", slotID, standFrom, standTo)

	if err := validateReassignInput(slotID, standFrom, standTo); err != nil {
		e.logger.Warn("Reassign: validation failed: %v", err)
		return nil, err
	}

	var result SwapResult

	err := e.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		source, err := e.scheduleRepo.GetBySlotAndStand(txCtx, slotID, standFrom)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrReservationNotFound) {
				e.logger.Warn("Reassign: stand=%d has no reservation in slot=%d", standFrom, slotID)
				return ErrStandNotInSlot
			}
			return fmt.Errorf("%w: Reassign - get source reservation: %v", ErrInternal, err)
		}

		result.FromClient = source.ClientDisplayName()

		target, err := e.scheduleRepo.GetBySlotAndStand(txCtx, slotID, standTo)
		if err != nil && !errors.Is(err, scheduleRepo.ErrReservationNotFound) {
			return fmt.Errorf("%w: Reassign - get target reservation: %v", ErrInternal, err)
		}

		switch {
		case target == nil:
			return e.swapToEmptyStand(txCtx, source, standTo)
		case target.ClientID == nil:
			return e.swapToOpenReservation(txCtx, source, target)
		default:
			result.ToClient = target.ClientDisplayName()
			return e.swapOccupied(txCtx, source, target)
		}
	})

	if err != nil {
		return nil, err
	}

	e.logger.Info("Reassign: slot=%d standFrom=%d standTo=%d done (from=%q to=%q)",
		slotID, standFrom, standTo, result.FromClient, result.ToClient)
	return &result, nil
}

// swapToEmptyStand случай (a): у целевого станка нет строки в слоте
func (e *Engine) swapToEmptyStand(ctx context.Context, source *domain.Reservation, standTo int64) error {
	stand, err := e.inventoryRepo.GetStand(ctx, standTo)
	if err != nil {
		if errors.Is(err, inventoryRepo.ErrStandNotFound) {
			return ErrStandNotFound
		}
		return fmt.Errorf("%w: Reassign - get target stand: %v", ErrInternal, err)
	}

	if _, err := e.scheduleRepo.CreateReservation(ctx, &domain.Reservation{
		SlotID:     source.SlotID,
		StandID:    &standTo,
		StandCode:  stand.Code,
		ClientID:   source.ClientID,
		ClientName: source.ClientName,
		Status:     domain.StatusBooked,
		Source:     SwapSource,
	}); err != nil {
		return fmt.Errorf("%w: Reassign - create target reservation: %v", ErrInternal, err)
	}

	if err := e.scheduleRepo.Release(ctx, source.ID); err != nil {
		return fmt.Errorf("%w: Reassign - release source reservation: %v", ErrInternal, err)
	}

	return nil
}

// swapToOpenReservation случай (b): целевая строка существует и свободна
func (e *Engine) swapToOpenReservation(ctx context.Context, source, target *domain.Reservation) error {
	if err := e.scheduleRepo.AttachClient(ctx, target.ID, source.ClientID, source.ClientName, SwapSource); err != nil {
		return fmt.Errorf("%w: Reassign - attach client to target: %v", ErrInternal, err)
	}

	if err := e.scheduleRepo.Release(ctx, source.ID); err != nil {
		return fmt.Errorf("%w: Reassign - release source reservation: %v", ErrInternal, err)
	}

	return nil
}

// swapOccupied случай (c): обе строки заняты, обмен станками тремя записями
func (e *Engine) swapOccupied(ctx context.Context, source, target *domain.Reservation) error {
	if source.StandID == nil || target.StandID == nil {
		return fmt.Errorf("%w: Reassign - reservation without stand in occupied swap", ErrInternal)
	}

	sourceStandID := *source.StandID
	sourceStandCode := source.StandCode
	targetStandID := *target.StandID
	targetStandCode := target.StandCode

	// (i) отвязываем исходную строку, освобождая её станок
	if err := e.scheduleRepo.DetachStand(ctx, source.ID); err != nil {
		return fmt.Errorf("%w: Reassign - detach source stand: %v", ErrInternal, err)
	}

	// (ii) целевая строка переезжает на исходный станок
	if err := e.scheduleRepo.AttachStand(ctx, target.ID, sourceStandID, sourceStandCode); err != nil {
		return fmt.Errorf("%w: Reassign - move target to source stand: %v", ErrInternal, err)
	}

	// (iii) отвязанная исходная строка получает целевой станок
	if err := e.scheduleRepo.AttachStand(ctx, source.ID, targetStandID, targetStandCode); err != nil {
		return fmt.Errorf("%w: Reassign - move source to target stand: %v", ErrInternal, err)
	}

	return nil
}

// Валидация входных данных

func validateClaimInput(reservationID, clientID int64, clientName string) error {
	if reservationID <= 0 {
		return fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}
	if clientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(clientName) == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}
	return nil
}

func validateWalkInInput(slotID, standID, clientID int64, clientName string) error {
	if slotID <= 0 {
		return fmt.Errorf("%w: slotID must be positive", ErrInvalidInput)
	}
	if standID <= 0 {
		return fmt.Errorf("%w: standID must be positive", ErrInvalidInput)
	}
	if clientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(clientName) == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}
	return nil
}

func validateReassignInput(slotID, standFrom, standTo int64) error {
	if slotID <= 0 {
		return fmt.Errorf("%w: slotID must be positive", ErrInvalidInput)
	}
	if standFrom <= 0 || standTo <= 0 {
		return fmt.Errorf("%w: stand ids must be positive", ErrInvalidInput)
	}
	if standFrom == standTo {
		return fmt.Errorf("%w: source and target stands must differ", ErrInvalidInput)
	}
	return nil
}
