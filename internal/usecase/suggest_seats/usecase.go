package suggest_seats

import (
	"context"
	"errors"
	"fmt"

	clientsRepo "github.com/m04kA/VeloStudio-SeatingService/internal/infra/storage/clients"
	scheduleRepo "github.com/m04kA/VeloStudio-SeatingService/internal/infra/storage/schedule"
	"github.com/m04kA/VeloStudio-SeatingService/internal/service/matching"
)

// UseCase use case подбора места для клиента в слоте
type UseCase struct {
	scheduleRepo  ScheduleRepository
	inventoryRepo InventoryRepository
	clientRepo    ClientRepository
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	inventoryRepo InventoryRepository,
	clientRepo ClientRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo:  scheduleRepo,
		inventoryRepo: inventoryRepo,
		clientRepo:    clientRepo,
		logger:        logger,
	}
}

// Execute возвращает открытые места слота, упорядоченные по пригодности
// для клиента. Чтения идут без транзакции: рассадка проверит доступность
// места еще раз условным обновлением при фактическом занятии.
func (uc *UseCase) Execute(ctx context.Context, slotID, clientID int64) (*Response, error) {
	uc.logger.Info("SuggestSeats: slot=%d client=%d", slotID, clientID)

	if slotID <= 0 || clientID <= 0 {
		return nil, fmt.Errorf("%w: slot and client ids must be positive", ErrInvalidInput)
	}

	// 1. Слот должен существовать
	if _, err := uc.scheduleRepo.GetSlot(ctx, slotID); err != nil {
		if errors.Is(err, scheduleRepo.ErrSlotNotFound) {
			uc.logger.Warn("SuggestSeats: slot id=%d not found", slotID)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("SuggestSeats: failed to get slot id=%d: %v", slotID, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	// 2. Профиль клиента
	client, err := uc.clientRepo.GetClient(ctx, clientID)
	if err != nil {
		if errors.Is(err, clientsRepo.ErrClientNotFound) {
			uc.logger.Warn("SuggestSeats: client id=%d not found", clientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("SuggestSeats: failed to get client id=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	// 3. Открытые места и инвентарь
	open, err := uc.scheduleRepo.ListOpenReservations(ctx, slotID)
	if err != nil {
		uc.logger.Error("SuggestSeats: failed to list open reservations for slot=%d: %v", slotID, err)
		return nil, fmt.Errorf("%w: failed to list open reservations: %v", ErrInternal, err)
	}

	stands, err := uc.inventoryRepo.ListStands(ctx)
	if err != nil {
		uc.logger.Error("SuggestSeats: failed to list stands: %v", err)
		return nil, fmt.Errorf("%w: failed to list stands: %v", ErrInternal, err)
	}

	bikes, err := uc.inventoryRepo.ListBikes(ctx)
	if err != nil {
		uc.logger.Error("SuggestSeats: failed to list bikes: %v", err)
		return nil, fmt.Errorf("%w: failed to list bikes: %v", ErrInternal, err)
	}

	// 4. Ранжирование
	candidates := matching.Rank(client, open, stands, bikes)

	suggestions := make([]Suggestion, 0, len(candidates))
	for _, c := range candidates {
		s := Suggestion{
			ReservationID: c.Reservation.ID,
			StandID:       c.Reservation.StandID,
			StandCode:     c.Reservation.StandCode,
			Score:         c.Score,
		}
		if c.Stand != nil {
			s.StandLabel = c.Stand.DisplayLabel()
		}
		if c.Bike != nil {
			title := c.Bike.Title
			s.BikeTitle = &title
		}
		suggestions = append(suggestions, s)
	}

	uc.logger.Info("SuggestSeats: slot=%d client=%d ranked %d open seats", slotID, clientID, len(suggestions))

	return &Response{
		SlotID:      slotID,
		ClientID:    clientID,
		Suggestions: suggestions,
	}, nil
}
