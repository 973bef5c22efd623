package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/VeloStudio-SeatingService/internal/domain"
	inventoryRepo "github.com/m04kA/VeloStudio-SeatingService/internal/infra/storage/inventory"
	scheduleRepo "github.com/m04kA/VeloStudio-SeatingService/internal/infra/storage/schedule"
)

// fakeScheduleRepo in-memory реализация ScheduleRepository
// После каждой мутации проверяет инвариант уникальности: на (slot_id, stand_id)
// не более одной booked строки, включая промежуточные состояния обмена.
type fakeScheduleRepo struct {
	t            *testing.T
	slots        map[int64]*domain.Slot
	reservations map[int64]*domain.Reservation
	nextID       int64
}

func newFakeScheduleRepo(t *testing.T) *fakeScheduleRepo {
	return &fakeScheduleRepo{
		t:            t,
		slots:        map[int64]*domain.Slot{7: {ID: 7}},
		reservations: make(map[int64]*domain.Reservation),
		nextID:       100,
	}
}

func (f *fakeScheduleRepo) add(r *domain.Reservation) *domain.Reservation {
	f.nextID++
	r.ID = f.nextID
	f.reservations[r.ID] = r
	f.assertUniqueness()
	return r
}

func (f *fakeScheduleRepo) assertUniqueness() {
	seen := make(map[[2]int64]int64)
	for _, r := range f.reservations {
		if r.Status != domain.StatusBooked || r.StandID == nil {
			continue
		}
		key := [2]int64{r.SlotID, *r.StandID}
		if otherID, ok := seen[key]; ok {
			f.t.Fatalf("uniqueness violated: reservations %d and %d both hold slot=%d stand=%d",
				otherID, r.ID, r.SlotID, *r.StandID)
		}
		seen[key] = r.ID
	}
}

func (f *fakeScheduleRepo) GetSlot(_ context.Context, id int64) (*domain.Slot, error) {
	slot, ok := f.slots[id]
	if !ok {
		return nil, scheduleRepo.ErrSlotNotFound
	}
	return slot, nil
}

func (f *fakeScheduleRepo) GetReservation(_ context.Context, id int64) (*domain.Reservation, error) {
	r, ok := f.reservations[id]
	if !ok {
		return nil, scheduleRepo.ErrReservationNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeScheduleRepo) GetBySlotAndStand(_ context.Context, slotID, standID int64) (*domain.Reservation, error) {
	for _, r := range f.reservations {
		if r.SlotID == slotID && r.StandID != nil && *r.StandID == standID && !r.IsExcluded() {
			cp := *r
			return &cp, nil
		}
	}
	return nil, scheduleRepo.ErrReservationNotFound
}

func (f *fakeScheduleRepo) CreateReservation(_ context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	cp := *r
	created := f.add(&cp)
	out := *created
	return &out, nil
}

func (f *fakeScheduleRepo) ClaimAvailable(_ context.Context, id int64, clientID int64, clientName, source string) error {
	r, ok := f.reservations[id]
	if !ok {
		return scheduleRepo.ErrReservationNotFound
	}
	if r.Status != domain.StatusAvailable {
		return scheduleRepo.ErrSeatTaken
	}
	r.Status = domain.StatusBooked
	r.ClientID = &clientID
	r.ClientName = &clientName
	r.Source = source
	f.assertUniqueness()
	return nil
}

func (f *fakeScheduleRepo) AttachClient(_ context.Context, id int64, clientID *int64, clientName *string, source string) error {
	r, ok := f.reservations[id]
	if !ok {
		return scheduleRepo.ErrReservationNotFound
	}
	r.Status = domain.StatusBooked
	r.ClientID = clientID
	r.ClientName = clientName
	r.Source = source
	f.assertUniqueness()
	return nil
}

func (f *fakeScheduleRepo) Release(_ context.Context, id int64) error {
	r, ok := f.reservations[id]
	if !ok {
		return scheduleRepo.ErrReservationNotFound
	}
	r.Status = domain.StatusAvailable
	r.ClientID = nil
	r.ClientName = nil
	f.assertUniqueness()
	return nil
}

func (f *fakeScheduleRepo) DetachStand(_ context.Context, id int64) error {
	r, ok := f.reservations[id]
	if !ok {
		return scheduleRepo.ErrReservationNotFound
	}
	r.StandID = nil
	f.assertUniqueness()
	return nil
}

func (f *fakeScheduleRepo) AttachStand(_ context.Context, id int64, standID int64, standCode string) error {
	r, ok := f.reservations[id]
	if !ok {
		return scheduleRepo.ErrReservationNotFound
	}
	r.StandID = &standID
	r.StandCode = standCode
	f.assertUniqueness()
	return nil
}

type fakeInventoryRepo struct {
	stands map[int64]*domain.Stand
}

func (f *fakeInventoryRepo) GetStand(_ context.Context, id int64) (*domain.Stand, error) {
	s, ok := f.stands[id]
	if !ok {
		return nil, inventoryRepo.ErrStandNotFound
	}
	return s, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newEngine(t *testing.T) (*Engine, *fakeScheduleRepo, *fakeInventoryRepo) {
	schedule := newFakeScheduleRepo(t)
	inventory := &fakeInventoryRepo{stands: map[int64]*domain.Stand{
		1: {ID: 1, Code: "A1"},
		2: {ID: 2, Code: "A2"},
		3: {ID: 3, Code: "A3"},
	}}
	engine := NewEngine(schedule, inventory, fakeTxManager{}, noopLogger{})
	return engine, schedule, inventory
}

func openSeat(f *fakeScheduleRepo, slotID, standID int64, code string) *domain.Reservation {
	return f.add(&domain.Reservation{
		SlotID:    slotID,
		StandID:   &standID,
		StandCode: code,
		Status:    domain.StatusAvailable,
		Source:    "generator",
	})
}

func bookedSeat(f *fakeScheduleRepo, slotID, standID int64, code string, clientID int64, clientName string) *domain.Reservation {
	return f.add(&domain.Reservation{
		SlotID:     slotID,
		StandID:    &standID,
		StandCode:  code,
		ClientID:   &clientID,
		ClientName: &clientName,
		Status:     domain.StatusBooked,
		Source:     "adminbot",
	})
}

func TestClaim(t *testing.T) {
	t.Run("books an available reservation", func(t *testing.T) {
		engine, schedule, _ := newEngine(t)
		seat := openSeat(schedule, 7, 1, "A1")

		err := engine.Claim(context.Background(), seat.ID, 42, "Анна К.", "adminbot")
		require.NoError(t, err)

		got := schedule.reservations[seat.ID]
		assert.Equal(t, domain.StatusBooked, got.Status)
		assert.Equal(t, int64(42), *got.ClientID)
		assert.Equal(t, "Анна К.", *got.ClientName)
		assert.Equal(t, "adminbot", got.Source)
	})

	t.Run("second claim loses with conflict, winner keeps the seat", func(t *testing.T) {
		engine, schedule, _ := newEngine(t)
		seat := openSeat(schedule, 7, 1, "A1")

		require.NoError(t, engine.Claim(context.Background(), seat.ID, 42, "Анна К.", "adminbot"))

		err := engine.Claim(context.Background(), seat.ID, 43, "Борис М.", "adminbot")
		require.ErrorIs(t, err, ErrSeatConflict)

		got := schedule.reservations[seat.ID]
		assert.Equal(t, domain.StatusBooked, got.Status)
		assert.Equal(t, int64(42), *got.ClientID)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		engine, _, _ := newEngine(t)
		err := engine.Claim(context.Background(), 999, 42, "Анна К.", "adminbot")
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})

	t.Run("validation", func(t *testing.T) {
		engine, _, _ := newEngine(t)
		assert.ErrorIs(t, engine.Claim(context.Background(), 0, 42, "x", "s"), ErrInvalidInput)
		assert.ErrorIs(t, engine.Claim(context.Background(), 1, 0, "x", "s"), ErrInvalidInput)
		assert.ErrorIs(t, engine.Claim(context.Background(), 1, 42, "  ", "s"), ErrInvalidInput)
	})
}

func TestCancel(t *testing.T) {
	t.Run("releases a booked reservation keeping stand and source", func(t *testing.T) {
		engine, schedule, _ := newEngine(t)
		seat := bookedSeat(schedule, 7, 1, "A1", 42, "Анна К.")

		require.NoError(t, engine.Cancel(context.Background(), seat.ID))

		got := schedule.reservations[seat.ID]
		assert.Equal(t, domain.StatusAvailable, got.Status)
		assert.Nil(t, got.ClientID)
		assert.Nil(t, got.ClientName)
		assert.Equal(t, int64(1), *got.StandID)
		assert.Equal(t, "adminbot", got.Source)
	})

	t.Run("idempotent on already available reservation", func(t *testing.T) {
		engine, schedule, _ := newEngine(t)
		seat := openSeat(schedule, 7, 1, "A1")

		require.NoError(t, engine.Cancel(context.Background(), seat.ID))
		require.NoError(t, engine.Cancel(context.Background(), seat.ID))

		got := schedule.reservations[seat.ID]
		assert.Equal(t, domain.StatusAvailable, got.Status)
		assert.Nil(t, got.ClientID)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		engine, _, _ := newEngine(t)
		assert.ErrorIs(t, engine.Cancel(context.Background(), 999), ErrReservationNotFound)
	})
}

func TestAddWalkIn(t *testing.T) {
	t.Run("creates a booked row when stand has none in slot", func(t *testing.T) {
		engine, schedule, _ := newEngine(t)

		created, err := engine.AddWalkIn(context.Background(), 7, 2, 42, "Анна К.", "adminbot")
		require.NoError(t, err)

		got := schedule.reservations[created.ID]
		assert.Equal(t, domain.StatusBooked, got.Status)
		assert.Equal(t, int64(2), *got.StandID)
		assert.Equal(t, "A2", got.StandCode)
		assert.Equal(t, int64(42), *got.ClientID)
	})

	t.Run("reuses an existing open row", func(t *testing.T) {
		engine, schedule, _ := newEngine(t)
		seat := openSeat(schedule, 7, 1, "A1")

		created, err := engine.AddWalkIn(context.Background(), 7, 1, 42, "Анна К.", "adminbot")
		require.NoError(t, err)

		assert.Equal(t, seat.ID, created.ID)
		assert.Equal(t, domain.StatusBooked, schedule.reservations[seat.ID].Status)
		assert.Len(t, schedule.reservations, 1)
	})

	t.Run("conflict when stand occupied", func(t *testing.T) {
		engine, schedule, _ := newEngine(t)
		bookedSeat(schedule, 7, 1, "A1", 42, "Анна К.")

		_, err := engine.AddWalkIn(context.Background(), 7, 1, 43, "Борис М.", "adminbot")
		assert.ErrorIs(t, err, ErrSeatConflict)
	})

	t.Run("unknown slot", func(t *testing.T) {
		engine, _, _ := newEngine(t)
		_, err := engine.AddWalkIn(context.Background(), 8, 1, 42, "Анна К.", "adminbot")
		assert.ErrorIs(t, err, ErrSlotNotFound)
	})

	t.Run("unknown stand", func(t *testing.T) {
		engine, _, _ := newEngine(t)
		_, err := engine.AddWalkIn(context.Background(), 7, 99, 42, "Анна К.", "adminbot")
		assert.ErrorIs(t, err, ErrStandNotFound)
	})
}

func TestReassign(t *testing.T) {
	t.Run("case a: target stand has no row in slot", func(t *testing.T) {
		engine, schedule, _ := newEngine(t)
		source := bookedSeat(schedule, 7, 1, "A1", 42, "Анна К.")

		result, err := engine.Reassign(context.Background(), 7, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, "Анна К.", result.FromClient)
		assert.Equal(t, "", result.ToClient)

		// Исходная строка освобождена, новая booked строка на целевом станке
		assert.Equal(t, domain.StatusAvailable, schedule.reservations[source.ID].Status)
		assert.Nil(t, schedule.reservations[source.ID].ClientID)

		moved, err := schedule.GetBySlotAndStand(context.Background(), 7, 2)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusBooked, moved.Status)
		assert.Equal(t, int64(42), *moved.ClientID)
		assert.Equal(t, "A2", moved.StandCode)
		assert.Equal(t, SwapSource, moved.Source)
	})

	t.Run("case b: target row exists and is open", func(t *testing.T) {
		engine, schedule, _ := newEngine(t)
		source := bookedSeat(schedule, 7, 1, "A1", 42, "Анна К.")
		target := openSeat(schedule, 7, 2, "A2")

		result, err := engine.Reassign(context.Background(), 7, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, "Анна К.", result.FromClient)
		assert.Equal(t, "", result.ToClient)

		assert.Equal(t, domain.StatusBooked, schedule.reservations[target.ID].Status)
		assert.Equal(t, int64(42), *schedule.reservations[target.ID].ClientID)
		assert.Equal(t, domain.StatusAvailable, schedule.reservations[source.ID].Status)
		assert.Nil(t, schedule.reservations[source.ID].ClientID)
		// Новых строк не появилось
		assert.Len(t, schedule.reservations, 2)
	})

	t.Run("case c: both occupied, stands exchanged", func(t *testing.T) {
		engine, schedule, _ := newEngine(t)
		source := bookedSeat(schedule, 7, 1, "A1", 42, "Анна К.")
		target := bookedSeat(schedule, 7, 2, "A2", 43, "Борис М.")

		result, err := engine.Reassign(context.Background(), 7, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, "Анна К.", result.FromClient)
		assert.Equal(t, "Борис М.", result.ToClient)

		// Станок 1 теперь у Бориса, станок 2 у Анны; клиенты остались на своих строках
		gotSource := schedule.reservations[source.ID]
		gotTarget := schedule.reservations[target.ID]

		assert.Equal(t, int64(2), *gotSource.StandID)
		assert.Equal(t, "A2", gotSource.StandCode)
		assert.Equal(t, int64(42), *gotSource.ClientID)

		assert.Equal(t, int64(1), *gotTarget.StandID)
		assert.Equal(t, "A1", gotTarget.StandCode)
		assert.Equal(t, int64(43), *gotTarget.ClientID)

		// Оба остались booked, fake проверил уникальность на каждом шаге
		assert.Equal(t, domain.StatusBooked, gotSource.Status)
		assert.Equal(t, domain.StatusBooked, gotTarget.Status)
	})

	t.Run("source stand not in slot", func(t *testing.T) {
		engine, _, _ := newEngine(t)
		_, err := engine.Reassign(context.Background(), 7, 1, 2)
		assert.ErrorIs(t, err, ErrStandNotInSlot)
	})

	t.Run("case a with unknown target stand", func(t *testing.T) {
		engine, schedule, _ := newEngine(t)
		bookedSeat(schedule, 7, 1, "A1", 42, "Анна К.")

		_, err := engine.Reassign(context.Background(), 7, 1, 99)
		assert.ErrorIs(t, err, ErrStandNotFound)
	})

	t.Run("validation: same stand", func(t *testing.T) {
		engine, _, _ := newEngine(t)
		_, err := engine.Reassign(context.Background(), 7, 1, 1)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestReassign_CaseA_SourceWithoutClient(t *testing.T) {
	// Обмен пустыми местами допустим: стороны без клиента дают пустые имена
	engine, schedule, _ := newEngine(t)
	source := openSeat(schedule, 7, 1, "A1")
	_ = source

	result, err := engine.Reassign(context.Background(), 7, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "", result.FromClient)
	assert.Equal(t, "", result.ToClient)
}

func TestReassign_ChainedSwapsKeepUniqueness(t *testing.T) {
	// Серия обменов по кругу: fake падает, если в какой-то момент
	// две booked строки указывают на один (slot, stand)
	engine, schedule, _ := newEngine(t)
	a := bookedSeat(schedule, 7, 1, "A1", 42, "Анна К.")
	b := bookedSeat(schedule, 7, 2, "A2", 43, "Борис М.")
	c := bookedSeat(schedule, 7, 3, "A3", 44, "Вера С.")

	_, err := engine.Reassign(context.Background(), 7, 1, 2)
	require.NoError(t, err)
	_, err = engine.Reassign(context.Background(), 7, 1, 3)
	require.NoError(t, err)
	_, err = engine.Reassign(context.Background(), 7, 2, 3)
	require.NoError(t, err)

	// Все три строки остались booked со своими клиентами
	for _, seat := range []*domain.Reservation{a, b, c} {
		got := schedule.reservations[seat.ID]
		assert.Equal(t, domain.StatusBooked, got.Status)
		assert.NotNil(t, got.ClientID)
		assert.NotNil(t, got.StandID)
	}
}
