package suggest_seats

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/VeloStudio-SeatingService/internal/domain"
	clientsRepo "github.com/m04kA/VeloStudio-SeatingService/internal/infra/storage/clients"
	scheduleRepo "github.com/m04kA/VeloStudio-SeatingService/internal/infra/storage/schedule"
	"github.com/m04kA/VeloStudio-SeatingService/pkg/ptr"
)

type fakeSchedule struct {
	slots map[int64]*domain.Slot
	open  []*domain.Reservation
}

func (f *fakeSchedule) GetSlot(_ context.Context, id int64) (*domain.Slot, error) {
	slot, ok := f.slots[id]
	if !ok {
		return nil, scheduleRepo.ErrSlotNotFound
	}
	return slot, nil
}

func (f *fakeSchedule) ListOpenReservations(_ context.Context, _ int64) ([]*domain.Reservation, error) {
	return f.open, nil
}

type fakeInventory struct {
	stands []*domain.Stand
	bikes  []*domain.Bike
}

func (f *fakeInventory) ListStands(_ context.Context) ([]*domain.Stand, error) {
	return f.stands, nil
}

func (f *fakeInventory) ListBikes(_ context.Context) ([]*domain.Bike, error) {
	return f.bikes, nil
}

type fakeClients struct {
	clients map[int64]*domain.Client
}

func (f *fakeClients) GetClient(_ context.Context, id int64) (*domain.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, clientsRepo.ErrClientNotFound
	}
	return c, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func openReservation(id, standID int64, code string) *domain.Reservation {
	return &domain.Reservation{
		ID:        id,
		SlotID:    1,
		StandID:   ptr.Ptr(standID),
		StandCode: code,
		Status:    domain.StatusAvailable,
	}
}

func TestExecute_RanksOpenSeats(t *testing.T) {
	schedule := &fakeSchedule{
		slots: map[int64]*domain.Slot{1: {ID: 1}},
		open: []*domain.Reservation{
			openReservation(10, 1, "A1"),
			openReservation(11, 2, "A2"),
			openReservation(12, 3, "A3"),
		},
	}
	inventory := &fakeInventory{
		stands: []*domain.Stand{
			{ID: 1, Code: "A1", Title: "Станок A1"},                            // без велосипеда
			{ID: 2, Code: "A2", Title: "Станок A2", BikeID: ptr.Ptr(int64(5))}, // любимый велосипед
			{ID: 3, Code: "A3", Title: "Станок A3", BikeID: ptr.Ptr(int64(6))}, // другой велосипед
		},
		bikes: []*domain.Bike{
			{ID: 5, Title: "Canyon Ultimate", Owner: "studio"},
			{ID: 6, Title: "Trek Emonda", Owner: "studio", HeightMinCm: ptr.Ptr(170.0), HeightMaxCm: ptr.Ptr(185.0)},
		},
	}
	clients := &fakeClients{clients: map[int64]*domain.Client{
		42: {
			ID:           42,
			FirstName:    "Анна",
			Height:       ptr.Ptr(176.0),
			FavoriteBike: ptr.Ptr("Canyon Ultimate"),
		},
	}}

	uc := NewUseCase(schedule, inventory, clients, noopLogger{})

	resp, err := uc.Execute(context.Background(), 1, 42)
	require.NoError(t, err)
	require.Len(t, resp.Suggestions, 3)

	// Лучшее место - станок с любимым велосипедом
	assert.Equal(t, int64(11), resp.Suggestions[0].ReservationID)
	assert.Equal(t, 0.0, resp.Suggestions[0].Score)

	// Затем станок с подходящим по росту велосипедом
	assert.Equal(t, int64(12), resp.Suggestions[1].ReservationID)
	require.NotNil(t, resp.Suggestions[1].BikeTitle)
	assert.Equal(t, "Trek Emonda", *resp.Suggestions[1].BikeTitle)

	// Станок без велосипеда - последним
	assert.Equal(t, int64(10), resp.Suggestions[2].ReservationID)
	assert.Equal(t, float64(domain.ScoreBareStand), resp.Suggestions[2].Score)
	assert.Nil(t, resp.Suggestions[2].BikeTitle)
}

func TestExecute_EmptySlot(t *testing.T) {
	schedule := &fakeSchedule{slots: map[int64]*domain.Slot{1: {ID: 1}}}
	uc := NewUseCase(schedule, &fakeInventory{}, &fakeClients{clients: map[int64]*domain.Client{42: {ID: 42}}}, noopLogger{})

	resp, err := uc.Execute(context.Background(), 1, 42)
	require.NoError(t, err)
	assert.Empty(t, resp.Suggestions)
}

func TestExecute_SlotNotFound(t *testing.T) {
	uc := NewUseCase(&fakeSchedule{slots: map[int64]*domain.Slot{}}, &fakeInventory{}, &fakeClients{}, noopLogger{})

	_, err := uc.Execute(context.Background(), 99, 42)
	require.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_ClientNotFound(t *testing.T) {
	schedule := &fakeSchedule{slots: map[int64]*domain.Slot{1: {ID: 1}}}
	uc := NewUseCase(schedule, &fakeInventory{}, &fakeClients{clients: map[int64]*domain.Client{}}, noopLogger{})

	_, err := uc.Execute(context.Background(), 1, 42)
	require.ErrorIs(t, err, ErrClientNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeSchedule{}, &fakeInventory{}, &fakeClients{}, noopLogger{})

	_, err := uc.Execute(context.Background(), 0, 42)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), 1, -1)
	require.ErrorIs(t, err, ErrInvalidInput)
}
