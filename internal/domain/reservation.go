package domain

import "time"

// ReservationStatus represents the status of a stand placement within a slot
type ReservationStatus string

const (
	StatusAvailable ReservationStatus = "available"
	StatusBooked    ReservationStatus = "booked"
	StatusCancelled ReservationStatus = "cancelled"
	StatusLegacy    ReservationStatus = "legacy"
	StatusBlocked   ReservationStatus = "blocked"
)

// Reservation represents the binding of one stand to one slot,
// optionally occupied by a client.
//
// StandID is nullable: during the three-write stand exchange a reservation
// is transiently detached from its stand so the (slot_id, stand_id)
// uniqueness constraint is never violated at an intermediate point.
type Reservation struct {
	ID     int64
	SlotID int64

	StandID   *int64
	StandCode string // denormalized stand label, survives stand deletion

	ClientID   *int64
	ClientName *string // denormalized display name, kept for legacy/manual entries

	Status ReservationStatus
	Source string // provenance tag: "adminbot", "wizard-swap", "import-xlsx", ...
	Notes  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOpen returns true if the reservation is an open seat (no client, available)
func (r *Reservation) IsOpen() bool {
	return r.Status == StatusAvailable && r.ClientID == nil
}

// IsOccupied returns true if the reservation is booked and holds a client
func (r *Reservation) IsOccupied() bool {
	return r.Status == StatusBooked && r.ClientID != nil
}

// IsExcluded returns true for terminal statuses that matching and the
// seating wizard must ignore
func (r *Reservation) IsExcluded() bool {
	return r.Status == StatusCancelled || r.Status == StatusLegacy || r.Status == StatusBlocked
}

// ClientDisplayName returns the denormalized client name or empty string
func (r *Reservation) ClientDisplayName() string {
	if r.ClientName == nil {
		return ""
	}
	return *r.ClientName
}
