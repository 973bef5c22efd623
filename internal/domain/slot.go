package domain

import (
	"time"

	"github.com/m04kA/VeloStudio-SeatingService/pkg/types"
)

// SessionKind represents how a training session is run
type SessionKind string

const (
	SessionSelfService   SessionKind = "self_service"
	SessionInstructorLed SessionKind = "instructor_led"
)

// Slot represents a bookable time window that can host multiple stand placements
type Slot struct {
	ID             int64
	Date           time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString
	Label          *string
	SessionKind    SessionKind
	InstructorName *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsInstructorLed returns true if the session is run by an instructor
func (s *Slot) IsInstructorLed() bool {
	return s.SessionKind == SessionInstructorLed
}

// DisplayLabel returns the free-text label or empty string
func (s *Slot) DisplayLabel() string {
	if s.Label == nil {
		return ""
	}
	return *s.Label
}
