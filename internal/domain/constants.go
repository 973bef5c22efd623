package domain

// Default configuration values
const (
	// DefaultStudioFTP is pushed to the external account when the rider
	// has no FTP or an invalid one
	DefaultStudioFTP = 150

	// DefaultBirthDate is the placeholder birth date for remote profiles
	// that have none (the platform requires the field)
	DefaultBirthDate = "1990-01-01"
)

// Seat matching score constants
// Lower is better; components are tuned so score bands never overlap:
// favorite bike < mounted bike (by height fit) < bare stand < no stand.
const (
	ScoreFavoriteBike = 0.0
	ScoreMountedBase  = 100.0
	ScoreBareStand    = 600.0
	ScoreNoStand      = 900.0

	HeightPenaltyUnknown = 120.0 // rider height unknown
	HeightPenaltyNoRange = 150.0 // bike has no declared height bounds
	HeightPenaltyOutside = 200.0 // rider outside the bike's range, plus overshoot

	PositionUnknown = 999.0 // stands without a declared position sort last
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ExcludedStatuses список терминальных статусов, которые исключаются
// из подбора мест и из прохода рассадки
var ExcludedStatuses = []ReservationStatus{
	StatusCancelled,
	StatusLegacy,
	StatusBlocked,
}

// KnownStatuses полный список допустимых статусов резервации
var KnownStatuses = []ReservationStatus{
	StatusAvailable,
	StatusBooked,
	StatusCancelled,
	StatusLegacy,
	StatusBlocked,
}
