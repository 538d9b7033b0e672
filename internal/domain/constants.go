package domain

// Default booking policy values
const (
	// DefaultMaxDailyMinutes ограничение на суммарное время бронирований в день (4 часа)
	DefaultMaxDailyMinutes = 240

	// DefaultSlotMinutes длительность, которой считается слот без ends_at
	DefaultSlotMinutes = 60

	// DefaultSingleFacilityPerDay по умолчанию один актёр - одно помещение в день
	DefaultSingleFacilityPerDay = true

	// DefaultTimezone референсная таймзона помещений
	DefaultTimezone = "Europe/Copenhagen"
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
