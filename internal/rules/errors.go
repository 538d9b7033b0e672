package rules

import "errors"

var (
	// ErrStudentCannotOverride возвращается, когда студент пытается занять уже занятый слот
	ErrStudentCannotOverride = errors.New("rules: students cannot override existing bookings")

	// ErrTeacherCannotOverrideTeacher возвращается, когда учитель пытается забрать слот другого учителя
	ErrTeacherCannotOverrideTeacher = errors.New("rules: teachers cannot override other teachers")

	// ErrAlreadyOwned возвращается, когда актёр пытается повторно занять собственный слот
	ErrAlreadyOwned = errors.New("rules: slot is already owned by this actor")

	// ErrMaxHoursExceeded возвращается при превышении дневного лимита часов
	ErrMaxHoursExceeded = errors.New("rules: daily booking limit exceeded")

	// ErrMultiFacilityNotAllowed возвращается при попытке занять второе помещение в тот же день
	ErrMultiFacilityNotAllowed = errors.New("rules: cannot book multiple different rooms on the same day")

	// ErrNotOwner возвращается, когда актёр пытается освободить чужой слот
	ErrNotOwner = errors.New("rules: actor is not the owner of the slot")
)
