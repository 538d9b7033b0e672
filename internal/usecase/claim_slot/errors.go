package claim_slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("claim_slot: slot not found")

	// ErrRoleMissing возвращается, когда роль актёра или владельца слота не удалось установить
	ErrRoleMissing = errors.New("claim_slot: role could not be resolved")

	// ErrStudentCannotOverride возвращается, когда студент пытается занять уже занятый слот
	ErrStudentCannotOverride = errors.New("claim_slot: students cannot take an occupied slot")

	// ErrTeacherCannotOverride возвращается, когда преподаватель пытается перехватить слот другого преподавателя
	ErrTeacherCannotOverride = errors.New("claim_slot: teachers cannot take a slot held by another teacher")

	// ErrAlreadyOwned возвращается, когда актёр уже владеет этим слотом
	ErrAlreadyOwned = errors.New("claim_slot: slot is already owned by this user")

	// ErrMaxHoursExceeded возвращается, когда бронирование превысит дневной лимит часов
	ErrMaxHoursExceeded = errors.New("claim_slot: daily booking limit exceeded")

	// ErrMultiFacilityNotAllowed возвращается при попытке занять второе помещение в тот же день
	ErrMultiFacilityNotAllowed = errors.New("claim_slot: another facility is already booked for this day")

	// ErrAlreadyTaken возвращается, когда слот увели между чтением и условной записью
	ErrAlreadyTaken = errors.New("claim_slot: slot was taken by someone else")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("claim_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("claim_slot: internal error")
)
