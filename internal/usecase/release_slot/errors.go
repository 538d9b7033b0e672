package release_slot

import "errors"

var (
	// ErrNotOwnerOrNotFound возвращается, когда слот не существует,
	// свободен или принадлежит другому пользователю. Различать эти случаи
	// наружу не нужно, условная запись их и не различает.
	ErrNotOwnerOrNotFound = errors.New("release_slot: slot not found or not owned by this user")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("release_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("release_slot: internal error")
)
