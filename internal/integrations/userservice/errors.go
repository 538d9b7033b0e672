package userservice

import "errors"

var (
	// ErrRoleNotFound возвращается, когда у пользователя нет назначенной роли
	ErrRoleNotFound = errors.New("user has no assigned role")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("userservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("userservice client: invalid response")
)
