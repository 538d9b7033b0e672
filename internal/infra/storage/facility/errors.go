package facility

import "errors"

// Ошибки репозитория помещений
var (
	ErrFacilityNotFound = errors.New("facility.repository: facility not found")
	ErrBuildQuery       = errors.New("facility.repository: failed to build query")
	ErrExecQuery        = errors.New("facility.repository: failed to execute query")
	ErrScanRow          = errors.New("facility.repository: failed to scan row")
)
