package apperror

import "errors"

var (
	ErrInvalidResetTarget = errors.New("invalid reset target")
	ErrUnknownStorageType = errors.New("unknown storage type")
)
