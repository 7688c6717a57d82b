package errors

import "errors"

var (
	ErrBandMismatch = errors.New("seat outside selected cabin band")

	ErrNotOwner = errors.New("booking owned by another user")

	ErrInvalidStage = errors.New("operation out of order for transaction stage")
)
