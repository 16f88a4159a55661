package insight

import "errors"

var (
	ErrUnknownColumn = errors.New("insight: unknown column")
	ErrNotNumeric    = errors.New("insight: column is not numeric")
)
