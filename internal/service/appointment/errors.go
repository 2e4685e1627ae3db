package appointment

import "errors"

var (
	ErrNotFound    = errors.New("appointment not found")
	ErrInvalidDate = errors.New("date must be YYYY-MM-DD")
	ErrInvalidTime = errors.New("time must be HH:MM")
)
