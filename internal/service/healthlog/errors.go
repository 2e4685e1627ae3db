package healthlog

import "errors"

var (
	ErrInvalidType     = errors.New("type must be one of bp, sugar, weight, lab")
	ErrMissingReadings = errors.New("measurement values required for this type are missing")
	ErrDateRequired    = errors.New("date is required")
)
