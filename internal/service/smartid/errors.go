package smartid

import "errors"

var (
	ErrInvalidCode = errors.New("smart ID must be a 6-digit number")
	ErrNotFound    = errors.New("no patient found for this smart ID")
	ErrExhausted   = errors.New("could not find an unused smart ID")
)
