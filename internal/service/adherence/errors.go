package adherence

import "errors"

var (
	ErrInvalidDate = errors.New("date must be YYYY-MM-DD")
	ErrMedRequired = errors.New("medication id is required")
)
