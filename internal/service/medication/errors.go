package medication

import "errors"

var (
	ErrNotFound    = errors.New("medication not found")
	ErrNameMissing = errors.New("medication name is required")
	ErrInvalidTime = errors.New("time must be a meal-relative slot (before/after breakfast, lunch, dinner, or bedtime)")
)
