package family

import "errors"

var (
	ErrNotFound        = errors.New("family member not found")
	ErrNameMissing     = errors.New("family member name is required")
	ErrInvalidRelation = errors.New("relation must be one of child, grandchild, caregiver")
	ErrInvalidPhone    = errors.New("invalid phone number")
)
