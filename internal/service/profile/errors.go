package profile

import "errors"

var (
	ErrNotFound       = errors.New("profile not found")
	ErrInvalidAge     = errors.New("age must be between 0 and 150")
	ErrInvalidName    = errors.New("name must be 100 characters or less")
	ErrNotPatientUser = errors.New("user is not a patient")
)
