package user

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrInvalidRole    = errors.New("role must be patient or caregiver")
	ErrRoleAlreadySet = errors.New("role has already been selected")
)
