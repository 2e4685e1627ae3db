package auth

import "errors"

var (
	ErrEmailAlreadyExists = errors.New("email address already registered")
	ErrInvalidEmail       = errors.New("invalid email address format")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrInvalidCredentials = errors.New("email or password is incorrect")
	ErrEmailNotVerified   = errors.New("email address is not verified")
	ErrVerifyTokenInvalid = errors.New("verification token is invalid or expired")
	ErrSessionNotFound    = errors.New("session not found or expired")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
