package care

import "errors"

var (
	ErrNotLinked       = errors.New("caregiver is not watching this patient")
	ErrCannotWatchSelf = errors.New("cannot link to your own smart ID")
)
