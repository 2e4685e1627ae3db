package sync

import "errors"

var (
	ErrAttachFailed = errors.New("could not attach to patient data stream")
)
