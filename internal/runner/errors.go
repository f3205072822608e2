package runner

import "errors"

var (
	ErrCommandFailed = errors.New("command failed")
	ErrNotStarted    = errors.New("command could not be started")
)
