package pipeline

import "errors"

var (
	ErrPipeline = errors.New("pipeline failed")
	ErrMode     = errors.New("invalid pipeline mode")
)
