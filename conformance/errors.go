package conformance

import "errors"

var (
	ErrMismatch          = errors.New("unexpected result")
	ErrPanicked          = errors.New("scenario panicked")
	ErrDuplicateScenario = errors.New("duplicate scenario")
)
