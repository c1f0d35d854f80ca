package analyzer

import "errors"

var (
	ErrTextRequired = errors.New("text is required")
)
