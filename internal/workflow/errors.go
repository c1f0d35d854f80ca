package workflow

import "errors"

var (
	ErrEmptyRawText    = errors.New("rawText is required")
	ErrProjectNotFound = errors.New("project not found")
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrInvalidStatus   = errors.New("invalid status")
)
