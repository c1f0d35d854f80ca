package http

import (
	pkgErrors "solosync/pkg/errors"
)

// mapError translates use-case errors into HTTP errors.
// Analyze never fails for bound input, so anything reaching here is unexpected.
func (h *handler) mapError(err error) error {
	return pkgErrors.ErrInternalServerError
}
