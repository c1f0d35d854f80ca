package http

import (
	"errors"
	"net/http"

	"solosync/internal/workflow"
	pkgErrors "solosync/pkg/errors"
)

// mapError translates use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, workflow.ErrEmptyRawText),
		errors.Is(err, workflow.ErrInvalidStatus):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, workflow.ErrProjectNotFound),
		errors.Is(err, workflow.ErrInvoiceNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
