// Package apierror maps ledger domain errors onto HTTP statuses at the huma
// boundary: missing entities are 404, invalid field combinations are 422,
// anything else is a 500 with the given message.
package apierror

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

func FromError(message string, err error) error {
	switch {
	case ledger.IsNotFound(err):
		return huma.NewError(http.StatusNotFound, err.Error())
	case ledger.IsValidation(err):
		return huma.NewError(http.StatusUnprocessableEntity, err.Error())
	default:
		return huma.NewError(http.StatusInternalServerError, message, err)
	}
}
