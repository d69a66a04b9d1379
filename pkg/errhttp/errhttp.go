// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/skulabel/pkg/httpx"
	labeldomain "github.com/ghuser/skulabel/services/label/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response
// of the form {"error": <user message>, "code": <kind>}.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONErrorCode(w, mapErrorToStatus(err), labeldomain.UserMessage(err), labeldomain.Kind(err))
}

// Status returns the HTTP status WriteError would use for err.
func Status(err error) int {
	return mapErrorToStatus(err)
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, labeldomain.ErrMissingRequiredField),
		errors.Is(err, labeldomain.ErrInvalidPrice),
		errors.Is(err, labeldomain.ErrUnsupportedCodeType):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, labeldomain.ErrLabelNotFound),
		errors.Is(err, labeldomain.ErrCodeNotOnLabel):
		return http.StatusNotFound // 404
	case errors.Is(err, labeldomain.ErrPrinterUnavailable):
		return http.StatusServiceUnavailable // 503
	default:
		return http.StatusInternalServerError // 500
	}
}
