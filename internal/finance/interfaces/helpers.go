package interfaces

import (
	"net/http"

	"github.com/IreshEranga/Finance-Tracker/internal/auth"
	financeErrors "github.com/IreshEranga/Finance-Tracker/internal/finance/errors"
	"github.com/IreshEranga/Finance-Tracker/internal/user"
)

func requesterFromContext(r *http.Request) (*user.User, bool) {
	requester, ok := r.Context().Value(auth.ContextUserKey).(*user.User)
	return requester, ok
}

// errorStatus maps the error taxonomy to HTTP status codes: validation 400,
// not found 404, not owner 403, everything else 500.
func errorStatus(err error) int {
	switch {
	case financeErrors.IsValidationError(err):
		return http.StatusBadRequest
	case financeErrors.IsNotFoundError(err):
		return http.StatusNotFound
	case financeErrors.IsAuthorizationError(err):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
