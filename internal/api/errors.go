package api

import (
	"net/http"

	"github.com/phrazzld/bank-api/internal/service"
)

// MapErrorToStatusCode maps service errors to HTTP status codes by kind.
// Anything unclassified is a 500.
func MapErrorToStatusCode(err error) int {
	switch service.KindOf(err) {
	case service.KindEmptyParameter,
		service.KindBadParameter,
		service.KindAddFailed:
		return http.StatusBadRequest

	case service.KindClientNotFound,
		service.KindAccountNotFound:
		return http.StatusNotFound

	case service.KindClientAlreadyExists:
		return http.StatusConflict

	case service.KindAccountClientMismatch:
		return http.StatusForbidden

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the caller-facing message for err. Service errors
// carry their own stable text; anything else gets a generic message.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}
	return service.MessageOf(err)
}
