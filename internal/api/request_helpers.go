package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/bank-api/internal/api/shared"
	"github.com/phrazzld/bank-api/internal/service"
)

// Path parameter names
const (
	clientIDParam  = "id"
	accountIDParam = "accountId"
)

// Query parameters selecting a range listing
const (
	amountGreaterThanQuery = "amountGreaterThan"
	amountLessThanQuery    = "amountLessThan"
)

// HandleAPIError writes the response for an error returned by a service.
// The status follows the error kind and the body carries the service's own
// message. Ownership mismatches are logged at WARN since they may indicate probing.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)

	var opts []shared.ResponseOption
	if service.KindOf(err) == service.KindAccountClientMismatch {
		opts = append(opts, shared.WithElevatedLogLevel())
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err, opts...)
}

// decodeBody decodes the JSON request body into v. On failure it writes a
// 400 response and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}, log *slog.Logger) bool {
	if err := shared.DecodeJSON(r, v); err != nil {
		log.Debug("invalid request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return false
	}
	return true
}
