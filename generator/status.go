package generator

import "github.com/vitalvas/oasgen/routes"

// StatusEntry is a status code with its reason phrase.
type StatusEntry struct {
	Code   string
	Reason string
}

// StatusCodes holds the statuses documented for one route. Error and
// Failure are nil when the route declares no path parameters.
type StatusCodes struct {
	Success StatusEntry
	Error   *StatusEntry
	Failure *StatusEntry
}

var (
	statusOK        = StatusEntry{Code: "200", Reason: "OK"}
	statusCreated   = StatusEntry{Code: "201", Reason: "Created"}
	statusNoContent = StatusEntry{Code: "204", Reason: "No-content"}
	statusError     = StatusEntry{Code: "500", Reason: "Internal Server Error"}
	statusFailure   = StatusEntry{Code: "400", Reason: "Bad Request"}
)

// CodesFor maps a method to its success status and attaches the error and
// failure statuses when the route has path parameters. Every method other
// than GET and POST succeeds with 204.
func CodesFor(method routes.Method, hasParameters bool) StatusCodes {
	var codes StatusCodes

	switch method {
	case routes.MethodGet:
		codes.Success = statusOK
	case routes.MethodPost:
		codes.Success = statusCreated
	default:
		codes.Success = statusNoContent
	}

	if hasParameters {
		errEntry, failEntry := statusError, statusFailure
		codes.Error = &errEntry
		codes.Failure = &failEntry
	}

	return codes
}
