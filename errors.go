package ghrest

import (
	"fmt"
	"net/http"

	"github.com/jmgilman/go/errors"
)

// GitHub-specific error codes (use existing codes from errors library).
// These are convenience aliases for readability in GitHub context.
const (
	// ErrCodeNotFound indicates a requested resource was not found.
	ErrCodeNotFound = errors.CodeNotFound

	// ErrCodeAuthenticationFailed indicates authentication failure.
	ErrCodeAuthenticationFailed = errors.CodeUnauthorized

	// ErrCodePermissionDenied indicates insufficient permissions.
	ErrCodePermissionDenied = errors.CodeForbidden

	// ErrCodeRateLimited indicates rate limit exceeded.
	ErrCodeRateLimited = errors.CodeRateLimit

	// ErrCodeInvalidInput indicates invalid parameters or malformed data.
	ErrCodeInvalidInput = errors.CodeInvalidInput

	// ErrCodeConflict indicates a conflict, such as a stale content hash on
	// a file update or a create on a path that already exists.
	ErrCodeConflict = errors.CodeConflict

	// ErrCodeNetwork indicates network-related errors.
	ErrCodeNetwork = errors.CodeNetwork

	// ErrCodeInternal indicates internal errors.
	ErrCodeInternal = errors.CodeInternal
)

// RequestError is the failure a Transport reports for a non-2xx response.
// It sits at the bottom of the error chain so callers can recover the
// status with StatusCode or errors.As.
type RequestError struct {
	// StatusCode is the HTTP status returned by the remote.
	StatusCode int

	// Message is the remote's error message, if any.
	Message string

	// Body is the raw error body returned by the remote.
	Body string
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("github: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("github: HTTP %d: %s", e.StatusCode, e.Message)
}

// NewRequestError builds the error a transport returns for a rejected
// request, classified by status.
func NewRequestError(statusCode int, message, body string, req *Request) error {
	err := WrapHTTPError(&RequestError{
		StatusCode: statusCode,
		Message:    message,
		Body:       body,
	}, statusCode, fmt.Sprintf("%s %s failed", req.Method, req.Path))
	return errors.WithContext(err, "status_code", statusCode)
}

// StatusCode returns the HTTP status carried by err, or 0 when err did not
// come from a rejected request.
func StatusCode(err error) int {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode
	}
	return 0
}

// WrapHTTPError wraps an error based on HTTP status code from GitHub API.
func WrapHTTPError(err error, statusCode int, message string) error {
	if err == nil {
		return nil
	}

	var code errors.ErrorCode
	switch statusCode {
	case http.StatusNotFound:
		code = errors.CodeNotFound
	case http.StatusUnauthorized:
		code = errors.CodeUnauthorized
	case http.StatusForbidden:
		code = errors.CodeForbidden
	case http.StatusConflict:
		code = errors.CodeConflict
	case http.StatusUnprocessableEntity, http.StatusBadRequest:
		code = errors.CodeInvalidInput
	case http.StatusTooManyRequests:
		code = errors.CodeRateLimit
	default:
		if statusCode >= 500 {
			code = errors.CodeNetwork
		} else {
			code = errors.CodeInternal
		}
	}

	return errors.Wrap(err, code, message)
}

// wrapError adds an operation message to an error from the transport while
// keeping its code, so a 404 stays NOT_FOUND all the way up.
func wrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, errors.GetCode(err), message)
}

// newDecodeError reports a response the client could not turn into the
// expected type.
func newDecodeError(cause error, operation, path string) error {
	var err errors.PlatformError
	if cause != nil {
		err = errors.Wrap(cause, errors.CodeInvalidInput, fmt.Sprintf("failed to decode %s response", operation))
	} else {
		err = errors.New(errors.CodeInvalidInput, fmt.Sprintf("failed to decode %s response", operation))
	}
	err = errors.WithContext(err, "operation", operation)
	return errors.WithContext(err, "path", path)
}

// newInvalidInputError creates an invalid input error with context.
func newInvalidInputError(field, reason string) error {
	err := errors.New(
		errors.CodeInvalidInput,
		fmt.Sprintf("invalid %s: %s", field, reason),
	)
	err = errors.WithContext(err, "field", field)
	return errors.WithContext(err, "reason", reason)
}
