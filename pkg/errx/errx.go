// Package errx provides typed, registry-based errors that carry their own
// HTTP mapping. Each domain package registers its error codes once and exposes
// helper constructors; the transport layer converts *Error values into
// envelope responses without knowing anything about the domain.
package errx

import (
	"fmt"
	"net/http"
)

// Type classifies an error for logging and HTTP mapping purposes.
type Type string

const (
	TypeValidation     Type = "VALIDATION"
	TypeAuthentication Type = "AUTHENTICATION"
	TypeAuthorization  Type = "AUTHORIZATION"
	TypeNotFound       Type = "NOT_FOUND"
	TypeConflict       Type = "CONFLICT"
	TypeBusiness       Type = "BUSINESS"
	TypeInternal       Type = "INTERNAL"
	TypeExternal       Type = "EXTERNAL"
)

// Code is a registered error code, unique within its registry.
type Code string

type definition struct {
	errType    Type
	httpStatus int
	message    string
}

// Registry holds the error definitions of one domain, namespaced by prefix.
type Registry struct {
	prefix      string
	definitions map[Code]definition
}

// NewRegistry creates an error registry for the given domain prefix.
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix:      prefix,
		definitions: make(map[Code]definition),
	}
}

// Register adds an error definition and returns its code. Registering the same
// code twice panics; registries are populated from package-level vars only.
func (r *Registry) Register(code string, t Type, httpStatus int, message string) Code {
	c := Code(r.prefix + "_" + code)
	if _, exists := r.definitions[c]; exists {
		panic(fmt.Sprintf("errx: code %s registered twice", c))
	}
	r.definitions[c] = definition{errType: t, httpStatus: httpStatus, message: message}
	return c
}

// New builds a fresh *Error for a registered code.
func (r *Registry) New(code Code) *Error {
	def, ok := r.definitions[code]
	if !ok {
		return &Error{
			Code:       Code(r.prefix + "_UNKNOWN"),
			Type:       TypeInternal,
			HTTPStatus: http.StatusInternalServerError,
			Message:    "Unknown error",
		}
	}
	return &Error{
		Code:       code,
		Type:       def.errType,
		HTTPStatus: def.httpStatus,
		Message:    def.message,
	}
}

// Error is a typed error with an HTTP mapping and optional structured details.
type Error struct {
	Code       Code           `json:"code"`
	Type       Type           `json:"type"`
	HTTPStatus int            `json:"-"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details,omitempty"`
	Extra      any            `json:"extra,omitempty"`
	cause      error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause for errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.cause }

// WithDetail attaches a key/value pair to the error's detail map.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithExtra attaches an arbitrary payload surfaced verbatim in the HTTP
// response details field, e.g. a list of field validation failures.
func (e *Error) WithExtra(extra any) *Error {
	e.Extra = extra
	return e
}

// WithCause records the underlying error.
func (e *Error) WithCause(cause error) *Error {
	e.cause = cause
	return e
}

// Wrap turns an arbitrary error into an *Error of the given type. Internal and
// external failures map to 500; the original error stays server-side only.
func Wrap(err error, message string, t Type) *Error {
	status := http.StatusInternalServerError
	switch t {
	case TypeValidation:
		status = http.StatusBadRequest
	case TypeAuthentication:
		status = http.StatusUnauthorized
	case TypeAuthorization:
		status = http.StatusForbidden
	case TypeNotFound:
		status = http.StatusNotFound
	case TypeConflict:
		status = http.StatusConflict
	}
	return &Error{
		Code:       Code(string(t)),
		Type:       t,
		HTTPStatus: status,
		Message:    message,
		cause:      err,
	}
}

// HTTPResponse is the wire shape of a failed request.
type HTTPResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    Code   `json:"code"`
	Type    Type   `json:"type"`
	Details any    `json:"details,omitempty"`
}

// ToHTTPResponse converts the error into its response envelope. The wrapped
// cause is deliberately excluded; it is for server-side logs only.
func (e *Error) ToHTTPResponse() HTTPResponse {
	var details any
	switch {
	case e.Extra != nil:
		details = e.Extra
	case len(e.Details) > 0:
		details = e.Details
	}
	return HTTPResponse{
		Success: false,
		Error:   e.Message,
		Code:    e.Code,
		Type:    e.Type,
		Details: details,
	}
}

// HasCode reports whether err is an *Error carrying the given code.
func HasCode(err error, code Code) bool {
	e, ok := err.(*Error)
	return ok && e.Code == code
}
