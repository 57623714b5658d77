package reconcile

import (
	"net/http"
	"strconv"
	"strings"
)

// Status is the state of a Resource.
type Status string

const (
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

const unknownError = "Unknown error"

// Resource is the envelope emitted on every stream produced by the Engine.
// Consumers switch on Status only.
type Resource[T any] struct {
	// Status is the operation state.
	Status Status `json:"status" yaml:"status"`

	// Data is the best value known at this point. It may be the zero value
	// while loading or on error.
	Data T `json:"data" yaml:"data"`

	// Message is a human readable explanation. Always set on error.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Loading returns a loading envelope carrying optional data.
func Loading[T any](data T) Resource[T] {
	return Resource[T]{Status: StatusLoading, Data: data}
}

// Success returns a success envelope.
func Success[T any](data T) Resource[T] {
	return Resource[T]{Status: StatusSuccess, Data: data}
}

// Error returns an error envelope. An empty message becomes "Unknown error".
func Error[T any](data T, message string) Resource[T] {
	if message == "" {
		message = unknownError
	}
	return Resource[T]{Status: StatusError, Data: data, Message: message}
}

// Terminal reports whether the envelope is a success or an error.
func (r Resource[T]) Terminal() bool {
	return r.Status != StatusLoading
}

// Entity is a record with a mutable identifier.
// A zero identifier means the record has not been created remotely yet.
type Entity[ID comparable] interface {
	GetID() ID
	SetID(id ID)
}

// Response is what a remote endpoint reached on the wire.
type Response[T any] struct {
	// StatusCode is the HTTP status.
	StatusCode int

	// Body is the decoded payload. Only meaningful when HasBody is set.
	Body T

	// HasBody is set when the payload was present and decoded.
	HasBody bool

	// Header holds the response headers.
	Header http.Header

	// Reason is the HTTP reason phrase, e.g. "Not Found".
	Reason string

	// ErrorBody is the raw payload of an unsuccessful response.
	ErrorBody string
}

// Successful reports a 2xx status.
func (r *Response[T]) Successful() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Location returns the Location header, matched case-insensitively.
func (r *Response[T]) Location() (string, bool) {
	for name, values := range r.Header {
		if strings.EqualFold(name, "Location") && len(values) > 0 {
			return values[0], true
		}
	}
	return "", false
}

// serverMessage picks the error body, then the reason phrase, then the status code.
func serverMessage[T any](r *Response[T]) string {
	if msg := strings.TrimSpace(r.ErrorBody); msg != "" {
		return msg
	}
	if r.Reason != "" {
		return r.Reason
	}
	return strconv.Itoa(r.StatusCode)
}
