package types

import (
	"context"
	"errors"
	"io"
	"net"
	"net/url"
	"syscall"
)

// ErrorKind classifies a SchoolError.
type ErrorKind string

const (
	// KindNetwork is a transport or connectivity failure.
	KindNetwork ErrorKind = "network"
	// KindService is anything else: bad status, malformed payload, missing record.
	KindService ErrorKind = "service"
)

// SchoolError is the error type returned by every school domain operation.
type SchoolError struct {
	Kind  ErrorKind
	Cause error
}

// NetworkError wraps cause as a transport failure.
func NetworkError(cause error) *SchoolError {
	return &SchoolError{Kind: KindNetwork, Cause: cause}
}

// ServiceError wraps cause as a service failure. cause may be nil, e.g. when a
// requested record is absent from an otherwise valid response.
func ServiceError(cause error) *SchoolError {
	return &SchoolError{Kind: KindService, Cause: cause}
}

// ClassifyError maps an arbitrary failure onto the taxonomy. A nil error has no
// cause and classifies as a service error.
func ClassifyError(err error) *SchoolError {
	var se *SchoolError
	if errors.As(err, &se) {
		return se
	}
	if isTransportFailure(err) {
		return NetworkError(err)
	}
	return ServiceError(err)
}

func isTransportFailure(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EPIPE) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// Error implements the error interface.
func (e *SchoolError) Error() string {
	if e.Cause != nil {
		return string(e.Kind) + " error: " + e.Cause.Error()
	}
	return string(e.Kind) + " error"
}

// Unwrap returns the underlying cause, if any.
func (e *SchoolError) Unwrap() error { return e.Cause }

// Is matches another *SchoolError of the same kind, so errors.Is(err, ServiceError(nil))
// works as a kind check.
func (e *SchoolError) Is(target error) bool {
	t, ok := target.(*SchoolError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Cause == nil
}
