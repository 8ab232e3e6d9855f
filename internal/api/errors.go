package api

import (
	"errors"
	"fmt"
	"time"

	crerr "github.com/cockroachdb/errors"
)

// Kind sentinels. Every *Error is marked with exactly one of them, so
// errors.Is works through any amount of wrapping.
var (
	ErrNotFound    = crerr.New("upstream resource not found")
	ErrRateLimited = crerr.New("upstream rate limited")
	ErrUpstream    = crerr.New("upstream error")
	ErrTransport   = crerr.New("upstream transport failure")
)

type Error struct {
	Kind       error
	Status     int
	Path       string
	RetryAfter time.Duration // only set for ErrRateLimited
	cause      error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s (status %d)", e.Kind, e.Path, e.Status)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Path)
}

func (e *Error) Unwrap() error { return e.cause }

func (e *Error) Is(target error) bool { return target == e.Kind }

func newStatusError(status int, path string, retryAfter time.Duration) error {
	kind := ErrUpstream
	switch status {
	case 404:
		kind = ErrNotFound
	case 429:
		kind = ErrRateLimited
	}
	e := &Error{Kind: kind, Status: status, Path: path}
	if kind == ErrRateLimited {
		e.RetryAfter = retryAfter
	}
	return crerr.Mark(e, kind)
}

func newTransportError(path string, cause error) error {
	return crerr.Mark(&Error{Kind: ErrTransport, Path: path, cause: cause}, ErrTransport)
}

// AsError extracts the gateway error from a wrapped chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func newDecodeError(path string, cause error) error {
	return crerr.Mark(&Error{Kind: ErrUpstream, Path: path, cause: cause}, ErrUpstream)
}
