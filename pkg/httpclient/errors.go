package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Kind tells callers why a request never produced a response.
type Kind int

const (
	KindTransport Kind = iota
	KindTimeout
	KindCanceled
)

func (k Kind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindCanceled:
		return "canceled"
	default:
		return "transport"
	}
}

// Error wraps a failed round trip with its classification.
type Error struct {
	Kind   Kind
	Method string
	URL    string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %s failure: %v", e.Method, e.URL, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// classify maps an error from the HTTP stack onto a Kind.
func classify(ctx context.Context, err error) Kind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}
	if errors.Is(err, context.Canceled) {
		if ctx != nil && errors.Is(context.Cause(ctx), context.DeadlineExceeded) {
			return KindTimeout
		}
		return KindCanceled
	}
	return KindTransport
}
