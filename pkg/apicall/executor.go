// Package apicall performs a single HTTP request and keeps its raw outcome for inspection.
package apicall

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/samvad-hq/apicall/pkg/httpclient"
)

// Option customizes an Executor.
type Option func(*Executor)

// WithClient injects the transport. The caller keeps ownership: Close on the
// executor will not close an injected client.
func WithClient(c httpclient.Client) Option {
	return func(e *Executor) {
		if c != nil {
			e.client = c
			e.ownsClient = false
		}
	}
}

// WithLogger sets the logger used for request lifecycle events.
func WithLogger(log Logger) Option {
	return func(e *Executor) { e.log = ensureLogger(log) }
}

// Executor runs exactly one request. Its lifecycle is strictly linear:
// created, sent, readable, closed. It must not be shared between goroutines.
type Executor struct {
	id         string
	req        Request
	out        Outbound
	client     httpclient.Client
	ownsClient bool
	log        Logger

	mu     sync.Mutex
	result *RawResult
	sent   bool
	closed bool
}

// New validates req and prepares the executor. No network I/O happens here.
func New(req Request, opts ...Option) (*Executor, error) {
	out, err := req.Build()
	if err != nil {
		return nil, err
	}

	e := &Executor{
		id:  uuid.NewString(),
		req: req,
		out: out,
		log: noopLogger{},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.client == nil {
		e.client = httpclient.NewRestyClient(0)
		e.ownsClient = true
	}
	return e, nil
}

// ID identifies this executor in log output.
func (e *Executor) ID() string { return e.id }

// Outbound returns the request as it will be sent.
func (e *Executor) Outbound() Outbound { return e.out }

// Send performs the request and freezes its result. It blocks until the response
// is fully buffered, the timeout elapses, or ctx is done.
func (e *Executor) Send(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrUseAfterClose
	}
	if e.sent {
		return ErrAlreadySent
	}
	e.sent = true

	if ctx == nil {
		ctx = context.Background()
	}
	if e.req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.req.Timeout)
		defer cancel()
	}

	e.log.DebugObj("request sending", "request_meta", map[string]any{
		"id":         e.id,
		"method":     e.out.Method,
		"url":        e.out.URL,
		"timeout_ms": e.req.Timeout.Milliseconds(),
	})

	start := time.Now()
	resp, err := e.client.Execute(ctx, httpclient.Request{
		Method:  e.out.Method,
		URL:     e.out.URL,
		Body:    e.out.Body,
		Headers: e.out.Headers,
	})
	if err != nil {
		err = translateError(err)
		e.log.WarnObj("request failed", "request_error", map[string]any{
			"id":         e.id,
			"url":        e.out.URL,
			"elapsed_ms": time.Since(start).Milliseconds(),
			"error":      err.Error(),
		})
		return err
	}

	e.result = newRawResultFromParts(resp.HeaderBlock(), resp.Body(), resp.StatusCode())
	e.log.InfoObj("request completed", "request_meta", map[string]any{
		"id":          e.id,
		"method":      e.out.Method,
		"url":         e.out.URL,
		"status_code": e.result.StatusCode(),
		"header_size": e.result.HeaderSize(),
		"elapsed_ms":  time.Since(start).Milliseconds(),
	})
	return nil
}

// Result returns the frozen result.
func (e *Executor) Result() (*RawResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.readable()
}

// Body returns the response body without any header bytes.
func (e *Executor) Body() (string, error) {
	res, err := e.Result()
	if err != nil {
		return "", err
	}
	return res.Body(), nil
}

// StatusCode returns the status code of the final response.
func (e *Executor) StatusCode() (int, error) {
	res, err := e.Result()
	if err != nil {
		return 0, err
	}
	return res.StatusCode(), nil
}

// Headers returns one segment per response message received, in order.
func (e *Executor) Headers() ([]HeaderSegment, error) {
	res, err := e.Result()
	if err != nil {
		return nil, err
	}
	return res.Headers()
}

// Close releases the transport. A second call returns ErrUseAfterClose.
func (e *Executor) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrUseAfterClose
	}
	e.closed = true
	if !e.ownsClient {
		return nil
	}
	if err := e.client.Close(); err != nil {
		return fmt.Errorf("close transport: %w", err)
	}
	return nil
}

func (e *Executor) readable() (*RawResult, error) {
	if e.closed {
		return nil, ErrUseAfterClose
	}
	if e.result == nil {
		return nil, ErrNotSent
	}
	return e.result, nil
}

// Do runs req once and returns its result. The transport is released on every path.
func Do(ctx context.Context, req Request, opts ...Option) (res *RawResult, err error) {
	e, err := New(req, opts...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := e.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := e.Send(ctx); err != nil {
		return nil, err
	}
	return e.Result()
}

// translateError maps transport errors onto the package sentinels while keeping
// the original cause in the chain.
func translateError(err error) error {
	var herr *httpclient.Error
	if !errors.As(err, &herr) {
		return fmt.Errorf("%w: %w", ErrTransportFailure, err)
	}
	switch herr.Kind {
	case httpclient.KindTimeout:
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	default:
		return fmt.Errorf("%w: %w", ErrTransportFailure, err)
	}
}
