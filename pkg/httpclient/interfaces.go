package httpclient

import "context"

// Request is a fully built outbound request. Nothing in it is rewritten by the client.
type Request struct {
	Method  string
	URL     string
	Body    []byte
	Headers map[string]string
}

// Response is a minimal HTTP response contract.
type Response interface {
	StatusCode() int
	Body() []byte
	// HeaderBlock returns every header segment received for the request, interim
	// 1xx responses first, in wire format. Each segment ends with a blank line.
	HeaderBlock() []byte
}

// Client abstracts HTTP calls so callers can inject mocks or different transports.
type Client interface {
	Execute(ctx context.Context, req Request) (Response, error)
	Close() error
}
