package apicall

import "errors"

var (
	// ErrInvalidArgument reports an empty or malformed URL, or a bad request option.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrTimeout reports a request that did not complete within its timeout.
	ErrTimeout = errors.New("request timed out")
	// ErrTransportFailure reports DNS, connection, or TLS failures.
	ErrTransportFailure = errors.New("transport failure")
	// ErrMalformedResponse reports a header line without a ": " separator.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrUseAfterClose reports an accessor or Close call on a closed executor.
	ErrUseAfterClose = errors.New("executor already closed")
	// ErrNotSent reports an accessor call before a successful Send.
	ErrNotSent = errors.New("request not sent")
	// ErrAlreadySent reports a second Send on the same executor.
	ErrAlreadySent = errors.New("request already sent")
)
