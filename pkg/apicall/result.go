package apicall

import "fmt"

// RawResult is the frozen outcome of one request: header block(s) followed by
// the body, the header block size in bytes, and the final status code.
type RawResult struct {
	raw        []byte
	headerSize int
	statusCode int
}

// NewRawResult wraps an already received response. headerSize must fall inside raw.
func NewRawResult(raw []byte, headerSize, statusCode int) (*RawResult, error) {
	if headerSize < 0 || headerSize > len(raw) {
		return nil, fmt.Errorf("%w: header size %d outside response of %d bytes",
			ErrInvalidArgument, headerSize, len(raw))
	}
	buf := make([]byte, len(raw))
	copy(buf, raw)
	return &RawResult{raw: buf, headerSize: headerSize, statusCode: statusCode}, nil
}

func newRawResultFromParts(header, body []byte, statusCode int) *RawResult {
	return &RawResult{
		raw:        joinRaw(header, body),
		headerSize: len(header),
		statusCode: statusCode,
	}
}

// Raw returns a copy of the full response bytes.
func (r *RawResult) Raw() []byte {
	out := make([]byte, len(r.raw))
	copy(out, r.raw)
	return out
}

// HeaderSize is the length of the header block in bytes.
func (r *RawResult) HeaderSize() int { return r.headerSize }

// StatusCode is the numeric status of the final response message.
func (r *RawResult) StatusCode() int { return r.statusCode }

// Body returns the response with the header block stripped.
func (r *RawResult) Body() string {
	_, body := splitRaw(r.raw, r.headerSize)
	return string(body)
}

// Headers parses the header block into one segment per response message.
func (r *RawResult) Headers() ([]HeaderSegment, error) {
	header, _ := splitRaw(r.raw, r.headerSize)
	return ParseHeaders(header)
}
