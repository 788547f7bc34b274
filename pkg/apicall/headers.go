package apicall

import (
	"bytes"
	"fmt"
	"strings"
)

// StatusLineKey holds the unparsed status line of a header segment.
const StatusLineKey = "http_code"

const (
	segmentSeparator = "\r\n\r\n"
	lineSeparator    = "\r\n"
	fieldSeparator   = ": "
)

// HeaderSegment maps header names of one response message to their values.
// A name repeated within a segment keeps its last value.
type HeaderSegment map[string]string

// StatusLine returns the segment's status line, e.g. "HTTP/1.1 200 OK".
func (h HeaderSegment) StatusLine() string { return h[StatusLineKey] }

// ParseHeaders splits a raw header block into one segment per response message.
// Values are split on the first ": " only, so values containing ": " survive intact.
func ParseHeaders(block []byte) ([]HeaderSegment, error) {
	parts := strings.Split(string(block), segmentSeparator)
	if n := len(parts); n > 0 && parts[n-1] == "" {
		parts = parts[:n-1]
	}

	segments := make([]HeaderSegment, 0, len(parts))
	for i, part := range parts {
		seg := HeaderSegment{}
		for j, line := range strings.Split(part, lineSeparator) {
			if j == 0 {
				seg[StatusLineKey] = line
				continue
			}
			name, value, ok := strings.Cut(line, fieldSeparator)
			if !ok {
				return nil, fmt.Errorf("%w: segment %d line %d: %q has no %q separator",
					ErrMalformedResponse, i, j, line, fieldSeparator)
			}
			seg[name] = value
		}
		segments = append(segments, seg)
	}
	return segments, nil
}

// splitRaw separates header bytes from body bytes at headerSize.
func splitRaw(raw []byte, headerSize int) (header, body []byte) {
	return raw[:headerSize], raw[headerSize:]
}

// joinRaw concatenates the header block and body the way a transfer library
// returns them when headers are requested alongside the body.
func joinRaw(header, body []byte) []byte {
	return bytes.Join([][]byte{header, body}, nil)
}
