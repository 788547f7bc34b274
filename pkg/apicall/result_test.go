package apicall

import (
	"errors"
	"strings"
	"testing"
)

func TestRawResultRoundTrip(t *testing.T) {
	header := "HTTP/1.1 201 Created\r\nLocation: /items/7\r\n\r\n"
	body := "{\"id\":7}\r\n\r\ntrailing"
	res, err := NewRawResult([]byte(header+body), len(header), 201)
	if err != nil {
		t.Fatalf("NewRawResult: %v", err)
	}

	if got := res.Body(); got != body {
		t.Fatalf("Body = %q, want %q", got, body)
	}
	if strings.Contains(res.Body(), "Location") {
		t.Fatalf("body leaked header bytes")
	}
	if res.StatusCode() != 201 {
		t.Fatalf("StatusCode = %d, want 201", res.StatusCode())
	}
	if res.HeaderSize() != len(header) {
		t.Fatalf("HeaderSize = %d, want %d", res.HeaderSize(), len(header))
	}

	segs, err := res.Headers()
	if err != nil {
		t.Fatalf("Headers: %v", err)
	}
	if len(segs) != 1 || segs[0]["Location"] != "/items/7" {
		t.Fatalf("unexpected headers: %v", segs)
	}
}

func TestRawResultIsImmutable(t *testing.T) {
	raw := []byte("HTTP/1.1 200 OK\r\n\r\nbody")
	res, err := NewRawResult(raw, 19, 200)
	if err != nil {
		t.Fatalf("NewRawResult: %v", err)
	}
	raw[len(raw)-1] = 'X'
	out := res.Raw()
	out[0] = 'Z'

	if got := res.Body(); got != "body" {
		t.Fatalf("Body = %q, want body", got)
	}
	if res.Raw()[0] != 'H' {
		t.Fatalf("Raw copy was shared with caller")
	}
}

func TestNewRawResultRejectsBadHeaderSize(t *testing.T) {
	for _, size := range []int{-1, 5} {
		if _, err := NewRawResult([]byte("abcd"), size, 200); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("header size %d: expected ErrInvalidArgument, got %v", size, err)
		}
	}
}
