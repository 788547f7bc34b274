package apicall

import (
	"fmt"
	"strings"
)

// Mode selects where a non-empty payload travels.
type Mode int

const (
	// ModeBody sends the payload as a form-encoded POST body.
	ModeBody Mode = iota
	// ModeQuery appends the payload to the URL of a GET request.
	ModeQuery
)

func (m Mode) String() string {
	switch m {
	case ModeBody:
		return "body"
	case ModeQuery:
		return "query"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode accepts "body"/"post" and "query"/"get". Empty input means ModeBody.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "body", "post":
		return ModeBody, nil
	case "query", "get":
		return ModeQuery, nil
	default:
		return ModeBody, fmt.Errorf("%w: unknown mode %q", ErrInvalidArgument, s)
	}
}
