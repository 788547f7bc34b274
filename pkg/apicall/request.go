package apicall

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const formContentType = "application/x-www-form-urlencoded"

// Request describes the single call an Executor performs.
type Request struct {
	URL     string
	Payload Payload
	Mode    Mode
	// Timeout bounds the whole round trip. Zero waits indefinitely.
	Timeout time.Duration
	// UserAgent is forwarded as the User-Agent header when set.
	UserAgent string
}

// Outbound is the wire-level form of a Request.
type Outbound struct {
	Method  string
	URL     string
	Body    []byte
	Headers map[string]string
}

// Validate checks the URL and timeout without touching the network.
func (r Request) Validate() error {
	raw := strings.TrimSpace(r.URL)
	if raw == "" {
		return fmt.Errorf("%w: url is empty", ErrInvalidArgument)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: parse url: %v", ErrInvalidArgument, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: unsupported url scheme %q", ErrInvalidArgument, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: url %q has no host", ErrInvalidArgument, raw)
	}
	if r.Timeout < 0 {
		return fmt.Errorf("%w: negative timeout %s", ErrInvalidArgument, r.Timeout)
	}
	if r.Mode != ModeBody && r.Mode != ModeQuery {
		return fmt.Errorf("%w: unknown mode %s", ErrInvalidArgument, r.Mode)
	}
	return nil
}

// Build turns the request into its outbound form. An empty payload always
// yields a GET to the URL exactly as given.
func (r Request) Build() (Outbound, error) {
	if err := r.Validate(); err != nil {
		return Outbound{}, err
	}

	out := Outbound{
		Method:  http.MethodGet,
		URL:     r.URL,
		Headers: map[string]string{},
	}
	if r.UserAgent != "" {
		out.Headers["User-Agent"] = r.UserAgent
	}
	if len(r.Payload) == 0 {
		return out, nil
	}

	encoded := r.Payload.Encode()
	switch r.Mode {
	case ModeQuery:
		out.URL = appendQuery(r.URL, encoded)
	default:
		out.Method = http.MethodPost
		out.Body = []byte(encoded)
		out.Headers["Content-Type"] = formContentType
	}
	return out, nil
}

// appendQuery adds the encoded query in front of any fragment, joining with '&'
// when the URL already carries a query.
func appendQuery(rawURL, query string) string {
	base, fragment, hasFragment := strings.Cut(rawURL, "#")

	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
		if strings.HasSuffix(base, "?") || strings.HasSuffix(base, "&") {
			sep = ""
		}
	}

	out := base + sep + query
	if hasFragment {
		out += "#" + fragment
	}
	return out
}
