package apicall

import (
	"net/url"
	"sort"
	"strings"
)

// Field is a single payload entry.
type Field struct {
	Key   string
	Value string
}

// Payload is an ordered list of form fields. Encoding keeps insertion order.
type Payload []Field

// PayloadFromMap builds a payload from an unordered map, sorted by key so the
// encoded form is stable.
func PayloadFromMap(m map[string]string) Payload {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	p := make(Payload, 0, len(keys))
	for _, k := range keys {
		p = append(p, Field{Key: k, Value: m[k]})
	}
	return p
}

// Add appends a field and returns the extended payload.
func (p Payload) Add(key, value string) Payload {
	return append(p, Field{Key: key, Value: value})
}

// Encode renders the payload as application/x-www-form-urlencoded text.
// Spaces become '+', everything else outside the unreserved set is percent-encoded.
func (p Payload) Encode() string {
	if len(p) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, f := range p {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(f.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(f.Value))
	}
	return sb.String()
}
