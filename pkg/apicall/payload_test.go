package apicall

import "testing"

func TestPayloadEncodeKeepsInsertionOrder(t *testing.T) {
	p := Payload{}.Add("b", "2").Add("a", "1")
	if got := p.Encode(); got != "b=2&a=1" {
		t.Fatalf("Encode = %q, want %q", got, "b=2&a=1")
	}
}

func TestPayloadEncodeEscapes(t *testing.T) {
	cases := []struct {
		name    string
		payload Payload
		want    string
	}{
		{name: "empty", payload: nil, want: ""},
		{name: "space as plus", payload: Payload{{Key: "q", Value: "hello world"}}, want: "q=hello+world"},
		{name: "reserved chars", payload: Payload{{Key: "a&b", Value: "x=y/z"}}, want: "a%26b=x%3Dy%2Fz"},
		{name: "empty value", payload: Payload{{Key: "flag", Value: ""}}, want: "flag="},
		{name: "utf8", payload: Payload{{Key: "name", Value: "é"}}, want: "name=%C3%A9"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.payload.Encode(); got != tc.want {
				t.Fatalf("Encode = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestPayloadFromMapSortsKeys(t *testing.T) {
	p := PayloadFromMap(map[string]string{"z": "26", "a": "1", "m": "13"})
	if got := p.Encode(); got != "a=1&m=13&z=26" {
		t.Fatalf("Encode = %q", got)
	}
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"": ModeBody, "body": ModeBody, "POST": ModeBody, "query": ModeQuery, " get ": ModeQuery} {
		got, err := ParseMode(in)
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseMode(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParseMode("put"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}
