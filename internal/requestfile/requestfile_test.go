package requestfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/samvad-hq/apicall/pkg/apicall"
)

func TestLoadYAMLKeepsPayloadOrder(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "request.yaml")
	content := `
url: https://api.example.com/search
mode: query
timeout_seconds: 3
user_agent: file-agent/1.0
payload:
  zeta: "26"
  alpha: 1
  empty: ~
`
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		t.Fatalf("write request file: %v", err)
	}

	req, err := Load(file)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if req.URL != "https://api.example.com/search" {
		t.Fatalf("URL = %q", req.URL)
	}
	if req.Mode != apicall.ModeQuery {
		t.Fatalf("Mode = %s", req.Mode)
	}
	if req.Timeout != 3*time.Second {
		t.Fatalf("Timeout = %s", req.Timeout)
	}
	if req.UserAgent != "file-agent/1.0" {
		t.Fatalf("UserAgent = %q", req.UserAgent)
	}
	if got := req.Payload.Encode(); got != "zeta=26&alpha=1&empty=" {
		t.Fatalf("payload = %q", got)
	}
}

func TestParseJSON(t *testing.T) {
	req, err := Parse([]byte(`{"url": "http://localhost:8080/post", "payload": {"b": "2", "a": "1"}}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if req.Mode != apicall.ModeBody {
		t.Fatalf("Mode = %s, want body", req.Mode)
	}
	if got := req.Payload.Encode(); got != "b=2&a=1" {
		t.Fatalf("payload = %q", got)
	}
}

func TestParseWithoutPayload(t *testing.T) {
	req, err := Parse([]byte("url: http://localhost/\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(req.Payload) != 0 {
		t.Fatalf("expected empty payload, got %v", req.Payload)
	}
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"bad mode":         "url: http://x\nmode: put\n",
		"negative timeout": "url: http://x\ntimeout_seconds: -2\n",
		"payload list":     "url: http://x\npayload: [a, b]\n",
		"nested value":     "url: http://x\npayload:\n  a:\n    b: c\n",
		"broken yaml":      "url: [\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(content)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if _, err := Load(" "); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
