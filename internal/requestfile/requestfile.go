// Package requestfile loads request definitions from YAML or JSON files.
package requestfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/samvad-hq/apicall/pkg/apicall"
)

// definition is the on-disk shape of a request file. JSON is accepted too since
// the YAML decoder reads it unchanged.
type definition struct {
	URL            string    `yaml:"url"`
	Mode           string    `yaml:"mode"`
	TimeoutSeconds int       `yaml:"timeout_seconds"`
	UserAgent      string    `yaml:"user_agent"`
	Payload        yaml.Node `yaml:"payload"`
}

// Load reads and decodes the request file at path.
func Load(path string) (apicall.Request, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return apicall.Request{}, errors.New("request file path is empty")
	}

	file, err := os.Open(path)
	if err != nil {
		return apicall.Request{}, fmt.Errorf("open request file: %w", err)
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return apicall.Request{}, fmt.Errorf("read request file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes a request definition. Payload entries keep file order.
func Parse(data []byte) (apicall.Request, error) {
	var def definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return apicall.Request{}, fmt.Errorf("decode request file: %w", err)
	}

	mode, err := apicall.ParseMode(def.Mode)
	if err != nil {
		return apicall.Request{}, err
	}
	if def.TimeoutSeconds < 0 {
		return apicall.Request{}, fmt.Errorf("invalid timeout_seconds %d (must be zero or positive)", def.TimeoutSeconds)
	}

	payload, err := decodePayload(&def.Payload)
	if err != nil {
		return apicall.Request{}, err
	}

	return apicall.Request{
		URL:       strings.TrimSpace(def.URL),
		Payload:   payload,
		Mode:      mode,
		Timeout:   time.Duration(def.TimeoutSeconds) * time.Second,
		UserAgent: def.UserAgent,
	}, nil
}

func decodePayload(node *yaml.Node) (apicall.Payload, error) {
	if node.Kind == 0 {
		return nil, nil
	}
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("payload must be a mapping (line %d)", node.Line)
	}

	payload := make(apicall.Payload, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("payload %q: value must be a scalar (line %d)", key.Value, val.Line)
		}
		value := val.Value
		if val.Tag == "!!null" {
			value = ""
		}
		payload = payload.Add(key.Value, value)
	}
	return payload, nil
}
