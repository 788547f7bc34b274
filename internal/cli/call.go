package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/samvad-hq/apicall/internal/config"
	"github.com/samvad-hq/apicall/internal/logger"
	"github.com/samvad-hq/apicall/internal/requestfile"
	"github.com/samvad-hq/apicall/pkg/apicall"
)

// callView is what gets printed for a completed request.
type callView struct {
	StatusCode int                     `json:"status_code" yaml:"status_code"`
	Headers    []apicall.HeaderSegment `json:"headers" yaml:"headers"`
	Body       string                  `json:"body" yaml:"body"`
}

func runCall(cmd *cobra.Command, out io.Writer) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	req, err := buildRequest(cmd, cfg)
	if err != nil {
		return err
	}

	res, err := apicall.Do(cmd.Context(), req, apicall.WithLogger(log))
	if err != nil {
		return fmt.Errorf("call %s: %w", req.URL, err)
	}

	view := callView{StatusCode: res.StatusCode(), Body: res.Body()}
	headers, err := res.Headers()
	if err != nil {
		log.WarnObj("header block could not be parsed", "error", err.Error())
	} else {
		view.Headers = headers
	}

	return render(out, cfg.OutputFormat, view)
}

// buildRequest merges the request file, if any, with flags and config. Flags win.
func buildRequest(cmd *cobra.Command, cfg *config.Config) (apicall.Request, error) {
	var req apicall.Request
	if cfg.RequestFile != "" {
		loaded, err := requestfile.Load(cfg.RequestFile)
		if err != nil {
			return apicall.Request{}, err
		}
		req = loaded
	}

	flags := cmd.Flags()
	if u, _ := flags.GetString("url"); u != "" {
		req.URL = u
	}
	if flags.Changed("query") {
		if q, _ := flags.GetBool("query"); q {
			req.Mode = apicall.ModeQuery
		} else {
			req.Mode = apicall.ModeBody
		}
	}

	data, _ := flags.GetStringArray("data")
	for _, kv := range data {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return apicall.Request{}, fmt.Errorf("invalid --data %q (want key=value)", kv)
		}
		req.Payload = req.Payload.Add(key, value)
	}

	if cfg.UserAgent != "" {
		req.UserAgent = cfg.UserAgent
	}
	if cfg.Timeout > 0 {
		req.Timeout = cfg.Timeout
	}

	if req.URL == "" {
		return apicall.Request{}, errors.New("target URL is required (use --url or a request file)")
	}
	return req, nil
}

func render(out io.Writer, format string, view callView) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(view); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(view); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
}
