package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptrace"
	"net/textproto"
	"sort"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

// RestyClient adapts resty.Client to the httpclient.Client interface.
// Redirects are returned to the caller as-is and failed requests are never retried.
type RestyClient struct {
	client *resty.Client
}

// NewRestyClient creates a new RestyClient with the specified timeout. A zero timeout
// leaves the deadline to the request context.
func NewRestyClient(timeout time.Duration) *RestyClient {
	return &RestyClient{client: newRestyBaseClient(timeout)}
}

// newRestyBaseClient creates a new resty.Client with the specified timeout.
func newRestyBaseClient(timeout time.Duration) *resty.Client {
	c := resty.New()
	c.SetTimeout(timeout)
	c.SetRetryCount(0)
	c.SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}))
	return c
}

// Execute performs one request and buffers the whole response in memory.
func (r *RestyClient) Execute(ctx context.Context, in Request) (Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	interim := &interimRecorder{}
	traceCtx := httptrace.WithClientTrace(ctx, &httptrace.ClientTrace{
		Got1xxResponse: interim.record,
	})

	req := r.client.R().SetContext(traceCtx)
	if len(in.Headers) > 0 {
		req.SetHeaders(in.Headers)
	}
	if in.Body != nil {
		req.SetBody(in.Body)
	}

	method := in.Method
	if method == "" {
		method = http.MethodGet
	}

	resp, err := req.Execute(method, in.URL)
	if err != nil {
		return nil, &Error{Kind: classify(ctx, err), Method: method, URL: in.URL, Err: err}
	}

	return &restyResponseAdapter{
		resp:   resp,
		header: renderHeaderBlock(resp, interim.segments()),
	}, nil
}

// Close releases idle connections held by the underlying transport.
func (r *RestyClient) Close() error {
	if r == nil || r.client == nil {
		return nil
	}
	r.client.GetClient().CloseIdleConnections()
	return nil
}

// interimRecorder collects 1xx responses seen before the final response.
type interimRecorder struct {
	mu    sync.Mutex
	items []interimResponse
}

type interimResponse struct {
	code   int
	header textproto.MIMEHeader
}

func (i *interimRecorder) record(code int, header textproto.MIMEHeader) error {
	i.mu.Lock()
	i.items = append(i.items, interimResponse{code: code, header: cloneMIMEHeader(header)})
	i.mu.Unlock()
	return nil
}

func (i *interimRecorder) segments() []interimResponse {
	i.mu.Lock()
	defer i.mu.Unlock()
	out := make([]interimResponse, len(i.items))
	copy(out, i.items)
	return out
}

func cloneMIMEHeader(h textproto.MIMEHeader) textproto.MIMEHeader {
	out := make(textproto.MIMEHeader, len(h))
	for k, v := range h {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// renderHeaderBlock rebuilds the header block the way it appeared on the wire:
// one segment per response message, each terminated by an empty line.
func renderHeaderBlock(resp *resty.Response, interim []interimResponse) []byte {
	proto := "HTTP/1.1"
	status := fmt.Sprintf("%d %s", resp.StatusCode(), http.StatusText(resp.StatusCode()))
	if raw := resp.RawResponse; raw != nil {
		if raw.Proto != "" {
			proto = raw.Proto
		}
		if raw.Status != "" {
			status = raw.Status
		}
	}

	var buf bytes.Buffer
	for _, seg := range interim {
		fmt.Fprintf(&buf, "%s %d %s\r\n", proto, seg.code, http.StatusText(seg.code))
		writeHeaderLines(&buf, http.Header(seg.header))
		buf.WriteString("\r\n")
	}

	fmt.Fprintf(&buf, "%s %s\r\n", proto, status)
	writeHeaderLines(&buf, resp.Header())
	buf.WriteString("\r\n")
	return buf.Bytes()
}

func writeHeaderLines(buf *bytes.Buffer, h http.Header) {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, v := range h[k] {
			buf.WriteString(k)
			buf.WriteString(": ")
			buf.WriteString(v)
			buf.WriteString("\r\n")
		}
	}
}

// restyResponseAdapter adapts resty.Response to the httpclient.Response interface.
type restyResponseAdapter struct {
	resp   *resty.Response
	header []byte
}

func (r *restyResponseAdapter) Body() []byte        { return r.resp.Body() }
func (r *restyResponseAdapter) StatusCode() int     { return r.resp.StatusCode() }
func (r *restyResponseAdapter) HeaderBlock() []byte { return r.header }
