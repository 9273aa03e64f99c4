package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"jessster/logger"
	"jessster/trace"
)

// DefaultTimeout mirrors the request timeout mobile URL sessions use out of the box.
const DefaultTimeout = 60 * time.Second

const maxBodyLog = 1024

// Config holds shared settings for outbound HTTP clients.
type Config struct {
	Timeout   time.Duration
	Transport http.RoundTripper
}

// loggingRoundTripper logs every outbound call and propagates X-Request-Id / X-Span-Id.
type loggingRoundTripper struct {
	inner http.RoundTripper
}

func (l *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	requestID, spanID := trace.NextSpanID(req.Context())
	if req.Header.Get(trace.HeaderRequestID) != "" && trace.RequestIDFromContext(req.Context()) == "" {
		requestID = req.Header.Get(trace.HeaderRequestID)
	}
	req.Header.Set(trace.HeaderRequestID, requestID)
	req.Header.Set(trace.HeaderSpanID, spanID)

	// Read the body once for the log snippet, then restore it for the real send.
	var bodySnippet string
	if req.Body != nil && req.Body != http.NoBody {
		if bodyBytes, err := io.ReadAll(req.Body); err == nil {
			if len(bodyBytes) > 0 {
				if len(bodyBytes) > maxBodyLog {
					bodySnippet = string(bodyBytes[:maxBodyLog])
				} else {
					bodySnippet = string(bodyBytes)
				}
				bodySnippet = logger.RedactSecrets(bodySnippet)
			}
			req.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}
	}

	resp, err := l.inner.RoundTrip(req)
	duration := time.Since(start)
	fields := logger.Fields{
		"method":     req.Method,
		"url":        req.URL.String(),
		"duration":   duration.String(),
		"request_id": requestID,
		"span_id":    spanID,
	}
	if bodySnippet != "" {
		fields["body"] = bodySnippet
	}
	if err != nil {
		fields["error"] = err.Error()
		logger.ErrorWithFields("httpclient request failed", fields)
		return nil, err
	}

	fields["status"] = resp.StatusCode
	logger.DebugWithFields("httpclient request success", fields)
	return resp, nil
}

// BaseClient binds an http.Client to a base URL and builds requests against it.
type BaseClient struct {
	HTTPClient *http.Client
	BaseURL    string
}

// NewBaseClient binds httpClient to baseURL. A nil httpClient means New(Config{}).
func NewBaseClient(httpClient *http.Client, baseURL string) *BaseClient {
	if httpClient == nil {
		httpClient = New(Config{})
	}
	return &BaseClient{
		HTTPClient: httpClient,
		BaseURL:    baseURL,
	}
}

// NewRequest builds a request for relPath under BaseURL. relPath is an already
// escaped path such as "/api/posts/my-slug/like/"; a trailing slash is kept
// because the backend routes depend on it. Query parameters go in query, never in relPath.
func (c *BaseClient) NewRequest(ctx context.Context, method, relPath string, query url.Values, body io.Reader) (*http.Request, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if strings.Contains(relPath, "?") {
		return nil, fmt.Errorf("httpclient: relPath must not contain query string (use query parameter instead): %s", relPath)
	}
	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, err
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("httpclient: base url must be absolute: %q", c.BaseURL)
	}
	if base.Path == "" {
		base.Path = "/"
	}
	if relPath != "" {
		base = base.JoinPath(relPath)
	}
	if len(query) > 0 {
		base.RawQuery = query.Encode()
	}
	return http.NewRequestWithContext(ctx, method, base.String(), body)
}

func (c *BaseClient) Do(req *http.Request) (*http.Response, error) {
	return c.HTTPClient.Do(req)
}

// New builds an http.Client from cfg. A zero Timeout means DefaultTimeout.
func New(cfg Config) *http.Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: &loggingRoundTripper{inner: transport},
	}
}

// Wrap returns a copy of hc whose transport logs and carries trace headers.
// A client that already logs is returned unchanged.
func Wrap(hc *http.Client) *http.Client {
	if hc == nil {
		return New(Config{})
	}
	if _, ok := hc.Transport.(*loggingRoundTripper); ok {
		return hc
	}
	wrapped := New(Config{Timeout: hc.Timeout, Transport: hc.Transport})
	wrapped.Jar = hc.Jar
	wrapped.CheckRedirect = hc.CheckRedirect
	return wrapped
}
