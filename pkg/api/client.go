package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	traceSpan "go.opentelemetry.io/otel/trace"

	"github.com/vecdb/vecdb-go/pkg/config"
	"github.com/vecdb/vecdb-go/pkg/tracer"
)

// Logger defines the interface for logging operations in the api package.
// This interface allows the package to use any logging implementation that
// conforms to these methods.
//
//go:generate mockgen -source=client.go -destination=mock_logger.go -package=api
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// Client is the low-level HTTP client for the hosted service. Endpoint
// groups (Datasets, Search, Deployables) are thin wrappers around it.
//
// Credentials and endpoint come from the explicit Config; the client
// holds no process-wide state.
type Client struct {
	baseURL    string
	project    string
	apiKey     string
	httpClient *http.Client
	logger     Logger
	tracer     *tracer.Tracer
	classifier Classifier
}

// NewClient validates the configuration and constructs a client.
func NewClient(cfg *config.Config, log Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		project:    cfg.Project,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutSeconds) * time.Second},
		logger:     log,
		classifier: DefaultClassifier(),
	}, nil
}

// WithTracer attaches a tracer; every request then runs inside a span.
func (c *Client) WithTracer(t *tracer.Tracer) *Client {
	c.tracer = t
	return c
}

// WithClassifier overrides the default status-code classification table.
func (c *Client) WithClassifier(cl Classifier) *Client {
	c.classifier = cl
	return c
}

// Datasets returns the dataset endpoint group.
func (c *Client) Datasets() *Datasets {
	return &Datasets{client: c}
}

// Search returns the search endpoint group.
func (c *Client) Search() *Search {
	return &Search{client: c}
}

// Deployables returns the deployable endpoint group.
func (c *Client) Deployables() *Deployables {
	return &Deployables{client: c}
}

// HTTPError reports a non-2xx response, keeping the raw status code so
// callers can classify it.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	detail := e.Body
	if len(detail) > 256 {
		detail = detail[:256]
	}
	return fmt.Sprintf("api: http %d: %s", e.StatusCode, detail)
}

// do performs a JSON request against the service and decodes the
// response into out (which may be nil). Non-2xx responses become an
// *HTTPError.
func (c *Client) do(ctx context.Context, method, path string, params any, out any) error {
	status, body, err := c.doRaw(ctx, method, path, params)
	if err != nil {
		return err
	}
	if status >= 300 {
		return &HTTPError{StatusCode: status, Body: string(body)}
	}
	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("api: decode response for %s: %w", path, err)
		}
	}
	return nil
}

// doRaw performs the request and hands back the raw status code and body.
// The bulk transport uses this to classify failures without losing the
// status code to an error wrapper.
func (c *Client) doRaw(ctx context.Context, method, path string, params any) (int, []byte, error) {
	if c.tracer != nil {
		var span traceSpan.Span
		ctx, span = c.tracer.StartSpan(ctx, "api.request")
		defer span.End()
		c.tracer.SetAttributes(span, map[string]interface{}{
			"http.method": method,
			"http.path":   path,
		})
	}

	var reqBody *bytes.Reader
	if params != nil {
		data, err := json.Marshal(params)
		if err != nil {
			return 0, nil, fmt.Errorf("api: encode request for %s: %w", path, err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	url := c.baseURL + "/" + strings.TrimLeft(path, "/")
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("api: build request for %s: %w", path, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.project+":"+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("api: http error for %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := readBody(resp)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("api: read response for %s: %w", path, err)
	}

	c.logger.Debug("Request completed", nil, map[string]interface{}{
		"method": method,
		"path":   path,
		"status": resp.StatusCode,
	})

	return resp.StatusCode, body, nil
}
