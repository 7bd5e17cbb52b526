package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stremovskyy/go-nvp/consts"
	"github.com/stremovskyy/go-nvp/log"
	"github.com/stremovskyy/go-nvp/nvp"
	"github.com/stremovskyy/recorder"
)

// Client posts NVP bodies as HTML form submissions.
// It is internal on purpose: the public API lives in the root package.
type Client struct {
	httpClient *http.Client
	logger     log.Logger
	logBodies  bool
	recorder   recorder.Recorder
}

// New creates an internal HTTP client.
func New(httpClient *http.Client, logger log.Logger, rec recorder.Recorder, logBodies bool) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if logger == nil {
		logger = log.NopLogger{}
	}
	return &Client{
		httpClient: httpClient,
		logger:     logger,
		logBodies:  logBodies,
		recorder:   rec,
	}
}

// Post sends body to url and returns the raw response body.
//
// Credentials are redacted from everything that is logged or recorded.
// A non-2xx status is returned as *HTTPStatusError.
func (c *Client) Post(ctx context.Context, url string, body string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	requestID := nextRequestID()
	redacted := nvp.Redact(body)
	tags := requestTags(body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(body))
	if err != nil {
		c.recordError(ctx, requestID, err, tags)
		return "", err
	}
	req.Header.Set(consts.HeaderContentType, consts.ContentTypeForm)

	c.logger.Debugf("[PayPal NVP HTTP] request prepared: request_id=%s method=%s url=%s payload=%s", requestID, tags["method"], url, logBody([]byte(redacted), c.logBodies))
	c.recordRequest(ctx, requestID, []byte(redacted), tags)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Errorf("[PayPal NVP HTTP] request failed: request_id=%s url=%s err=%v", requestID, url, err)
		c.recordError(ctx, requestID, err, tags)
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.recordError(ctx, requestID, err, tags)
		return "", fmt.Errorf("read response: %w", err)
	}
	c.recordResponse(ctx, requestID, raw, tags)

	c.logger.Debugf("[PayPal NVP HTTP] response received: request_id=%s url=%s status=%d response=%s", requestID, url, resp.StatusCode, logBody(raw, c.logBodies))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &HTTPStatusError{StatusCode: resp.StatusCode, Body: raw}
		c.logger.Errorf("[PayPal NVP HTTP] request failed: request_id=%s url=%s status=%d response=%s", requestID, url, resp.StatusCode, logBody(raw, c.logBodies))
		c.recordError(ctx, requestID, statusErr, tags)
		return string(raw), statusErr
	}
	return string(raw), nil
}

// HTTPStatusError indicates a non-2xx response.
type HTTPStatusError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPStatusError) Error() string {
	if e == nil {
		return "http status error"
	}
	if len(e.Body) == 0 {
		return fmt.Sprintf("unexpected status: %d", e.StatusCode)
	}
	// Limit in error string.
	b := e.Body
	if len(b) > 512 {
		b = b[:512]
	}
	return fmt.Sprintf("unexpected status: %d: %s", e.StatusCode, string(b))
}

func requestTags(body string) map[string]string {
	method := nvp.ParseValues(body).Value(consts.KeyMethod)
	if method == "" {
		return nil
	}
	return map[string]string{"method": method}
}

func nextRequestID() string {
	return uuid.NewString()
}

func (c *Client) recordRequest(ctx context.Context, requestID string, body []byte, tags map[string]string) {
	if c == nil || c.recorder == nil {
		return
	}
	if err := c.recorder.RecordRequest(ctx, nil, requestID, body, tags); err != nil {
		c.logger.Warnf("[PayPal NVP HTTP] cannot record request: %v", err)
	}
}

func (c *Client) recordResponse(ctx context.Context, requestID string, body []byte, tags map[string]string) {
	if c == nil || c.recorder == nil {
		return
	}
	if err := c.recorder.RecordResponse(ctx, nil, requestID, body, tags); err != nil {
		c.logger.Warnf("[PayPal NVP HTTP] cannot record response: %v", err)
	}
}

func (c *Client) recordError(ctx context.Context, requestID string, err error, tags map[string]string) {
	if c == nil || c.recorder == nil || err == nil {
		return
	}
	if recErr := c.recorder.RecordError(ctx, nil, requestID, err, tags); recErr != nil {
		c.logger.Warnf("[PayPal NVP HTTP] cannot record error: %v", recErr)
	}
}

func summarizeBytes(b []byte) string {
	return fmt.Sprintf("size=%d bytes", len(b))
}

func logBody(b []byte, verbose bool) string {
	if !verbose {
		return summarizeBytes(b)
	}
	return previewBytes(b)
}

func previewBytes(b []byte) string {
	if len(b) == 0 {
		return "<empty>"
	}
	s := strings.TrimSpace(string(b))
	if s == "" {
		return "<empty>"
	}
	if !utf8.ValidString(s) {
		return fmt.Sprintf("<binary size=%d bytes>", len(b))
	}
	return truncate(s, 4096)
}

func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
