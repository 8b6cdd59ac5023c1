// Package upstream is the typed client for the core training-management API.
// Every response arrives in a `{status_message, data}` envelope; the client
// unwraps data and discards the status message. Error payloads carry a
// machine code in `detail` which is translated to a readable sentence.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/brightup/admin-gateway/pkg/config"
	appErrors "github.com/brightup/admin-gateway/pkg/errors"
)

// metricsObserver receives per-call timings; nil disables observation.
type metricsObserver interface {
	ObserveUpstreamRequest(operation string, duration time.Duration)
}

// Client issues HTTP calls against the core API's fixed endpoints.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
	metrics metricsObserver
}

// New constructs a Client from gateway configuration.
func New(cfg config.UpstreamConfig, logger *zap.Logger, metrics metricsObserver) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
		metrics: metrics,
	}
}

// operationLabel collapses numeric path segments so metric cardinality
// stays bounded.
func operationLabel(method, path string) string {
	parts := strings.Split(path, "/")
	for i, part := range parts {
		if part == "" {
			continue
		}
		if _, err := strconv.ParseInt(part, 10, 64); err == nil {
			parts[i] = ":id"
		}
	}
	return method + " " + strings.Join(parts, "/")
}

type envelope struct {
	StatusMessage string          `json:"status_message"`
	Data          json.RawMessage `json:"data"`
}

type errorPayload struct {
	Detail string `json:"detail"`
}

// do performs one upstream round trip. The request inherits the caller's
// context so abandoned gateway requests cancel their upstream calls too.
func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "encode upstream request")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "build upstream request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if c.metrics != nil {
		c.metrics.ObserveUpstreamRequest(operationLabel(method, path), time.Since(start))
	}
	if err != nil {
		c.logger.Warn("upstream request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "upstream request failed")
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "read upstream response")
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return c.decodeError(resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "decode upstream envelope")
	}
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "decode upstream payload")
	}

	return nil
}

// decodeError maps an upstream failure to a typed error. Structured business
// errors keep their machine code; anything undecodable becomes a generic
// upstream error with the original status.
func (c *Client) decodeError(status int, raw []byte) error {
	var payload errorPayload
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Detail != "" {
		return appErrors.New(payload.Detail, status, appErrors.Humanize(payload.Detail))
	}
	return appErrors.New(appErrors.ErrUpstream.Code, status, fmt.Sprintf("upstream returned status %d", status))
}
