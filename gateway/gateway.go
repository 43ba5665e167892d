package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const networkErrorMessage = "Network error - please check your connection"

// APIError is the normalized failure shape for every remote call. Status 0
// means no response was received (transport failure); any other status is the
// server's, with the server's message verbatim.
type APIError struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Errors  json.RawMessage `json:"errors,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

// Gateway is the single outbound HTTP wrapper shared by every entity client.
// It attaches bearer credentials, shapes failures into APIError, and
// invalidates the session on 401 responses. Entity clients perform no HTTP
// details of their own.
type Gateway struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger

	mu             sync.RWMutex
	token          string
	onUnauthorized func()
}

func NewGateway(baseURL string, timeout time.Duration, logger *zap.Logger) *Gateway {
	return &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// SetOnUnauthorized registers the session-invalidation hook fired whenever
// the server answers 401. The stored token is cleared before the hook runs.
func (g *Gateway) SetOnUnauthorized(fn func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onUnauthorized = fn
}

func (g *Gateway) SetToken(token string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.token = token
}

func (g *Gateway) ClearToken() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.token = ""
}

func (g *Gateway) Token() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.token
}

// Do sends one JSON request and decodes a successful response into out (out
// may be nil when the caller only cares about success). Every failure is
// returned as *APIError.
func (g *Gateway) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	requestID := uuid.NewString()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &APIError{Status: 0, Message: "failed to encode request: " + err.Error()}
		}
		reqBody = bytes.NewReader(data)
	}

	fullURL := g.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return &APIError{Status: 0, Message: "failed to build request: " + err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	if token := g.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.logger.Warn("api request failed",
			zap.String("request_id", requestID),
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return &APIError{Status: 0, Message: networkErrorMessage}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Status: 0, Message: networkErrorMessage}
	}

	g.logger.Debug("api request",
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		g.captureToken(respBody)
		if out != nil && len(respBody) > 0 {
			if err := json.Unmarshal(respBody, out); err != nil {
				return &APIError{Status: resp.StatusCode, Message: "failed to decode response: " + err.Error()}
			}
		}
		return nil
	}

	apiErr := &APIError{Status: resp.StatusCode, Message: "An error occurred"}
	var parsed struct {
		Message string          `json:"message"`
		Errors  json.RawMessage `json:"errors"`
	}
	if err := json.Unmarshal(respBody, &parsed); err == nil {
		if parsed.Message != "" {
			apiErr.Message = parsed.Message
		}
		apiErr.Errors = parsed.Errors
	}

	if resp.StatusCode == http.StatusUnauthorized {
		g.invalidateSession()
	}
	return apiErr
}

// captureToken refreshes the stored credential from any successful response
// that carries a token field, so rotated tokens take effect immediately.
func (g *Gateway) captureToken(respBody []byte) {
	var payload struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(respBody, &payload); err == nil && payload.Token != "" {
		g.SetToken(payload.Token)
	}
}

func (g *Gateway) invalidateSession() {
	g.mu.Lock()
	g.token = ""
	hook := g.onUnauthorized
	g.mu.Unlock()

	if hook != nil {
		hook()
	}
}
