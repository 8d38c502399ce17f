// Package api is the HTTP client for the hospital-staffing backend.
// It owns the wire contract only: JSON request/response pairs, bearer
// credentials on outgoing calls, and normalization of the backend's
// error body shapes into coded errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/careops/shiftctl/internal/errors"
	"github.com/careops/shiftctl/internal/log"
)

// DefaultTimeout bounds every request; nothing in this client is
// latency sensitive.
const DefaultTimeout = 30 * time.Second

// Client talks to the staffing backend API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// OnUnauthorized runs when any authenticated call comes back 401,
	// so the session owner can discard the dead token. Fired at most
	// once per response.
	OnUnauthorized func()

	// aiLimiter paces calls to the AI endpoints, which are expensive
	// upstream model invocations.
	aiLimiter *rate.Limiter

	logger *log.Logger

	mu    sync.RWMutex
	token string
}

// NewClient creates a client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		aiLimiter: rate.NewLimiter(rate.Every(2*time.Second), 1),
		logger:    log.L().With("component", "api"),
	}
}

// SetAIInterval changes the minimum spacing between AI calls.
// Intervals of zero or less disable the pacing.
func (c *Client) SetAIInterval(d time.Duration) {
	if d <= 0 {
		c.aiLimiter = rate.NewLimiter(rate.Inf, 1)
		return
	}
	c.aiLimiter = rate.NewLimiter(rate.Every(d), 1)
}

// SetToken sets the bearer credential attached to subsequent requests.
// An empty token means requests go out unauthenticated.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token returns the current bearer credential.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// doJSON performs a request with a JSON body (or none) and decodes the
// response into target when non-nil.
func (c *Client) doJSON(ctx context.Context, method, path string, body, target any) error {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(errors.ErrCodeNetworkRequest, "failed to marshal request body", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := c.newRequest(ctx, method, path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, target)
}

// doForm performs a request with a form-encoded body. The backend's
// login endpoint follows the OAuth2 password-form convention even
// though the rest of the API speaks JSON.
func (c *Client) doForm(ctx context.Context, method, path string, form url.Values, target any) error {
	req, err := c.newRequest(ctx, method, path, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.send(req, target)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetworkRequest, "failed to create request", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req, nil
}

func (c *Client) send(req *http.Request, target any) error {
	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return errors.Wrap(errors.ErrCodeNetworkRequest,
			fmt.Sprintf("%s %s failed", req.Method, req.URL.Path), err)
	}
	c.logger.Debug("request completed",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	return c.parseResponse(resp, target)
}

// errorBody captures the error shapes the backend emits: FastAPI uses
// {"detail": ...}, a few handlers use {"message": ...}.
type errorBody struct {
	Detail  json.RawMessage `json:"detail"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func (c *Client) parseResponse(resp *http.Response, target any) error {
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if c.OnUnauthorized != nil {
			c.OnUnauthorized()
		}
		return errors.NewSessionExpiredError()
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		msg := extractErrorMessage(body)
		if msg == "" {
			msg = strings.TrimSpace(string(body))
		}
		code := errors.ErrCodeAPIStatus
		if resp.StatusCode == http.StatusNotFound {
			code = errors.ErrCodeAPINotFound
		}
		return errors.New(code, fmt.Sprintf("backend returned %d: %s", resp.StatusCode, msg))
	}

	if target != nil {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return errors.Wrap(errors.ErrCodeNetworkDecode, "failed to decode response", err)
		}
	}

	return nil
}

// extractErrorMessage pulls a usable message out of a JSON error body.
func extractErrorMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	if eb.Message != "" {
		return eb.Message
	}
	if eb.Error != "" {
		return eb.Error
	}
	if len(eb.Detail) > 0 {
		// detail is usually a string but can be a validation object list
		var s string
		if err := json.Unmarshal(eb.Detail, &s); err == nil {
			return s
		}
		return string(eb.Detail)
	}
	return ""
}

// waitAI blocks until the AI rate limiter admits another call.
func (c *Client) waitAI(ctx context.Context) error {
	if err := c.aiLimiter.Wait(ctx); err != nil {
		return errors.Wrap(errors.ErrCodeNetworkRequest, "cancelled while waiting for AI rate limit", err)
	}
	return nil
}
