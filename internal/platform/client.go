package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mazadWeb/internal/models"
)

// Client calls the auction platform REST API. Every request carries
// the tenant key; authenticated calls add the session bearer token.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tenantKey  string
	timeout    time.Duration
}

// NewClient constructs a platform API client.
func NewClient(httpClient *http.Client, baseURL, tenantKey string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		tenantKey:  tenantKey,
		timeout:    10 * time.Second,
	}
}

// apiError is the platform error envelope:
// {"error":{"code":"bid_too_low","message":"..."}}.
type apiError struct {
	Status  int
	Code    string
	Message string
}

func (e *apiError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("platform: %d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("platform: %d: %s", e.Status, e.Message)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, token string, in, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("platform: marshal request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("platform: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Tenant-Key", c.tenantKey)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return c.decodeError(resp)
	}
	if out == nil {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("platform: decode response: %w", err)
	}
	return nil
}

func (c *Client) decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 8<<10))

	apiErr := &apiError{Status: resp.StatusCode}
	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		apiErr.Code = envelope.Error.Code
		apiErr.Message = envelope.Error.Message
		if apiErr.Message == "" {
			apiErr.Message = envelope.Message
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(raw))
	}

	if sentinel := mapSentinel(apiErr.Status, apiErr.Code); sentinel != nil {
		return fmt.Errorf("%w: %s", sentinel, apiErr.Message)
	}
	return apiErr
}

// mapSentinel converts platform status and error codes into the model
// sentinels handlers branch on with errors.Is.
func mapSentinel(status int, code string) error {
	switch code {
	case "invalid_credentials":
		return models.ErrInvalidCredentials
	case "invalid_password":
		return models.ErrInvalidPassword
	case "invalid_code":
		return models.ErrInvalidVerificationCode
	case "duplicate_email":
		return models.ErrDuplicateEmail
	case "duplicate_phone":
		return models.ErrDuplicatePhone
	case "user_not_found":
		return models.ErrUserNotFound
	case "property_not_found":
		return models.ErrPropertyNotFound
	case "auction_not_found":
		return models.ErrAuctionNotFound
	case "auction_closed":
		return models.ErrAuctionClosed
	case "bid_too_low":
		return models.ErrBidTooLow
	}

	switch {
	case status == http.StatusUnauthorized:
		return models.ErrSessionExpired
	case status == http.StatusForbidden:
		return models.ErrForbidden
	case status == http.StatusNotFound:
		return models.ErrNoRecord
	case status == http.StatusTooManyRequests:
		return models.ErrTooManyAttempts
	case status >= http.StatusInternalServerError:
		return models.ErrUpstreamUnavailable
	}
	return nil
}
