package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Client is an HTTP client for the FundSpring REST API. It attaches the
// caller's bearer token when one is supplied and maps upstream failures onto
// the package error taxonomy. There is no token refresh: a 401 surfaces as
// ErrUnauthenticated and the caller sends the user back to login.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a new FundSpring API client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		// Smooths bursts from page fan-out; the upstream throttles hard
		// at higher rates.
		limiter: rate.NewLimiter(rate.Limit(20), 40),
	}
}

// HealthCheck verifies the API is reachable by fetching the public
// campaign list.
func (c *Client) HealthCheck(ctx context.Context) error {
	if _, err := c.ListCampaigns(ctx); err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	return nil
}

// do performs one request against the upstream API. A non-empty token is sent
// as an Authorization bearer header. When out is non-nil the 2xx response body
// is decoded into it.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	LogRequest(method, path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		LogError(method+" "+path, err)
		return fmt.Errorf("fundspring request: %w", err)
	}
	defer resp.Body.Close()

	LogResponse(method, path, resp.StatusCode, time.Since(start))

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode fundspring response: %w", err)
		}
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthenticated
	case resp.StatusCode == http.StatusForbidden:
		return ErrForbidden
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode < 500:
		raw, _ := io.ReadAll(resp.Body)
		return parseFieldErrors(resp.StatusCode, raw)
	default:
		return fmt.Errorf("fundspring status %d", resp.StatusCode)
	}
}
