// Package authclient resolves bearer tokens against the external auth
// service. Token issuance and validation rules live entirely in that
// service; this client only asks "whose token is this".
package authclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Client represents a client of the auth service's identity endpoint.
type Client struct {
	baseURL string       // auth service base URL
	client  *http.Client // HTTP client used to make requests
}

// NewClient creates a new auth Client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// meResponse represents the auth service's identity payload.
type meResponse struct {
	UserID string `json:"userId"`
}

// Verify resolves a bearer token to a user id. It calls the auth service's
// /me endpoint with the token and returns an error for any non-200 response.
func (c *Client) Verify(ctx context.Context, token string) (string, error) {
	url := c.baseURL + "/me"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("auth service error: %s", resp.Status)
	}

	var me meResponse
	if err := json.NewDecoder(resp.Body).Decode(&me); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if me.UserID == "" {
		return "", fmt.Errorf("auth service returned empty user id")
	}

	return me.UserID, nil
}
