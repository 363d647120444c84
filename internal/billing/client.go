// Package billing talks to the external checkout-session provider. It only
// creates hosted checkout sessions; plan activation is confirmed out-of-band
// through the provider's webhook, never inferred from a redirect.
package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"artist_marketplace/internal/domain"
)

var (
	ErrInvalidTier     = errors.New("invalid upgrade tier")
	ErrUnauthenticated = errors.New("billing provider rejected credentials")
	ErrTimeout         = errors.New("billing provider timed out")
)

const defaultTimeout = 10 * time.Second

// Client is an HTTP client for the checkout-session provider.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

type sessionRequest struct {
	ArtistID int64  `json:"artist_id"`
	Plan     string `json:"plan"`
}

type sessionResponse struct {
	RedirectURL string `json:"redirect_url"`
}

// CreateUpgradeSession asks the provider for a hosted checkout session and
// returns its redirect URL. An invalid tier is a programmer error and is
// rejected before any network call. Timeouts surface as ErrTimeout so the UI
// can offer a retry instead of a generic failure.
func (c *Client) CreateUpgradeSession(ctx context.Context, artistID int64, tier domain.PlanTier) (string, error) {
	if !domain.ValidTier(tier) || tier == domain.TierFree {
		return "", ErrInvalidTier
	}

	body, err := json.Marshal(sessionRequest{ArtistID: artistID, Plan: string(tier)})
	if err != nil {
		return "", err
	}

	url := c.baseURL + "/v1/checkout/sessions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return "", ErrTimeout
		}
		return "", fmt.Errorf("checkout session request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", ErrUnauthenticated
	case resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated:
		msg, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("checkout session: %s - %s", resp.Status, string(msg))
	}

	var session sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return "", err
	}
	if session.RedirectURL == "" {
		return "", errors.New("checkout session missing redirect url")
	}

	return session.RedirectURL, nil
}

func isTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
