// Package spotify exchanges the app's client credentials for a Web API
// access token so the playlist widget can search the catalog. The token
// is cached until shortly before expiry; Spotify rate-limits the token
// endpoint, so one exchange per ~hour is the expected cadence.
package spotify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const defaultTokenURL = "https://accounts.spotify.com/api/token"

// expirySlack refreshes slightly early so callers never receive a token
// that dies mid-request.
const expirySlack = 30 * time.Second

// minTokenTTL caches a token for at least this long even when the response
// carries no usable expires_in, so a malformed response cannot turn every
// request into a credential exchange.
const minTokenTTL = time.Minute

// ErrNotConfigured is returned when no client credentials were supplied.
var ErrNotConfigured = errors.New("spotify credentials not configured")

// Token is the subset of the token response the front-end needs.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// Client performs the client-credentials flow against the Spotify
// accounts service.
type Client struct {
	clientID     string
	clientSecret string
	tokenURL     string
	httpClient   *http.Client

	mu      sync.Mutex
	token   Token
	expires time.Time
}

// NewClient creates a Spotify token client. Empty credentials produce a
// client whose Token always returns ErrNotConfigured.
func NewClient(clientID, clientSecret string) *Client {
	return &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		tokenURL:     defaultTokenURL,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Configured reports whether credentials were supplied.
func (c *Client) Configured() bool {
	return c.clientID != "" && c.clientSecret != ""
}

// Token returns a valid access token, exchanging credentials only when
// the cached one is missing or about to expire.
func (c *Client) Token(ctx context.Context) (Token, error) {
	if !c.Configured() {
		return Token{}, ErrNotConfigured
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token.AccessToken != "" && time.Now().Before(c.expires.Add(-expirySlack)) {
		return c.token, nil
	}

	tok, err := c.exchange(ctx)
	if err != nil {
		return Token{}, err
	}

	ttl := time.Duration(tok.ExpiresIn) * time.Second
	if ttl <= 0 {
		ttl = minTokenTTL
	}

	c.token = tok
	c.expires = time.Now().Add(ttl)
	return tok, nil
}

func (c *Client) exchange(ctx context.Context) (Token, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return Token{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.clientID, c.clientSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Token{}, fmt.Errorf("spotify token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Token{}, fmt.Errorf("spotify token endpoint returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var tok Token
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return Token{}, fmt.Errorf("decode token response: %w", err)
	}
	if tok.AccessToken == "" {
		return Token{}, errors.New("token response missing access_token")
	}

	return tok, nil
}
