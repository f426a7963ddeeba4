package verification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// SiteverifyEndpoint is Cloudflare Turnstile's token validation endpoint
const SiteverifyEndpoint = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

// Outcome is Turnstile's verdict on a token
type Outcome struct {
	Success     bool     `json:"success"`
	ErrorCodes  []string `json:"error-codes"`
	ChallengeTS string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
	Action      string   `json:"action"`
}

// Siteverify validates tokens with Turnstile using the server secret
type Siteverify struct {
	Secret     string
	Endpoint   string
	HTTPClient *http.Client
}

// NewSiteverify returns a client for the public Turnstile endpoint
func NewSiteverify(secret string, client *http.Client) *Siteverify {
	return &Siteverify{Secret: secret, Endpoint: SiteverifyEndpoint, HTTPClient: client}
}

// Verify submits the token and the visitor's IP. remoteIP may be empty.
func (s *Siteverify) Verify(ctx context.Context, token, remoteIP string) (Outcome, error) {
	if strings.TrimSpace(s.Secret) == "" {
		return Outcome{}, errors.New("missing turnstile secret")
	}

	form := url.Values{}
	form.Set("secret", s.Secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	endpoint := s.Endpoint
	if endpoint == "" {
		endpoint = SiteverifyEndpoint
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return Outcome{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := s.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	resp, err := client.Do(req)
	if err != nil {
		return Outcome{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Outcome{}, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Outcome{}, fmt.Errorf("siteverify failed (status %d)", resp.StatusCode)
	}

	var out Outcome
	if err := json.Unmarshal(body, &out); err != nil {
		return Outcome{}, errors.New("invalid siteverify response")
	}
	return out, nil
}
