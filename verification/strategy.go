// Package verification gates exports behind a human-verification check and
// implements the relay side of that check.
package verification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/linesmerrill/dispute-evidence-api/models"
)

const (
	// DefaultTimeout bounds a single verification round trip
	DefaultTimeout = 10 * time.Second

	// VerifyPath is the relay route RemoteCheck posts to
	VerifyPath = "/turnstile/verify"

	maxBodyBytes = 64 << 10
)

// ErrInvalidResponse is returned when the relay answers with something other
// than a verification result
var ErrInvalidResponse = errors.New("invalid verification response")

// Strategy decides whether a verification token belongs to a human
type Strategy interface {
	VerifyHuman(ctx context.Context, token string) (bool, error)
}

// AlwaysAllow passes every token without calling out. Local development only.
type AlwaysAllow struct{}

// VerifyHuman always reports success
func (AlwaysAllow) VerifyHuman(context.Context, string) (bool, error) {
	return true, nil
}

// RemoteCheck asks the verification relay about a token. It does not retry.
type RemoteCheck struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewRemoteCheck returns a RemoteCheck whose client gives up after timeout.
// A non-positive timeout uses DefaultTimeout.
func NewRemoteCheck(baseURL string, timeout time.Duration) *RemoteCheck {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &RemoteCheck{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// VerifyHuman posts the token to the relay. An ok:false answer is (false,
// nil); transport failures and unreadable answers are errors.
func (rc *RemoteCheck) VerifyHuman(ctx context.Context, token string) (bool, error) {
	body, err := json.Marshal(models.VerifyRequest{Token: token})
	if err != nil {
		return false, err
	}

	endpoint := strings.TrimRight(rc.BaseURL, "/") + VerifyPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	client := rc.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	resp, err := client.Do(req)
	if err != nil {
		zap.S().Warnw("verification relay unreachable", "endpoint", endpoint, "error", err)
		return false, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return false, err
	}

	var decoded models.VerifyResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		zap.S().Warnw("verification relay returned non-JSON", "status", resp.StatusCode)
		return false, fmt.Errorf("%w: status %d", ErrInvalidResponse, resp.StatusCode)
	}
	if !decoded.OK {
		zap.S().Infow("verification rejected", "status", resp.StatusCode, "reason", decoded.Error)
	}
	return decoded.OK, nil
}
