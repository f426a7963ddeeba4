package handlers

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/linesmerrill/dispute-evidence-api/api"
	"github.com/linesmerrill/dispute-evidence-api/config"
	"github.com/linesmerrill/dispute-evidence-api/models"
	"github.com/linesmerrill/dispute-evidence-api/verification"
)

const maxVerifyBodyBytes = 64 << 10

// SiteVerifier validates a Turnstile token upstream
type SiteVerifier interface {
	Verify(ctx context.Context, token, remoteIP string) (verification.Outcome, error)
}

// Turnstile relays human-verification tokens to Cloudflare Turnstile
type Turnstile struct {
	Secret   string
	Verifier SiteVerifier
	Cache    *verification.TokenCache
	Metrics  *api.Metrics
	Timeout  time.Duration
}

// VerifyHandler checks a token and answers {"ok": bool}
func (t Turnstile) VerifyHandler(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyRequest
	body := http.MaxBytesReader(w, r.Body, maxVerifyBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		zap.S().Debugw("unreadable verify request", "error", err)
	}
	token := strings.TrimSpace(req.Token)
	if token == "" {
		writeVerifyResponse(w, http.StatusBadRequest, models.VerifyResponse{OK: false, Error: "missing token"})
		return
	}

	if strings.TrimSpace(t.Secret) == "" || t.Verifier == nil {
		zap.S().Errorw("turnstile secret is not configured", "requestId", api.RequestID(r.Context()))
		writeVerifyResponse(w, http.StatusInternalServerError, models.VerifyResponse{OK: false, Error: "server misconfigured"})
		return
	}

	if t.Cache != nil && t.Cache.Seen(r, token) {
		t.Metrics.RecordVerification(api.OutcomeCached)
		writeVerifyResponse(w, http.StatusOK, models.VerifyResponse{OK: true})
		return
	}

	ctx, cancel := api.WithUpstreamTimeout(r.Context(), t.Timeout)
	defer cancel()

	outcome, err := t.Verifier.Verify(ctx, token, remoteIP(r))
	if err != nil {
		zap.S().Errorw("turnstile siteverify failed",
			"requestId", api.RequestID(r.Context()),
			"error", err)
		t.Metrics.RecordVerification(api.OutcomeError)
		writeVerifyResponse(w, http.StatusOK, models.VerifyResponse{OK: false, Error: "verification unavailable"})
		return
	}
	if !outcome.Success {
		zap.S().Infow("turnstile rejected token",
			"requestId", api.RequestID(r.Context()),
			"codes", outcome.ErrorCodes)
		t.Metrics.RecordVerification(api.OutcomeRejected)
		writeVerifyResponse(w, http.StatusOK, models.VerifyResponse{OK: false, Error: strings.Join(outcome.ErrorCodes, ",")})
		return
	}

	if t.Cache != nil {
		t.Cache.Remember(r, token)
	}
	t.Metrics.RecordVerification(api.OutcomeVerified)
	writeVerifyResponse(w, http.StatusOK, models.VerifyResponse{OK: true})
}

func writeVerifyResponse(w http.ResponseWriter, status int, resp models.VerifyResponse) {
	b, err := json.Marshal(resp)
	if err != nil {
		config.ErrorStatus("failed to marshal verify response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(b)
}

// remoteIP prefers the address Cloudflare saw, then the first forwarded
// hop, then the socket peer
func remoteIP(r *http.Request) string {
	if ip := strings.TrimSpace(r.Header.Get("CF-Connecting-IP")); ip != "" {
		return ip
	}
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if ip := strings.TrimSpace(strings.Split(fwd, ",")[0]); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
