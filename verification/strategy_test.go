package verification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linesmerrill/dispute-evidence-api/models"
)

func TestAlwaysAllow(t *testing.T) {
	ok, err := AlwaysAllow{}.VerifyHuman(context.Background(), "")
	assert.NoError(t, err)
	assert.True(t, ok)
}

func relay(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, VerifyPath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req models.VerifyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "tok", req.Token)

		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRemoteCheck(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    bool
		wantErr bool
	}{
		{"ok", http.StatusOK, `{"ok":true}`, true, false},
		{"rejected", http.StatusOK, `{"ok":false}`, false, false},
		{"rejected with reason", http.StatusOK, `{"ok":false,"error":"timeout-or-duplicate"}`, false, false},
		{"bad request", http.StatusBadRequest, `{"ok":false,"error":"missing token"}`, false, false},
		{"not json", http.StatusBadGateway, `<html>bad gateway</html>`, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := relay(t, tt.status, tt.body)
			rc := NewRemoteCheck(srv.URL+"/", time.Second)

			ok, err := rc.VerifyHuman(context.Background(), "tok")
			assert.Equal(t, tt.want, ok)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidResponse)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRemoteCheckTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	ok, err := NewRemoteCheck(url, time.Second).VerifyHuman(context.Background(), "tok")
	assert.False(t, ok)
	assert.Error(t, err)
}

func TestRemoteCheckTimesOut(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	ok, err := NewRemoteCheck(srv.URL, 50*time.Millisecond).VerifyHuman(context.Background(), "tok")
	assert.False(t, ok)
	assert.Error(t, err)
}

func TestNewRemoteCheckDefaultTimeout(t *testing.T) {
	rc := NewRemoteCheck("http://relay", 0)
	assert.Equal(t, DefaultTimeout, rc.HTTPClient.Timeout)
}
