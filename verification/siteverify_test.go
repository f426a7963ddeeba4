package verification

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteverify(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "secret", r.PostForm.Get("secret"))
		assert.Equal(t, "203.0.113.7", r.PostForm.Get("remoteip"))

		w.Header().Set("Content-Type", "application/json")
		if r.PostForm.Get("response") == "good" {
			w.Write([]byte(`{"success":true,"hostname":"example.com","error-codes":[]}`))
			return
		}
		w.Write([]byte(`{"success":false,"error-codes":["invalid-input-response"]}`))
	}))
	defer srv.Close()

	sv := &Siteverify{Secret: "secret", Endpoint: srv.URL, HTTPClient: srv.Client()}

	out, err := sv.Verify(context.Background(), "good", "203.0.113.7")
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, "example.com", out.Hostname)

	out, err = sv.Verify(context.Background(), "bad", "203.0.113.7")
	require.NoError(t, err)
	assert.False(t, out.Success)
	assert.Equal(t, []string{"invalid-input-response"}, out.ErrorCodes)
}

func TestSiteverifyFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := (&Siteverify{Secret: "secret", Endpoint: srv.URL}).Verify(context.Background(), "t", "")
	assert.Error(t, err)

	_, err = NewSiteverify("", nil).Verify(context.Background(), "t", "")
	assert.EqualError(t, err, "missing turnstile secret")
}
