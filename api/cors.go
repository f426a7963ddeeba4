package api

import (
	"net/http"
	"net/url"
	"strings"
)

// CORSConfig holds CORS middleware configuration
type CORSConfig struct {
	// AllowedOrigin is the production origin, also sent to any origin
	// that is not allowed
	AllowedOrigin string
	// PreviewSuffix admits https origins whose host ends with it, such as
	// ".pages.dev" for preview deployments
	PreviewSuffix  string
	AllowedMethods []string
	AllowedHeaders []string
}

// AllowOrigin returns the Access-Control-Allow-Origin value for origin
func (c CORSConfig) AllowOrigin(origin string) string {
	if origin == "" || origin == c.AllowedOrigin {
		return c.AllowedOrigin
	}
	if c.PreviewSuffix == "" {
		return c.AllowedOrigin
	}
	u, err := url.Parse(origin)
	if err != nil || u.Scheme != "https" || u.Host == "" || u.Path != "" {
		return c.AllowedOrigin
	}
	suffix := "." + strings.TrimPrefix(c.PreviewSuffix, ".")
	if strings.HasSuffix(u.Hostname(), suffix) {
		return origin
	}
	return c.AllowedOrigin
}

// CORS returns a middleware that handles Cross-Origin Resource Sharing (CORS).
// Preflight requests are answered with 204 and no body.
func CORS(config CORSConfig) func(http.Handler) http.Handler {
	allowedMethods := strings.Join(config.AllowedMethods, ", ")
	allowedHeaders := strings.Join(config.AllowedHeaders, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", config.AllowOrigin(r.Header.Get("Origin")))
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
			w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
