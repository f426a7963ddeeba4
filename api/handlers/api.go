package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/linesmerrill/dispute-evidence-api/api"
	"github.com/linesmerrill/dispute-evidence-api/config"
	"github.com/linesmerrill/dispute-evidence-api/models"
	"github.com/linesmerrill/dispute-evidence-api/verification"
)

// App stores the router and the relay dependencies, so it can be reused
type App struct {
	Router   *mux.Router
	Config   config.Config
	Metrics  *api.Metrics
	Verifier SiteVerifier
	Cache    *verification.TokenCache
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	if a.Metrics == nil {
		a.Metrics = api.NewMetrics()
	}

	r := mux.NewRouter()
	r.Use(a.Metrics.Middleware)
	r.NotFoundHandler = http.HandlerFunc(notFoundHandler)
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowedHandler)

	// healthchex
	r.HandleFunc("/health", healthCheckHandler).Methods("GET")
	r.Handle("/metrics", a.Metrics.Handler()).Methods("GET")

	t := Turnstile{
		Secret:   a.Config.TurnstileSecretKey,
		Verifier: a.Verifier,
		Cache:    a.Cache,
		Metrics:  a.Metrics,
		Timeout:  a.Config.VerifyTimeout,
	}
	cors := api.CORS(api.CORSConfig{
		AllowedOrigin:  a.Config.AllowedOrigin,
		PreviewSuffix:  a.Config.PreviewOriginSuffix,
		AllowedMethods: []string{"POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})
	timeout := a.Config.VerifyTimeout + api.UpstreamTimeout
	r.Handle("/turnstile/verify", cors(api.TimeoutMiddleware(timeout)(http.HandlerFunc(t.VerifyHandler)))).Methods("POST", "OPTIONS")
	return r
}

// Initialize is invoked by main to build the Turnstile client and create a router
func (a *App) Initialize(ctx context.Context) error {
	if a.Config.TurnstileSecretKey == "" {
		// keep serving so clients get a clear "server misconfigured" answer
		zap.S().Warn("TURNSTILE_SECRET_KEY is not set, verification requests will fail")
	} else {
		a.Verifier = verification.NewSiteverify(a.Config.TurnstileSecretKey, &http.Client{Timeout: a.Config.VerifyTimeout})
	}
	a.Cache = verification.NewTokenCache(ctx, verification.DefaultCacheTTL)
	a.Metrics = api.NewMetrics()

	// initialize api router
	a.initializeRoutes()
	return nil
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	config.ErrorStatus("route not found", http.StatusNotFound, w, fmt.Errorf("%s %s", r.Method, r.URL.Path))
}

func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	config.ErrorStatus("method not allowed", http.StatusMethodNotAllowed, w, fmt.Errorf("%s %s", r.Method, r.URL.Path))
}
