package config

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/linesmerrill/dispute-evidence-api/models"
)

// Config holds the project config values
type Config struct {
	Port                string        `mapstructure:"port"`
	BaseURL             string        `mapstructure:"base_url"`
	Env                 string        `mapstructure:"env"`
	TurnstileSiteKey    string        `mapstructure:"turnstile_site_key"`
	TurnstileSecretKey  string        `mapstructure:"turnstile_secret_key"`
	RelayBaseURL        string        `mapstructure:"relay_base_url"`
	AllowedOrigin       string        `mapstructure:"allowed_origin"`
	PreviewOriginSuffix string        `mapstructure:"preview_origin_suffix"`
	VerifyTimeout       time.Duration `mapstructure:"verify_timeout"`
	LocalDev            bool          `mapstructure:"local_dev"`
	Branding            string        `mapstructure:"branding"`
	StripeSecretKey     string        `mapstructure:"stripe_secret_key"`
}

// keys read from the environment, upper-cased
var keys = []string{
	"port", "base_url", "env", "turnstile_site_key", "turnstile_secret_key",
	"relay_base_url", "allowed_origin", "preview_origin_suffix",
	"verify_timeout", "local_dev", "branding", "stripe_secret_key",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8081")
	v.SetDefault("base_url", "/")
	v.SetDefault("env", "production")
	v.SetDefault("relay_base_url", "http://localhost:8081")
	v.SetDefault("allowed_origin", "https://disputes.linesmerrill.com")
	v.SetDefault("preview_origin_suffix", ".pages.dev")
	v.SetDefault("verify_timeout", "10s")
	v.SetDefault("local_dev", false)
}

// Load reads configuration from defaults, the optional file at path and the
// environment, in increasing precedence
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.AutomaticEnv()
	for _, k := range keys {
		if err := v.BindEnv(k, strings.ToUpper(k)); err != nil {
			return nil, err
		}
	}

	if err := v.BindEnv("config_file", "CONFIG_FILE"); err != nil {
		return nil, err
	}
	if path == "" {
		path = v.GetString("config_file")
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// New sets up all config related services: it loads the config and
// installs the logger for its environment
func New(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if _, err := setLogger(cfg.Env); err != nil {
		return nil, err
	}
	zap.S().Infow("config loaded", "env", cfg.Env, "port", cfg.Port, "localDev", cfg.LocalDev)
	return cfg, nil
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().Errorw(message, "error", err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusCode)
	b, _ := json.Marshal(models.ErrorMessageResponse{Response: models.MessageError{Message: message, Error: errString(err)}})
	w.Write(b)
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
