package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/versa/internal/flagx"
	"github.com/dmitrijs2005/versa/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations use
// timex.Duration so both "168h" and integer nanoseconds are accepted.
// Absent keys leave the corresponding Config fields untouched.
type JsonConfig struct {
	EndpointAddrHTTP      *string         `json:"endpoint_addr_http"`
	EndpointAddrGRPC      *string         `json:"endpoint_addr_grpc"`
	DatabaseDSN           *string         `json:"database_dsn"`
	SecretKey             *string         `json:"secret_key"`
	TokenValidityDuration *timex.Duration `json:"token_validity_duration"`
	AllowedOrigins        []string        `json:"allowed_origins"`
	GoogleClientID        *string         `json:"google_client_id"`
	GoogleClientSecret    *string         `json:"google_client_secret"`
	GoogleRedirectURL     *string         `json:"google_redirect_url"`
	FrontendCallbackURL   *string         `json:"frontend_callback_url"`
	FrontendLoginURL      *string         `json:"frontend_login_url"`
	LogFormat             *string         `json:"log_format"`
	LogLevel              *string         `json:"log_level"`
	Environment           *string         `json:"environment"`
	DefaultCredits        *int            `json:"default_credits"`
	DefaultPostCost       *int            `json:"default_post_cost"`
}

// parseJson loads configuration values from the JSON file named by the
// -c or -config flag. Without the flag nothing is loaded. An unreadable or
// invalid file panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigPath(os.Args[1:])

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err = json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	set(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	set(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	set(&config.DatabaseDSN, c.DatabaseDSN)
	set(&config.SecretKey, c.SecretKey)
	if c.TokenValidityDuration != nil {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	if c.AllowedOrigins != nil {
		config.AllowedOrigins = c.AllowedOrigins
	}
	set(&config.GoogleClientID, c.GoogleClientID)
	set(&config.GoogleClientSecret, c.GoogleClientSecret)
	set(&config.GoogleRedirectURL, c.GoogleRedirectURL)
	set(&config.FrontendCallbackURL, c.FrontendCallbackURL)
	set(&config.FrontendLoginURL, c.FrontendLoginURL)
	set(&config.LogFormat, c.LogFormat)
	set(&config.LogLevel, c.LogLevel)
	set(&config.Environment, c.Environment)
	set(&config.DefaultCredits, c.DefaultCredits)
	set(&config.DefaultPostCost, c.DefaultPostCost)
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
