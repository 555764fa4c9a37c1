package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	envPrefix             = "TAVINOTE"
	defaultHTTPAddress    = "0.0.0.0:8080"
	defaultDatabasePath   = "tavinote.db"
	defaultDocumentSlot   = "tavinote"
	defaultLogLevel       = "info"
	defaultGeocodeURL     = "https://nominatim.openstreetmap.org/search"
	defaultRatesURL       = "https://open.er-api.com/v6/latest"
	defaultOverpassURL    = "https://overpass-api.de/api/interpreter"
	defaultLookupTimeoutS = 10
)

// AppConfig captures runtime configuration for the API server.
type AppConfig struct {
	HTTPAddress   string
	DatabasePath  string
	DocumentSlot  string
	LogLevel      string
	GeocodeURL    string
	RatesURL      string
	OverpassURL   string
	LookupTimeout time.Duration
}

// NewViper returns a viper instance with defaults and env bindings configured.
func NewViper() *viper.Viper {
	configViper := viper.New()
	ApplyDefaults(configViper)
	return configViper
}

// ApplyDefaults configures defaults and env bindings on the provided viper instance.
func ApplyDefaults(configViper *viper.Viper) {
	configViper.SetEnvPrefix(envPrefix)
	configViper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	configViper.AutomaticEnv()

	configViper.SetDefault("http.address", defaultHTTPAddress)
	configViper.SetDefault("database.path", defaultDatabasePath)
	configViper.SetDefault("database.slot", defaultDocumentSlot)
	configViper.SetDefault("log.level", defaultLogLevel)
	configViper.SetDefault("lookup.geocode_url", defaultGeocodeURL)
	configViper.SetDefault("lookup.rates_url", defaultRatesURL)
	configViper.SetDefault("lookup.overpass_url", defaultOverpassURL)
	configViper.SetDefault("lookup.timeout_seconds", defaultLookupTimeoutS)
}

// Load parses runtime configuration from viper.
func Load(configViper *viper.Viper) (AppConfig, error) {
	cfg := AppConfig{
		HTTPAddress:   configViper.GetString("http.address"),
		DatabasePath:  configViper.GetString("database.path"),
		DocumentSlot:  configViper.GetString("database.slot"),
		LogLevel:      configViper.GetString("log.level"),
		GeocodeURL:    configViper.GetString("lookup.geocode_url"),
		RatesURL:      configViper.GetString("lookup.rates_url"),
		OverpassURL:   configViper.GetString("lookup.overpass_url"),
		LookupTimeout: time.Duration(configViper.GetInt("lookup.timeout_seconds")) * time.Second,
	}

	if err := cfg.validate(); err != nil {
		return AppConfig{}, err
	}

	return cfg, nil
}

func (c AppConfig) validate() error {
	if strings.TrimSpace(c.HTTPAddress) == "" {
		return fmt.Errorf("http.address is required")
	}
	if strings.TrimSpace(c.DatabasePath) == "" {
		return fmt.Errorf("database.path is required")
	}
	if strings.TrimSpace(c.DocumentSlot) == "" {
		return fmt.Errorf("database.slot is required")
	}
	if c.LookupTimeout <= 0 {
		return fmt.Errorf("lookup.timeout_seconds must be positive")
	}
	return nil
}
