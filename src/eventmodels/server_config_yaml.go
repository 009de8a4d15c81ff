package eventmodels

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	UpstreamProviderTradier = "tradier"
	UpstreamProviderPolygon = "polygon"
)

type ServerConfigYAML struct {
	Port               string             `yaml:"port"`
	ReadTimeout        time.Duration      `yaml:"read_timeout"`
	WriteTimeout       time.Duration      `yaml:"write_timeout"`
	DefaultExpirations int                `yaml:"default_expirations"`
	Upstream           UpstreamConfigYAML `yaml:"upstream"`
	Retry              RetryConfigYAML    `yaml:"retry"`
	StrikeWindow       StrikeWindowYAML   `yaml:"strike_window"`
	CORS               CORSConfigYAML     `yaml:"cors"`
}

type UpstreamConfigYAML struct {
	Provider string            `yaml:"provider"`
	Timeout  time.Duration     `yaml:"timeout"`
	Tradier  TradierConfigYAML `yaml:"tradier"`
}

type TradierConfigYAML struct {
	BaseURL string `yaml:"base_url"`
}

type RetryConfigYAML struct {
	Retries   int           `yaml:"retries"`
	BaseDelay time.Duration `yaml:"base_delay"`
	MaxJitter time.Duration `yaml:"max_jitter"`
}

type StrikeWindowYAML struct {
	Lower float64 `yaml:"lower"`
	Upper float64 `yaml:"upper"`
}

type CORSConfigYAML struct {
	AllowedOrigins   []string `yaml:"allowed_origins"`
	AllowCredentials bool     `yaml:"allow_credentials"`
}

func NewDefaultServerConfig() *ServerConfigYAML {
	return &ServerConfigYAML{
		Port:               "8000",
		ReadTimeout:        15 * time.Second,
		WriteTimeout:       2 * time.Minute,
		DefaultExpirations: 6,
		Upstream: UpstreamConfigYAML{
			Provider: UpstreamProviderTradier,
			Timeout:  10 * time.Second,
			Tradier: TradierConfigYAML{
				BaseURL: "https://api.tradier.com",
			},
		},
		Retry: RetryConfigYAML{
			Retries:   3,
			BaseDelay: 2 * time.Second,
			MaxJitter: time.Second,
		},
		StrikeWindow: StrikeWindowYAML{
			Lower: 0.8,
			Upper: 1.2,
		},
		CORS: CORSConfigYAML{
			AllowedOrigins:   []string{"*"},
			AllowCredentials: true,
		},
	}
}

// LoadServerConfig overlays the YAML file at path on top of the defaults. A
// missing file is not an error.
func LoadServerConfig(path string) (*ServerConfigYAML, error) {
	config := NewDefaultServerConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Warnf("LoadServerConfig: %s not found, using defaults", path)
			return config, nil
		}

		return nil, fmt.Errorf("LoadServerConfig: failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("LoadServerConfig: failed to unmarshal %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("LoadServerConfig: %w", err)
	}

	return config, nil
}

func (c *ServerConfigYAML) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}

	if c.DefaultExpirations < 1 {
		return fmt.Errorf("default_expirations must be at least 1, got %d", c.DefaultExpirations)
	}

	switch strings.ToLower(c.Upstream.Provider) {
	case UpstreamProviderTradier, UpstreamProviderPolygon:
	default:
		return fmt.Errorf("unknown upstream provider: %q", c.Upstream.Provider)
	}

	if c.Retry.Retries < 0 {
		return fmt.Errorf("retry.retries must not be negative, got %d", c.Retry.Retries)
	}

	if c.Retry.BaseDelay < 0 || c.Retry.MaxJitter < 0 {
		return fmt.Errorf("retry delays must not be negative")
	}

	if c.StrikeWindow.Lower <= 0 || c.StrikeWindow.Upper < c.StrikeWindow.Lower {
		return fmt.Errorf("invalid strike_window: lower=%v upper=%v", c.StrikeWindow.Lower, c.StrikeWindow.Upper)
	}

	return nil
}
