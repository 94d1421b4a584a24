package config

import (
	"errors"
	"os"
	"time"
)

// Project is one backend project endpoint: base URL plus the anonymous API
// key. The app talks to two projects; the culinary tables ended up deployed
// separately and never migrated back.
type Project struct {
	URL     string
	AnonKey string
}

// StorageCreds are the S3-protocol credentials of the storage endpoint.
type StorageCreds struct {
	AccessKey string
	SecretKey string
	Region    string
}

// Config holds runtime settings for the NusaView CLI.
type Config struct {
	Primary     Project
	Culinary    Project
	Storage     StorageCreds
	HTTPTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults. Endpoints and keys have no
// defaults; they must come from the environment or flags.
func (c *Config) LoadDefaults() {
	c.HTTPTimeout = 15 * time.Second
	c.Storage.Region = "ap-southeast-1"
}

// Load constructs a Config, applies defaults, then overlays values from the
// environment (including a .env file, if present) and command-line flags.
// Later sources take precedence over earlier ones.
func Load() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}

	if cfg.Primary.URL == "" || cfg.Primary.AnonKey == "" {
		return nil, errors.New("backend URL and anon key are required (NUSAVIEW_URL, NUSAVIEW_ANON_KEY)")
	}

	// The culinary project falls back to the primary one when not
	// configured separately.
	if cfg.Culinary.URL == "" {
		cfg.Culinary = cfg.Primary
	}
	if cfg.Culinary.AnonKey == "" {
		cfg.Culinary.AnonKey = cfg.Primary.AnonKey
	}

	return cfg, nil
}
