package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays values from the process environment. A .env file in the
// working directory is loaded first; a missing file is not an error.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	setString(&cfg.Primary.URL, "NUSAVIEW_URL")
	setString(&cfg.Primary.AnonKey, "NUSAVIEW_ANON_KEY")
	setString(&cfg.Culinary.URL, "NUSAVIEW_CULINARY_URL")
	setString(&cfg.Culinary.AnonKey, "NUSAVIEW_CULINARY_ANON_KEY")
	setString(&cfg.Storage.AccessKey, "NUSAVIEW_S3_ACCESS_KEY")
	setString(&cfg.Storage.SecretKey, "NUSAVIEW_S3_SECRET_KEY")
	setString(&cfg.Storage.Region, "NUSAVIEW_S3_REGION")

	if v := os.Getenv("NUSAVIEW_HTTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.HTTPTimeout = d
		}
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
