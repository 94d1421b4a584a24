package config

import (
	"flag"
	"io"
	"time"
)

// parseFlags overlays command-line flags on cfg. Unset flags leave the
// existing values alone.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("nusaview", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	u := fs.String("u", "", "backend project URL")
	k := fs.String("k", "", "backend anon key")
	cu := fs.String("cu", "", "culinary project URL")
	ck := fs.String("ck", "", "culinary anon key")
	t := fs.Duration("t", 0, "HTTP timeout")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *u != "" {
		cfg.Primary.URL = *u
	}
	if *k != "" {
		cfg.Primary.AnonKey = *k
	}
	if *cu != "" {
		cfg.Culinary.URL = *cu
	}
	if *ck != "" {
		cfg.Culinary.AnonKey = *ck
	}
	if *t != time.Duration(0) {
		cfg.HTTPTimeout = *t
	}
	return nil
}
