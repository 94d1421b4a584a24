// Package config loads runtime configuration for the NusaView CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, including a .env file in the working directory.
//  3. Command-line flags, which override earlier values.
//
// Supported environment variables
//
//	NUSAVIEW_URL                 backend project base URL (required)
//	NUSAVIEW_ANON_KEY            backend anonymous API key (required)
//	NUSAVIEW_CULINARY_URL        culinary project base URL (defaults to primary)
//	NUSAVIEW_CULINARY_ANON_KEY   culinary anonymous API key (defaults to primary)
//	NUSAVIEW_S3_ACCESS_KEY       storage access key id
//	NUSAVIEW_S3_SECRET_KEY       storage secret key
//	NUSAVIEW_S3_REGION           storage region
//	NUSAVIEW_HTTP_TIMEOUT        request timeout, e.g. "15s"
//
// Supported flags
//
//	-u string     backend project URL
//	-k string     backend anon key
//	-cu string    culinary project URL
//	-ck string    culinary anon key
//	-t duration   HTTP timeout
//
// Earlier app revisions embedded both endpoint/key pairs directly in source;
// they are injected here instead and passed down at composition time.
package config
