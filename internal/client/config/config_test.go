package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "ap-southeast-1", cfg.Storage.Region)
	assert.Empty(t, cfg.Primary.URL)
	assert.Empty(t, cfg.Primary.AnonKey)
}

func TestLoad_RequiresPrimaryProject(t *testing.T) {
	_, err := load(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NUSAVIEW_URL")
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("NUSAVIEW_URL", "https://abc.supabase.co")
	t.Setenv("NUSAVIEW_ANON_KEY", "anon-key")
	t.Setenv("NUSAVIEW_S3_ACCESS_KEY", "ak")
	t.Setenv("NUSAVIEW_S3_SECRET_KEY", "sk")
	t.Setenv("NUSAVIEW_HTTP_TIMEOUT", "30s")

	cfg, err := load(nil)
	require.NoError(t, err)

	assert.Equal(t, "https://abc.supabase.co", cfg.Primary.URL)
	assert.Equal(t, "anon-key", cfg.Primary.AnonKey)
	assert.Equal(t, "ak", cfg.Storage.AccessKey)
	assert.Equal(t, "sk", cfg.Storage.SecretKey)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
}

func TestLoad_CulinaryFallsBackToPrimary(t *testing.T) {
	t.Setenv("NUSAVIEW_URL", "https://abc.supabase.co")
	t.Setenv("NUSAVIEW_ANON_KEY", "anon-key")

	cfg, err := load(nil)
	require.NoError(t, err)

	assert.Equal(t, cfg.Primary, cfg.Culinary)
}

func TestLoad_SeparateCulinaryProject(t *testing.T) {
	t.Setenv("NUSAVIEW_URL", "https://abc.supabase.co")
	t.Setenv("NUSAVIEW_ANON_KEY", "anon-key")
	t.Setenv("NUSAVIEW_CULINARY_URL", "https://food.supabase.co")
	t.Setenv("NUSAVIEW_CULINARY_ANON_KEY", "food-key")

	cfg, err := load(nil)
	require.NoError(t, err)

	assert.Equal(t, "https://food.supabase.co", cfg.Culinary.URL)
	assert.Equal(t, "food-key", cfg.Culinary.AnonKey)
}

func TestLoad_FlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("NUSAVIEW_URL", "https://env.supabase.co")
	t.Setenv("NUSAVIEW_ANON_KEY", "env-key")

	cfg, err := load([]string{"-u", "https://flag.supabase.co", "-k", "flag-key", "-t", "5s"})
	require.NoError(t, err)

	assert.Equal(t, "https://flag.supabase.co", cfg.Primary.URL)
	assert.Equal(t, "flag-key", cfg.Primary.AnonKey)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
}

func TestLoad_UnknownFlag(t *testing.T) {
	_, err := load([]string{"-nope"})
	require.Error(t, err)
}
