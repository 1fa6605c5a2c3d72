// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG":      "/path/to/config.json",
		"DOTENV_PATH": "/path/to/.env",

		"PAYLOAD_URL":                 "http://localhost:3000",
		"PAYLOAD_REQUEST_TIMEOUT":     "20s",
		"PAYLOAD_INIT_RETRIES":        "5",
		"PAYLOAD_INIT_RETRY_INTERVAL": "250ms",
		"PAYLOAD_TOKEN_TTL":           "1h",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		// Secrets has nested prefixes: SECRETS_ + AWS_
		"SECRETS_AWS_SECRET_ID": "prod/payload",
		"SECRETS_AWS_REGION":    "eu-central-1",
		"SECRETS_AWS_ENDPOINT":  "http://localhost:4566",
	}
	setEnvVars(t, envVars)

	// Act
	cfg, err := parseEnv()

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "/path/to/.env", cfg.DotEnvPath)

	assert.Equal(t, "http://localhost:3000", cfg.CMS.URL)
	assert.Equal(t, 20*time.Second, cfg.CMS.RequestTimeout)
	assert.Equal(t, 5, cfg.CMS.InitRetries)
	assert.Equal(t, 250*time.Millisecond, cfg.CMS.InitRetryInterval)
	assert.Equal(t, time.Hour, cfg.CMS.TokenTTL)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "prod/payload", cfg.Secrets.AWS.SecretID)
	assert.Equal(t, "eu-central-1", cfg.Secrets.AWS.Region)
	assert.Equal(t, "http://localhost:4566", cfg.Secrets.AWS.Endpoint)
}

func TestParseEnv_PartialFields(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{
		"PAYLOAD_URL":    "https://cms.example.com",
		"SERVER_ADDRESS": ":8080",
	})

	cfg, err := parseEnv()
	require.NoError(t, err)

	assert.Equal(t, "https://cms.example.com", cfg.CMS.URL)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.CMS.RequestTimeout)
	assert.Zero(t, cfg.CMS.InitRetries)
	assert.Empty(t, cfg.Secrets.AWS.SecretID)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	clearEnvVars(t)

	cfg, err := parseEnv()
	require.NoError(t, err)

	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_SecretIsNotPartOfConfig(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{SecretEnvKey: "super-secret"})

	cfg, err := parseEnv()
	require.NoError(t, err)

	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{"PAYLOAD_REQUEST_TIMEOUT": "not-a-duration"})

	_, err := parseEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse environment config")
}

func TestParseEnv_InvalidRetries(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{"PAYLOAD_INIT_RETRIES": "three"})

	_, err := parseEnv()
	assert.Error(t, err)
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		value    string
		expected time.Duration
	}{
		{"500ms", 500 * time.Millisecond},
		{"45s", 45 * time.Second},
		{"2m", 2 * time.Minute},
		{"1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"PAYLOAD_TOKEN_TTL": tt.value})

			cfg, err := parseEnv()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.CMS.TokenTTL)
		})
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",
		"DOTENV_PATH",
		"PAYLOAD_URL",
		"PAYLOAD_REQUEST_TIMEOUT",
		"PAYLOAD_INIT_RETRIES",
		"PAYLOAD_INIT_RETRY_INTERVAL",
		"PAYLOAD_TOKEN_TTL",
		"SERVER_ADDRESS",
		"SERVER_REQUEST_TIMEOUT",
		"SECRETS_AWS_SECRET_ID",
		"SECRETS_AWS_REGION",
		"SECRETS_AWS_ENDPOINT",
	}
	for _, k := range keys {
		if old, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { _ = os.Setenv(k, old) })
		}
		_ = os.Unsetenv(k)
	}
}
