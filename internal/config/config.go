// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// SecretEnvKey is the environment variable holding the CMS secret. The secret
// is intentionally not part of [StructuredConfig]: it is read from the process
// environment on every client lookup.
const SecretEnvKey = "PAYLOAD_SECRET"

// Defaults applied to zero-valued fields after all sources are merged.
const (
	DefaultRequestTimeout    = 15 * time.Second
	DefaultInitRetries       = 3
	DefaultInitRetryInterval = 500 * time.Millisecond
	DefaultTokenTTL          = 2 * time.Hour
)

// NoInitRetries turns off handshake retries when set as CMS.InitRetries.
const NoInitRetries = -1

// StructuredConfig is the top-level configuration container for the
// go-payload-client application. It aggregates all sub-configurations and is
// populated by merging values from a dotenv file, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// CMS holds the location of the Payload CMS and the client tuning knobs.
	CMS CMS `envPrefix:"PAYLOAD_"`

	// Server holds network address and timeout settings for the host HTTP
	// server that embeds the CMS routes.
	Server Server `envPrefix:"SERVER_"`

	// Secrets holds optional remote secret sources used to bootstrap
	// PAYLOAD_SECRET at startup.
	Secrets Secrets `envPrefix:"SECRETS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath overrides the location of the dotenv file.
	// Env: DOTENV_PATH
	DotEnvPath string `env:"DOTENV_PATH"`
}

// CMS holds the settings used to reach the Payload CMS REST API.
type CMS struct {
	// URL is the base URL of the CMS (e.g. "http://localhost:3000").
	// Env: PAYLOAD_URL
	URL string `env:"URL"`

	// RequestTimeout bounds every outbound request to the CMS.
	// Env: PAYLOAD_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// InitRetries is the number of extra handshake attempts made on
	// transient failures during a single initialization. Zero selects
	// DefaultInitRetries; a negative value (NoInitRetries) disables retries.
	// Env: PAYLOAD_INIT_RETRIES
	InitRetries int `env:"INIT_RETRIES"`

	// InitRetryInterval is the initial backoff interval between handshake
	// attempts.
	// Env: PAYLOAD_INIT_RETRY_INTERVAL
	InitRetryInterval time.Duration `env:"INIT_RETRY_INTERVAL"`

	// TokenTTL is the lifetime of the JWTs minted for CMS requests.
	// Env: PAYLOAD_TOKEN_TTL
	TokenTTL time.Duration `env:"TOKEN_TTL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Secrets groups the remote secret sources.
type Secrets struct {
	AWS AWSSecrets `envPrefix:"AWS_"`
}

// AWSSecrets configures the AWS Secrets Manager bootstrap. It is disabled
// when SecretID is empty.
type AWSSecrets struct {
	// SecretID is the name or ARN of the secret.
	// Env: SECRETS_AWS_SECRET_ID
	SecretID string `env:"SECRET_ID"`

	// Region overrides the region resolved by the default AWS config chain.
	// Env: SECRETS_AWS_REGION
	Region string `env:"REGION"`

	// Endpoint overrides the service endpoint (e.g. LocalStack).
	// Env: SECRETS_AWS_ENDPOINT
	Endpoint string `env:"ENDPOINT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. dotenv file (exported into the process environment)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// GetServerConfig is [GetStructuredConfig] plus the checks required by the
// host web server.
func GetServerConfig() (*StructuredConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg, cfg.validateServer()
}
