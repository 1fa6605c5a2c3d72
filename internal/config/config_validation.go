// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

// applyDefaults fills the tuning knobs that were not set by any source.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.CMS.RequestTimeout == 0 {
		cfg.CMS.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.CMS.InitRetries == 0 {
		cfg.CMS.InitRetries = DefaultInitRetries
	}
	if cfg.CMS.InitRetryInterval == 0 {
		cfg.CMS.InitRetryInterval = DefaultInitRetryInterval
	}
	if cfg.CMS.TokenTTL == 0 {
		cfg.CMS.TokenTTL = DefaultTokenTTL
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return cfg.CMS.validate()
}

func (cfg CMS) validate() error {
	raw := strings.TrimSpace(cfg.URL)
	if raw == "" {
		return ErrInvalidCMSConfigs
	}
	if u, err := url.Parse(raw); err != nil || u.Host == "" {
		return ErrInvalidCMSConfigs
	}
	if cfg.RequestTimeout < 0 || cfg.TokenTTL < 0 {
		return ErrInvalidCMSConfigs
	}
	return nil
}

func (cfg *StructuredConfig) validateServer() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}
	return nil
}
