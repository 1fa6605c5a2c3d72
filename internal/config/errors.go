// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidCMSConfigs indicates invalid CMS settings (for example, a
	// missing or unparsable URL, or negative retry counts).
	ErrInvalidCMSConfigs = errors.New("invalid cms configuration")

	// ErrInvalidServerConfigs indicates invalid host server settings
	// (for example, a missing HTTP address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
