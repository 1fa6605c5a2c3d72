// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the PAYLOAD_*, SERVER_* and SECRETS_* variables together
// with CONFIG and DOTENV_PATH. Unset variables stay zero so that flags, the
// JSON file and defaults can fill them. PAYLOAD_SECRET is not read here.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("parse environment config: %w", err)
	}

	return &cfg, nil
}
