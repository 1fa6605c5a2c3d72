// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package secrets resolves the CMS secret.
//
// The secret lives in the process environment and is read on every lookup
// through a [Source]. At startup [ExportFromAWS] can seed the environment from
// AWS Secrets Manager; an already exported value always wins.
package secrets

import (
	"os"

	"github.com/MKhiriev/go-payload-client/internal/config"
)

// Source yields the current CMS secret, or an empty string when none is set.
type Source interface {
	Secret() string
}

// EnvSource reads the secret from an environment variable on every call.
type EnvSource struct {
	Key string
}

// NewEnvSource returns an [EnvSource] for PAYLOAD_SECRET.
func NewEnvSource() EnvSource {
	return EnvSource{Key: config.SecretEnvKey}
}

func (s EnvSource) Secret() string {
	return os.Getenv(s.Key)
}

// StaticSource always returns the same secret.
type StaticSource string

func (s StaticSource) Secret() string {
	return string(s)
}
