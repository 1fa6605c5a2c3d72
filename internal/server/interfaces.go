// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the host server.
type Server interface {
	// Run serves requests until ctx is cancelled or a termination signal
	// arrives, then shuts down gracefully. It returns nil after a clean
	// shutdown.
	Run(ctx context.Context) error

	// RunServer is Run with a background context; errors are logged.
	RunServer()
}
