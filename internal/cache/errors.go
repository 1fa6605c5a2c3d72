// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import "errors"

var (
	// ErrSecretMissing is a configuration error: PAYLOAD_SECRET is not set.
	// It is returned before any state is touched.
	ErrSecretMissing = errors.New("PAYLOAD_SECRET is missing")

	// ErrInitFailed wraps the cause of a failed initialisation attempt.
	ErrInitFailed = errors.New("cms client initialization failed")

	// ErrNilClient is the cause reported when the initializer returns
	// neither a client nor an error.
	ErrNilClient = errors.New("initializer returned nil client")
)
