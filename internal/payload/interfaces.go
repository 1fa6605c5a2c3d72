// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package payload is the initialisation boundary of the CMS client.
//
// [Initializer.Init] turns [InitOptions] into a ready [Client]: it validates
// the options, connects the REST adapter, performs the handshake, runs the
// caller's OnInit hook and, when embedded in a host web server, mounts the
// collection read routes on the host router.
package payload

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/initializer_mock.go -package=mock

// Initializer produces a ready CMS client. Every call performs a full
// initialisation; callers that need a shared client cache the result.
type Initializer interface {
	Init(ctx context.Context, opts InitOptions) (*Client, error)
}
