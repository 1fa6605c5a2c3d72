// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package payload

import (
	"context"

	"github.com/go-chi/chi/v5"
)

// InitOptions configures a single initialisation.
type InitOptions struct {
	// Secret signs the tokens sent to the CMS. Required.
	Secret string

	// Local selects standalone mode. When nil it is derived from Express:
	// no host router means local.
	Local *bool

	// Express is the host web server router. Its presence means the client
	// runs embedded and mounts its routes on it.
	Express chi.Router

	// ServerURL overrides the configured CMS URL.
	ServerURL string

	// RoutePrefix is where the routes are mounted on Express. Defaults to
	// "/api".
	RoutePrefix string

	// OnInit runs once after a successful handshake. An error fails the
	// initialisation.
	OnInit func(ctx context.Context, client *Client) error
}

// IsLocal reports the effective mode.
func (o InitOptions) IsLocal() bool {
	if o.Local != nil {
		return *o.Local
	}
	return o.Express == nil
}

// Bool returns a pointer to v, for [InitOptions.Local].
func Bool(v bool) *bool {
	return &v
}
