// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"context"

	"github.com/MKhiriev/go-payload-client/internal/payload"
	"github.com/go-chi/chi/v5"
)

// InitOption overrides a field of the derived [payload.InitOptions]. Options
// only take effect for the call that starts an initialisation; callers that
// join an in-flight attempt or hit the cached client have theirs ignored.
type InitOption func(*payload.InitOptions)

// WithExpress embeds the client in the host router. Unless [WithLocal] says
// otherwise this selects non-local mode.
func WithExpress(router chi.Router) InitOption {
	return func(o *payload.InitOptions) {
		o.Express = router
	}
}

// WithLocal forces the mode regardless of the router.
func WithLocal(local bool) InitOption {
	return func(o *payload.InitOptions) {
		o.Local = payload.Bool(local)
	}
}

// WithSecret overrides the secret read from the environment.
func WithSecret(secret string) InitOption {
	return func(o *payload.InitOptions) {
		o.Secret = secret
	}
}

// WithServerURL overrides the configured CMS URL.
func WithServerURL(url string) InitOption {
	return func(o *payload.InitOptions) {
		o.ServerURL = url
	}
}

// WithRoutePrefix sets where routes are mounted in embedded mode.
func WithRoutePrefix(prefix string) InitOption {
	return func(o *payload.InitOptions) {
		o.RoutePrefix = prefix
	}
}

// WithOnInit registers a hook run once after a successful initialisation.
func WithOnInit(fn func(ctx context.Context, client *payload.Client) error) InitOption {
	return func(o *payload.InitOptions) {
		o.OnInit = fn
	}
}

// WithInitOptions merges a whole [payload.InitOptions] value; its non-zero
// fields win over the derived defaults.
func WithInitOptions(opts payload.InitOptions) InitOption {
	return func(o *payload.InitOptions) {
		if opts.Secret != "" {
			o.Secret = opts.Secret
		}
		if opts.Local != nil {
			o.Local = opts.Local
		}
		if opts.Express != nil {
			o.Express = opts.Express
		}
		if opts.ServerURL != "" {
			o.ServerURL = opts.ServerURL
		}
		if opts.RoutePrefix != "" {
			o.RoutePrefix = opts.RoutePrefix
		}
		if opts.OnInit != nil {
			o.OnInit = opts.OnInit
		}
	}
}

// buildInitOptions derives the defaults {Secret, Local} and applies the
// caller's overrides on top. Local is derived from the router after all
// overrides ran, unless one of them set it explicitly.
func buildInitOptions(secret string, opts []InitOption) payload.InitOptions {
	var caller payload.InitOptions
	for _, opt := range opts {
		opt(&caller)
	}

	merged := payload.InitOptions{
		Secret: secret,
		Local:  payload.Bool(caller.Express == nil),
	}
	WithInitOptions(caller)(&merged)

	return merged
}
