// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package payload

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-payload-client/internal/adapter"
	"github.com/MKhiriev/go-payload-client/internal/config"
	handler "github.com/MKhiriev/go-payload-client/internal/handler/http"
	"github.com/MKhiriev/go-payload-client/internal/logger"
)

type initializer struct {
	cfg        config.CMS
	newAdapter func(cfg config.CMS, secret string, logger *logger.Logger) (adapter.CMSAdapter, error)

	logger *logger.Logger
}

// NewInitializer returns an [Initializer] that reaches the CMS described by
// cfg over its REST API.
func NewInitializer(cfg config.CMS, logger *logger.Logger) Initializer {
	return &initializer{
		cfg:        cfg,
		newAdapter: adapter.NewHTTPCMSAdapter,
		logger:     logger.WithComponent("payload"),
	}
}

func (i *initializer) Init(ctx context.Context, opts InitOptions) (*Client, error) {
	local := opts.IsLocal()
	if opts.Secret == "" {
		return nil, ErrSecretRequired
	}
	if !local && opts.Express == nil {
		return nil, ErrRouterRequired
	}

	cfg := i.cfg
	if opts.ServerURL != "" {
		cfg.URL = opts.ServerURL
	}

	i.logger.Info().Str("url", cfg.URL).Bool("local", local).Msg("initializing cms client")

	cms, err := i.newAdapter(cfg, opts.Secret, i.logger)
	if err != nil {
		return nil, fmt.Errorf("create cms adapter: %w", err)
	}

	access, err := cms.Handshake(ctx)
	if err != nil {
		return nil, err
	}

	client := NewClient(cms, access, local)

	if opts.OnInit != nil {
		if err = opts.OnInit(ctx, client); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrOnInit, err)
		}
	}

	if !local {
		prefix := handler.NewHandler(client, i.logger).Mount(opts.Express, opts.RoutePrefix)
		client.routePrefix = prefix
	}

	i.logger.Info().Bool("local", local).Msg("cms client initialized")
	return client, nil
}
