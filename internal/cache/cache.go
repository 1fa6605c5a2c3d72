// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/MKhiriev/go-payload-client/internal/logger"
	"github.com/MKhiriev/go-payload-client/internal/payload"
	"github.com/MKhiriev/go-payload-client/internal/secrets"
	"golang.org/x/sync/singleflight"
)

// State is the lifecycle stage of a [ClientCache].
type State int32

const (
	StateEmpty State = iota
	StateInitializing
	StateReady
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateInitializing:
		return "initializing"
	case StateReady:
		return "ready"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// initKey is the single-flight slot shared by all initialisation attempts.
const initKey = "payload-client"

// ClientCache lazily initialises and memoises the CMS client. The zero value
// is not usable; construct it with [New].
type ClientCache struct {
	init    payload.Initializer
	secrets secrets.Source

	client   atomic.Pointer[payload.Client]
	inflight atomic.Bool
	waiters  atomic.Int32
	group    singleflight.Group

	logger *logger.Logger
}

// New returns an empty cache. init performs the actual initialisation;
// source is consulted for the secret on every [ClientCache.Get].
func New(init payload.Initializer, source secrets.Source, logger *logger.Logger) *ClientCache {
	return &ClientCache{
		init:    init,
		secrets: source,
		logger:  logger.WithComponent("client-cache"),
	}
}

// Get returns the shared CMS client, initialising it on first use.
//
// The secret is checked first on every call; without it Get fails with
// [ErrSecretMissing] and leaves the cache untouched. A cached client is
// returned immediately. Otherwise the caller either starts the single
// initialisation attempt or waits for the one already running. A failed
// attempt is reported to all of its waiters wrapped in [ErrInitFailed] and
// the next call retries.
//
// Cancelling ctx stops this caller's wait and returns ctx.Err(); the attempt
// itself keeps running for the other waiters.
func (c *ClientCache) Get(ctx context.Context, opts ...InitOption) (*payload.Client, error) {
	secret := c.secrets.Secret()
	if secret == "" {
		return nil, ErrSecretMissing
	}

	if client := c.client.Load(); client != nil {
		return client, nil
	}

	initOpts := buildInitOptions(secret, opts)
	ch := c.group.DoChan(initKey, func() (any, error) {
		return c.initialize(context.WithoutCancel(ctx), initOpts)
	})
	c.waiters.Add(1)
	defer c.waiters.Add(-1)

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*payload.Client), nil
	}
}

func (c *ClientCache) initialize(ctx context.Context, opts payload.InitOptions) (*payload.Client, error) {
	// A caller may have raced past the cached check while the previous
	// attempt was publishing its result.
	if client := c.client.Load(); client != nil {
		return client, nil
	}

	c.inflight.Store(true)
	defer c.inflight.Store(false)

	c.logger.Info().Bool("local", opts.IsLocal()).Msg("initializing cms client")

	client, err := c.init.Init(ctx, opts)
	if err == nil && client == nil {
		err = ErrNilClient
	}
	if err != nil {
		c.logger.Err(err).Msg("cms client initialization failed")
		return nil, fmt.Errorf("%w: %w", ErrInitFailed, err)
	}

	c.client.Store(client)
	c.logger.Info().Msg("cms client cached")
	return client, nil
}

// Client returns the cached client without initialising, or nil.
func (c *ClientCache) Client() *payload.Client {
	return c.client.Load()
}

// State reports the current lifecycle stage.
func (c *ClientCache) State() State {
	switch {
	case c.client.Load() != nil:
		return StateReady
	case c.inflight.Load():
		return StateInitializing
	default:
		return StateEmpty
	}
}
