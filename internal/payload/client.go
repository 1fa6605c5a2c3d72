// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package payload

import (
	"context"

	"github.com/MKhiriev/go-payload-client/internal/adapter"
	"github.com/MKhiriev/go-payload-client/models"
)

// Client is the handle to an initialised CMS. It is safe for concurrent use
// and never changes after initialisation.
type Client struct {
	cms         adapter.CMSAdapter
	access      models.AccessInfo
	local       bool
	routePrefix string
}

// NewClient wraps an already connected adapter.
func NewClient(cms adapter.CMSAdapter, access models.AccessInfo, local bool) *Client {
	return &Client{cms: cms, access: access, local: local}
}

// Local reports whether the client runs standalone.
func (c *Client) Local() bool {
	return c.local
}

// Access returns the permission summary captured during the handshake.
func (c *Client) Access() models.AccessInfo {
	return c.access
}

// RoutePrefix returns where the routes were mounted on the host router, or
// an empty string in local mode.
func (c *Client) RoutePrefix() string {
	return c.routePrefix
}

func (c *Client) Find(ctx context.Context, collection string, q models.Query) (models.FindResult, error) {
	return c.cms.Find(ctx, collection, q)
}

func (c *Client) FindByID(ctx context.Context, collection, id string, depth int) (models.Document, error) {
	return c.cms.FindByID(ctx, collection, id, depth)
}

func (c *Client) Create(ctx context.Context, collection string, doc models.Document) (models.Document, error) {
	return c.cms.Create(ctx, collection, doc)
}

func (c *Client) Update(ctx context.Context, collection, id string, patch models.Document) (models.Document, error) {
	return c.cms.Update(ctx, collection, id, patch)
}

func (c *Client) Delete(ctx context.Context, collection, id string) (models.Document, error) {
	return c.cms.Delete(ctx, collection, id)
}
