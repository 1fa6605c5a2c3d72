// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport to the Payload CMS REST API.
//
// The primary abstraction is [CMSAdapter], which decouples the client handle
// from the wire protocol. Requests are authenticated with a short-lived JWT
// signed with the CMS secret and sent as "Authorization: JWT <token>".
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-payload-client/models"
)

// CMSAdapter defines communication with a Payload CMS instance.
// Implementations are responsible for serialisation, authentication
// and mapping transport-level errors to the sentinel values defined in this
// package.
type CMSAdapter interface {
	// Handshake checks that the CMS is reachable and accepts the secret by
	// fetching the access summary. Transient failures (transport errors, 5xx
	// and 429) are retried with exponential backoff; any other status fails
	// immediately. Returned errors wrap [ErrHandshakeFailed].
	Handshake(ctx context.Context) (models.AccessInfo, error)

	// Find lists documents of collection matching q.
	Find(ctx context.Context, collection string, q models.Query) (models.FindResult, error)

	// FindByID fetches a single document. depth controls relationship
	// population; zero leaves the CMS default.
	FindByID(ctx context.Context, collection, id string, depth int) (models.Document, error)

	// Create inserts doc into collection and returns the stored document.
	Create(ctx context.Context, collection string, doc models.Document) (models.Document, error)

	// Update applies patch to the document and returns the updated document.
	Update(ctx context.Context, collection, id string, patch models.Document) (models.Document, error)

	// Delete removes the document and returns its last state.
	Delete(ctx context.Context, collection, id string) (models.Document, error)
}
