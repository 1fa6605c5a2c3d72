// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"

	"github.com/MKhiriev/go-payload-client/internal/logger"
	"github.com/MKhiriev/go-payload-client/models"
)

//go:generate mockgen -source=handler.go -destination=../../mock/document_reader_mock.go -package=mock

// DocumentReader is the read side of the CMS client served by [Handler].
type DocumentReader interface {
	Find(ctx context.Context, collection string, q models.Query) (models.FindResult, error)
	FindByID(ctx context.Context, collection, id string, depth int) (models.Document, error)
}

type Handler struct {
	reader DocumentReader

	logger *logger.Logger
}

func NewHandler(reader DocumentReader, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		reader: reader,
		logger: logger,
	}
}
