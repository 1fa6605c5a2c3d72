// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// DefaultRoutePrefix is where the collection routes are mounted when no
// prefix is given.
const DefaultRoutePrefix = "/api"

// Init builds the collection router:
//
//	GET /{collection}       find documents (limit, page, depth, sort, where[field])
//	GET /{collection}/{id}  find a document by id (depth)
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5, "application/json"))

	router.Get("/{collection}", h.find)
	router.Get("/{collection}/{id}", h.findByID)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// Mount attaches [Handler.Init] to router under prefix. An empty prefix
// selects [DefaultRoutePrefix].
func (h *Handler) Mount(router chi.Router, prefix string) string {
	prefix = normalizePrefix(prefix)
	router.Mount(prefix, h.Init())
	h.logger.Info().Str("prefix", prefix).Msg("cms routes mounted")
	return prefix
}

func normalizePrefix(prefix string) string {
	prefix = strings.TrimRight(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return DefaultRoutePrefix
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	return prefix
}
