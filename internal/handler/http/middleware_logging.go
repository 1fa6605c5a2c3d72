// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-payload-client/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := h.requestLogger(r)

		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		event := log.Info()
		if lw.status >= http.StatusInternalServerError {
			event = log.Warn()
		}
		event.
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Str("collection", chi.URLParam(r, "collection")).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}

// requestLogger returns the request-scoped logger, or the handler's own when
// no logger was attached to the request context.
func (h *Handler) requestLogger(r *http.Request) *logger.Logger {
	l := zerolog.Ctx(r.Context())
	if l == zerolog.DefaultContextLogger || l.GetLevel() == zerolog.Disabled {
		return h.logger
	}
	return logger.FromRequest(r)
}
