// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-payload-client/internal/app"
	"github.com/MKhiriev/go-payload-client/internal/utils"
	"github.com/MKhiriev/go-payload-client/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) find(w http.ResponseWriter, r *http.Request) {
	log := h.requestLogger(r)
	collection := chi.URLParam(r, "collection")

	q, err := models.ParseQuery(r.URL.Query())
	if err != nil {
		log.Warn().Err(err).Msg("invalid find query")
		h.writeError(w, err)
		return
	}

	result, err := h.reader.Find(r.Context(), collection, q)
	if err != nil {
		log.Err(err).Str("collection", collection).Msg("find failed")
		h.writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) findByID(w http.ResponseWriter, r *http.Request) {
	log := h.requestLogger(r)
	collection := chi.URLParam(r, "collection")
	id := chi.URLParam(r, "id")

	var depth int
	if raw := r.URL.Query().Get("depth"); raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil || d < 0 {
			h.writeError(w, models.ErrInvalidQuery)
			return
		}
		depth = d
	}

	doc, err := h.reader.FindByID(r.Context(), collection, id, depth)
	if err != nil {
		log.Err(err).Str("collection", collection).Str("id", id).Msg("find by id failed")
		h.writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, doc, http.StatusOK)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = app.MsgInternalServerError
	}
	utils.WriteError(w, message, status)
}
