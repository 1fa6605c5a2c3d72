// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-payload-client/internal/app"
	"github.com/MKhiriev/go-payload-client/internal/utils"
)

// StateFunc reports the CMS client state ("empty", "initializing", "ready").
type StateFunc func() string

// StateReady is the state [Health] treats as healthy.
const StateReady = "ready"

type healthResponse struct {
	Status string `json:"status"`
	CMS    string `json:"cms"`
}

// Health reports 200 when the CMS client is ready and 503 otherwise.
func Health(state StateFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current := state()
		if current != StateReady {
			_, _ = utils.WriteJSON(w, healthResponse{Status: app.MsgStatusUnavailable, CMS: current}, http.StatusServiceUnavailable)
			return
		}
		_, _ = utils.WriteJSON(w, healthResponse{Status: app.MsgStatusOK, CMS: current}, http.StatusOK)
	}
}
