// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-payload-client/models"
)

// Version serves the build metadata as plain text.
func Version(info models.AppBuildInfo) http.HandlerFunc {
	body := fmt.Sprintf("version=%s date=%s commit=%s", info.BuildVersion(), info.BuildDate(), info.BuildCommit())
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(body))
	}
}
