// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// embedded CMS routes and the probe endpoints.
//
// All Msg* constants are human-readable strings written into HTTP response
// bodies. Keeping them in one place keeps the wording consistent.
package app

const (
	// MsgInternalServerError replaces the details of unexpected failures.
	MsgInternalServerError = "internal server error"

	// MsgStatusOK is the health status reported when the CMS client is ready.
	MsgStatusOK = "ok"

	// MsgStatusUnavailable is the health status reported while the CMS
	// client is not ready.
	MsgStatusUnavailable = "unavailable"
)
