// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the host HTTP server.
//
// It provides startup, signal handling and graceful shutdown of the router
// that carries the embedded CMS routes.
package server
