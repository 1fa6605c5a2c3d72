// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the standalone command-line client.
//
// It initializes the CMS client in local mode through the shared cache and
// prints collection documents as JSON.
package client
