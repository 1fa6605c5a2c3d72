// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the routes the CMS client mounts on a host web
// server when it runs embedded.
//
// Collection reads are served under a configurable prefix (default "/api")
// and delegated to a [DocumentReader]. Request tracing, access logging and
// response compression are handled here before requests reach the CMS
// adapter. [Health] and [Version] are standalone handlers for the host.
package http
