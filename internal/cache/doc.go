// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cache holds the process-wide CMS client.
//
// A [ClientCache] is created once at startup and passed explicitly to every
// component that needs the CMS. [ClientCache.Get] initialises the client
// lazily on first use, lets concurrent callers share a single in-flight
// initialisation and returns the same [payload.Client] to every caller once
// it succeeds. Failures are not cached: the next call starts a new attempt.
//
// State transitions:
//
//	Empty -> Initializing -> Ready
//	Initializing -> Empty   (attempt failed)
package cache
