// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoHTTPAddress is returned by NewServer when the listen address is empty.
var errNoHTTPAddress = errors.New("no http address configured")
