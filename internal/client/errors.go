// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

// ErrUsage is returned when the command line does not name a collection or
// carries malformed arguments.
var ErrUsage = errors.New("usage: client <collection> [id] [key=value ...]")
