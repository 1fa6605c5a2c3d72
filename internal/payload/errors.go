// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package payload

import "errors"

var (
	ErrSecretRequired = errors.New("cms secret is required")
	ErrRouterRequired = errors.New("non-local mode requires a host router")
	ErrOnInit         = errors.New("on init hook failed")
)
