// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"sort"
)

// AccessInfo is the permission summary returned by the CMS access endpoint.
// It doubles as the handshake result proving that the CMS is reachable and
// that the secret is accepted.
type AccessInfo struct {
	CanAccessAdmin bool                       `json:"canAccessAdmin"`
	Collections    map[string]json.RawMessage `json:"collections"`
	Globals        map[string]json.RawMessage `json:"globals"`
}

// CollectionNames returns the collection slugs in sorted order.
func (a AccessInfo) CollectionNames() []string {
	names := make([]string, 0, len(a.Collections))
	for name := range a.Collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
