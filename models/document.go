// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"
)

// Document is a single CMS document as returned by the REST API. The schema
// is owned by the CMS collection config, so fields are kept untyped.
type Document map[string]any

// ID returns the document identifier as a string. Numeric ids (SQL adapters)
// and string ids (MongoDB adapter) are both supported. An empty string is
// returned when the document has no id.
func (d Document) ID() string {
	switch id := d["id"].(type) {
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(id)
	}
}

// FindResult is the paginated envelope returned by collection find requests.
type FindResult struct {
	Docs          []Document `json:"docs"`
	TotalDocs     int        `json:"totalDocs"`
	Limit         int        `json:"limit"`
	Page          int        `json:"page"`
	TotalPages    int        `json:"totalPages"`
	PagingCounter int        `json:"pagingCounter"`
	HasNextPage   bool       `json:"hasNextPage"`
	HasPrevPage   bool       `json:"hasPrevPage"`
	NextPage      *int       `json:"nextPage"`
	PrevPage      *int       `json:"prevPage"`
}

// MutationResult is the envelope returned by create, update and delete
// requests.
type MutationResult struct {
	Doc     Document `json:"doc"`
	Message string   `json:"message,omitempty"`
}
