// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidQuery is returned by [ParseQuery] for malformed numeric params.
var ErrInvalidQuery = errors.New("invalid query")

// Query narrows a collection find request. Zero values are omitted so the CMS
// applies its own defaults.
type Query struct {
	Limit int
	Page  int
	Depth int
	Sort  string

	// Where holds equality filters keyed by field name. Each entry is sent as
	// where[<field>][equals]=<value>.
	Where map[string]string
}

// Params encodes q into the query string format understood by the CMS.
func (q Query) Params() url.Values {
	values := url.Values{}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.Depth > 0 {
		values.Set("depth", strconv.Itoa(q.Depth))
	}
	if q.Sort != "" {
		values.Set("sort", q.Sort)
	}

	fields := make([]string, 0, len(q.Where))
	for field := range q.Where {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		values.Set("where["+field+"][equals]", q.Where[field])
	}

	return values
}

// ParseQuery is the inverse of [Query.Params]. Both where[<field>] and
// where[<field>][equals] are accepted; other operators are ignored.
func ParseQuery(values url.Values) (Query, error) {
	var q Query
	var err error

	if q.Limit, err = parseNonNegative(values.Get("limit")); err != nil {
		return Query{}, err
	}
	if q.Page, err = parseNonNegative(values.Get("page")); err != nil {
		return Query{}, err
	}
	if q.Depth, err = parseNonNegative(values.Get("depth")); err != nil {
		return Query{}, err
	}
	q.Sort = values.Get("sort")

	for key := range values {
		field, ok := whereField(key)
		if !ok {
			continue
		}
		if q.Where == nil {
			q.Where = make(map[string]string)
		}
		q.Where[field] = values.Get(key)
	}

	return q, nil
}

func parseNonNegative(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, ErrInvalidQuery
	}
	return n, nil
}

func whereField(key string) (string, bool) {
	rest, ok := strings.CutPrefix(key, "where[")
	if !ok {
		return "", false
	}
	field, op, ok := strings.Cut(rest, "]")
	if !ok || field == "" {
		return "", false
	}
	if op != "" && op != "[equals]" {
		return "", false
	}
	return field, true
}
