// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_ID(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		want string
	}{
		{name: "string id", doc: Document{"id": "65f0c1"}, want: "65f0c1"},
		{name: "numeric id", doc: Document{"id": float64(42)}, want: "42"},
		{name: "missing id", doc: Document{"title": "x"}, want: ""},
		{name: "other type", doc: Document{"id": true}, want: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.doc.ID())
		})
	}
}

func TestFindResult_Decode(t *testing.T) {
	body := `{
		"docs": [{"id": 1, "title": "first"}],
		"totalDocs": 1, "limit": 10, "page": 1, "totalPages": 1,
		"pagingCounter": 1, "hasNextPage": false, "hasPrevPage": false,
		"nextPage": null, "prevPage": null
	}`

	var res FindResult
	require.NoError(t, json.Unmarshal([]byte(body), &res))

	require.Len(t, res.Docs, 1)
	assert.Equal(t, "1", res.Docs[0].ID())
	assert.Equal(t, 1, res.TotalDocs)
	assert.Nil(t, res.NextPage)
}

func TestAccessInfo_CollectionNames(t *testing.T) {
	var info AccessInfo
	require.NoError(t, json.Unmarshal([]byte(`{
		"canAccessAdmin": true,
		"collections": {"users": {}, "media": {}, "posts": {}}
	}`), &info))

	assert.True(t, info.CanAccessAdmin)
	assert.Equal(t, []string{"media", "posts", "users"}, info.CollectionNames())
}

func TestNewAppBuildInfoOrNA(t *testing.T) {
	info := NewAppBuildInfoOrNA("1.2.0", "", "")

	assert.Equal(t, "1.2.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}
