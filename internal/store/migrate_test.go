package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateCurrentVersionUntouched(t *testing.T) {
	data := []byte(`{"version":2,"projects":[]}`)

	out, changed, err := Migrate(data, SchemaVersion)

	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, data, out)
}

func TestMigrateLegacyMemoString(t *testing.T) {
	data := []byte(`{
		"version": 1,
		"projects": [{
			"id": "p1",
			"title": "작품",
			"memo": "옛날 단일 메모"
		}]
	}`)

	out, changed, err := Migrate(data, 1)
	require.NoError(t, err)
	assert.True(t, changed)

	var snap map[string]any
	require.NoError(t, json.Unmarshal(out, &snap))
	assert.Equal(t, float64(SchemaVersion), snap["version"])

	proj := snap["projects"].([]any)[0].(map[string]any)
	_, hasLegacy := proj["memo"]
	assert.False(t, hasLegacy, "legacy memo field must be removed")

	memos, ok := proj["memos"].([]any)
	require.True(t, ok)
	require.Len(t, memos, 1)
	memo := memos[0].(map[string]any)
	assert.Equal(t, "옛날 단일 메모", memo["content"])
	assert.NotEmpty(t, memo["id"])
}

func TestMigrateFillsMissingCollections(t *testing.T) {
	data := []byte(`{"version":1,"projects":[{"id":"p1","title":"작품"}]}`)

	out, changed, err := Migrate(data, 1)
	require.NoError(t, err)
	assert.True(t, changed)

	var snap map[string]any
	require.NoError(t, json.Unmarshal(out, &snap))
	proj := snap["projects"].([]any)[0].(map[string]any)

	for _, key := range []string{"worldSettings", "terms", "events", "items", "memos"} {
		list, ok := proj[key].([]any)
		assert.True(t, ok, "collection %s must exist", key)
		assert.Empty(t, list)
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	data := []byte(`{"version":1,"projects":[{"id":"p1","memo":"메모"}]}`)

	once, _, err := Migrate(data, 1)
	require.NoError(t, err)

	// 再跑一遍迁移函数不得把 memos 数组再包一层
	twice, _, err := Migrate(once, 1)
	require.NoError(t, err)

	var a, b map[string]any
	require.NoError(t, json.Unmarshal(once, &a))
	require.NoError(t, json.Unmarshal(twice, &b))

	memosA := a["projects"].([]any)[0].(map[string]any)["memos"].([]any)
	memosB := b["projects"].([]any)[0].(map[string]any)["memos"].([]any)
	require.Len(t, memosB, len(memosA))
	assert.Equal(t,
		memosA[0].(map[string]any)["content"],
		memosB[0].(map[string]any)["content"])
}

func TestMigrateStoreLoadWritesBack(t *testing.T) {
	repo := &memRepo{
		data:    []byte(`{"version":1,"projects":[{"id":"p1","title":"작품","memo":"메모"}],"currentProjectId":"p1"}`),
		version: 1,
		found:   true,
	}

	s := New(repo)
	require.NoError(t, s.Load(t.Context()))

	p := s.GetProject("p1")
	require.NotNil(t, p)
	require.Len(t, p.Memos, 1)
	assert.Equal(t, "메모", p.Memos[0].Content)

	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.Equal(t, SchemaVersion, repo.version, "migrated snapshot must be written back")
	assert.Equal(t, 1, repo.saves)
}
