package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SchemaVersion 当前持久化快照的 schema 版本
const SchemaVersion = 2

// migration 单个版本跨度的纯变换，输入为解码后的快照对象
type migration func(map[string]any) map[string]any

// migrations 按源版本号索引的迁移链
var migrations = map[int]migration{
	1: migrateProjectCollections,
}

// Migrate 将持久化快照从 fromVersion 升级到当前版本
// 返回值 changed 表示是否发生了迁移；已是当前版本时原样返回
func Migrate(data []byte, fromVersion int) (out []byte, changed bool, err error) {
	if fromVersion >= SchemaVersion {
		return data, false, nil
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, false, fmt.Errorf("failed to decode snapshot for migration: %w", err)
	}

	for v := fromVersion; v < SchemaVersion; v++ {
		if fn, ok := migrations[v]; ok {
			raw = fn(raw)
		}
	}
	raw["version"] = SchemaVersion

	out, err = json.Marshal(raw)
	if err != nil {
		return nil, false, fmt.Errorf("failed to encode migrated snapshot: %w", err)
	}
	return out, true, nil
}

// migrateProjectCollections v1 -> v2
// 补齐历史上可缺失的集合字段为空数组，并把旧的单一 memo 文本
// 转换为一条 memos 记录。memos 已是数组时不再转换，保证幂等。
func migrateProjectCollections(raw map[string]any) map[string]any {
	projects, ok := raw["projects"].([]any)
	if !ok {
		return raw
	}

	for i, p := range projects {
		proj, ok := p.(map[string]any)
		if !ok {
			continue
		}

		for _, key := range []string{"worldSettings", "terms", "events", "items"} {
			if _, ok := proj[key].([]any); !ok {
				proj[key] = []any{}
			}
		}

		if _, ok := proj["memos"].([]any); !ok {
			if legacy, ok := proj["memo"].(string); ok && legacy != "" {
				now := time.Now().UTC().Format(time.RFC3339Nano)
				proj["memos"] = []any{map[string]any{
					"id":        uuid.New().String(),
					"title":     "",
					"content":   legacy,
					"createdAt": now,
					"updatedAt": now,
				}}
			} else {
				proj["memos"] = []any{}
			}
		}
		delete(proj, "memo")

		projects[i] = proj
	}

	raw["projects"] = projects
	return raw
}
