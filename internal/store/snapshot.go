// Package store 提供项目数据的进程内状态容器与写穿持久化
package store

import (
	"context"

	"novel-maker-api/internal/domain/entity"
)

// Snapshot 持久化快照布局
// 单一版本化 JSON 数据块，字段命名与导出文件保持一致
type Snapshot struct {
	Version          int               `json:"version"`
	Projects         []*entity.Project `json:"projects"`
	CurrentProjectID string            `json:"currentProjectId,omitempty"`
	GrokAPIKey       string            `json:"grokApiKey,omitempty"`
}

// defaultSnapshot 返回空的当前版本快照
func defaultSnapshot() Snapshot {
	return Snapshot{
		Version:  SchemaVersion,
		Projects: []*entity.Project{},
	}
}

// SnapshotRepository 快照存取接口
// found 为 false 表示尚无持久化数据（首次启动）
type SnapshotRepository interface {
	Load(ctx context.Context) (data []byte, version int, found bool, err error)
	Save(ctx context.Context, version int, data []byte) error
}
