package store

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"novel-maker-api/internal/domain/entity"
	"novel-maker-api/pkg/errors"
)

// ExportProject 导出单个项目为带缩进的 JSON，未找到时 ok 为 false
func (s *ProjectStore) ExportProject(id string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p := s.findProject(id)
	if p == nil {
		return nil, false
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, false
	}
	return data, true
}

// ImportProject 从导出文件导入项目，返回新分配的项目 ID
// 导入的项目总是拿到新 ID，避免与现有项目冲突；createdAt 保留原值，
// updatedAt 设为当前时间。解析失败时存储状态不发生任何变化。
func (s *ProjectStore) ImportProject(data []byte) (string, error) {
	var p entity.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return "", errors.ErrImportParse.WithError(err)
	}

	p.ID = uuid.New().String()
	p.Normalize()
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap.Projects = append(s.snap.Projects, &p)
	s.persistLocked()
	return p.ID, nil
}
