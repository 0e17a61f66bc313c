package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"novel-maker-api/internal/domain/entity"
	"novel-maker-api/pkg/errors"
	"novel-maker-api/pkg/logger"
	"novel-maker-api/pkg/metrics"
)

// ProjectStore 所有项目数据的唯一事实来源
// 生命周期：启动时从持久化快照水合，内存中变更，每次变更写穿存储。
// 所有针对不存在 ID 的变更操作都是静默 no-op，不返回错误。
type ProjectStore struct {
	mu   sync.RWMutex
	repo SnapshotRepository
	snap Snapshot
}

// New 创建项目存储
func New(repo SnapshotRepository) *ProjectStore {
	return &ProjectStore{
		repo: repo,
		snap: defaultSnapshot(),
	}
}

// Load 从持久化快照水合，无数据时初始化为空状态
// 存储版本落后时执行迁移链并立即回写迁移结果
func (s *ProjectStore) Load(ctx context.Context) error {
	data, version, found, err := s.repo.Load(ctx)
	if err != nil {
		return errors.Wrap(err, errors.CodeStorageError, "failed to load snapshot")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !found {
		s.snap = defaultSnapshot()
		return nil
	}

	migrated, changed, err := Migrate(data, version)
	if err != nil {
		return errors.Wrap(err, errors.CodeStorageError, "failed to migrate snapshot")
	}

	var snap Snapshot
	if err := json.Unmarshal(migrated, &snap); err != nil {
		return errors.Wrap(err, errors.CodeStorageError, "failed to decode snapshot")
	}
	for _, p := range snap.Projects {
		p.Normalize()
	}
	if snap.Projects == nil {
		snap.Projects = []*entity.Project{}
	}
	snap.Version = SchemaVersion
	s.snap = snap

	if changed {
		logger.Info(ctx, "snapshot migrated", "from_version", version, "to_version", SchemaVersion)
		s.persistLocked()
	}
	return nil
}

// Flush 显式落盘当前状态
func (s *ProjectStore) Flush(ctx context.Context) error {
	s.mu.RLock()
	data, err := json.Marshal(s.snap)
	s.mu.RUnlock()
	if err != nil {
		return errors.Wrap(err, errors.CodeStorageError, "failed to encode snapshot")
	}
	if err := s.repo.Save(ctx, SchemaVersion, data); err != nil {
		return errors.Wrap(err, errors.CodeStorageError, "failed to save snapshot")
	}
	return nil
}

// persistLocked 写穿持久化，调用方必须持有锁
// 每次变更后即发即忘：失败只记录日志与指标，不向调用方传播
func (s *ProjectStore) persistLocked() {
	data, err := json.Marshal(s.snap)
	if err != nil {
		metrics.SnapshotWriteTotal.WithLabelValues("error").Inc()
		logger.Error(context.Background(), "failed to encode snapshot", err)
		return
	}
	if err := s.repo.Save(context.Background(), SchemaVersion, data); err != nil {
		metrics.SnapshotWriteTotal.WithLabelValues("error").Inc()
		logger.Error(context.Background(), "failed to write snapshot", err)
		return
	}
	metrics.SnapshotWriteTotal.WithLabelValues("ok").Inc()
}

// bump 返回严格递增的更新时间
// 同一纳秒内的连续变更也保证 updatedAt 单调递增
func bump(prev time.Time) time.Time {
	now := time.Now()
	if !now.After(prev) {
		return prev.Add(time.Nanosecond)
	}
	return now
}

// findProject 按 ID 查找项目，调用方必须持有锁
func (s *ProjectStore) findProject(id string) *entity.Project {
	for _, p := range s.snap.Projects {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// CreateProject 创建项目并把它设为当前项目，返回新 ID
func (s *ProjectStore) CreateProject(draft entity.ProjectDraft) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	project := entity.NewProject(draft)
	s.snap.Projects = append(s.snap.Projects, project)
	s.snap.CurrentProjectID = project.ID
	s.persistLocked()
	return project.ID
}

// Projects 返回全部项目的拷贝
func (s *ProjectStore) Projects() []*entity.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Project, len(s.snap.Projects))
	for i, p := range s.snap.Projects {
		out[i] = p.Clone()
	}
	return out
}

// GetProject 返回单个项目的拷贝，未找到返回 nil
func (s *ProjectStore) GetProject(id string) *entity.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p := s.findProject(id)
	if p == nil {
		return nil
	}
	return p.Clone()
}

// UpdateProject 浅合并补丁到项目，未找到时静默 no-op
func (s *ProjectStore) UpdateProject(id string, patch entity.ProjectPatch) *entity.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProject(id)
	if p == nil {
		return nil
	}
	patch.Apply(p)
	p.UpdatedAt = bump(p.UpdatedAt)
	s.persistLocked()
	return p.Clone()
}

// DeleteProject 删除项目，当前指针指向它时一并清空
func (s *ProjectStore) DeleteProject(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.snap.Projects[:0]
	removed := false
	for _, p := range s.snap.Projects {
		if p.ID == id {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	if !removed {
		return
	}
	s.snap.Projects = kept
	if s.snap.CurrentProjectID == id {
		s.snap.CurrentProjectID = ""
	}
	s.persistLocked()
}

// SetCurrentProject 设置当前项目指针，空串表示无当前项目
func (s *ProjectStore) SetCurrentProject(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap.CurrentProjectID = id
	s.persistLocked()
}

// CurrentProject 返回当前项目的拷贝，未设置或已删除返回 nil
func (s *ProjectStore) CurrentProject() *entity.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snap.CurrentProjectID == "" {
		return nil
	}
	p := s.findProject(s.snap.CurrentProjectID)
	if p == nil {
		return nil
	}
	return p.Clone()
}

// SetGrokAPIKey 写入 API 凭证，不做格式校验
func (s *ProjectStore) SetGrokAPIKey(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap.GrokAPIKey = key
	s.persistLocked()
}

// GrokAPIKey 读取 API 凭证
func (s *ProjectStore) GrokAPIKey() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snap.GrokAPIKey
}

// ClearAllData 重置整个存储：项目、当前指针、凭证全部清空
func (s *ProjectStore) ClearAllData() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap = defaultSnapshot()
	s.persistLocked()
}
