package store

import "novel-maker-api/internal/domain/entity"

// AddMemo 向项目追加备忘，项目不存在时静默 no-op
func (s *ProjectStore) AddMemo(projectID string, draft entity.MemoDraft) *entity.Memo {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProject(projectID)
	if p == nil {
		return nil
	}
	m := entity.NewMemo(draft)
	p.Memos = append(p.Memos, m)
	p.UpdatedAt = bump(p.UpdatedAt)
	s.persistLocked()
	clone := *m
	return &clone
}

// UpdateMemo 浅合并补丁到备忘，项目或备忘不存在时静默 no-op
func (s *ProjectStore) UpdateMemo(projectID, memoID string, patch entity.MemoPatch) *entity.Memo {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProject(projectID)
	if p == nil {
		return nil
	}
	var target *entity.Memo
	for _, m := range p.Memos {
		if m.ID == memoID {
			target = m
			break
		}
	}
	if target == nil {
		return nil
	}
	patch.Apply(target)
	target.UpdatedAt = bump(target.UpdatedAt)
	p.UpdatedAt = bump(p.UpdatedAt)
	s.persistLocked()
	clone := *target
	return &clone
}

// DeleteMemo 删除备忘，不存在时静默 no-op
func (s *ProjectStore) DeleteMemo(projectID, memoID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProject(projectID)
	if p == nil {
		return
	}
	kept := p.Memos[:0]
	removed := false
	for _, m := range p.Memos {
		if m.ID == memoID {
			removed = true
			continue
		}
		kept = append(kept, m)
	}
	if !removed {
		return
	}
	p.Memos = kept
	p.UpdatedAt = bump(p.UpdatedAt)
	s.persistLocked()
}
