package store

import "novel-maker-api/internal/domain/entity"

// AddTerm 向项目追加用语，项目不存在时静默 no-op
func (s *ProjectStore) AddTerm(projectID string, draft entity.TermDraft) *entity.Term {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProject(projectID)
	if p == nil {
		return nil
	}
	t := entity.NewTerm(draft)
	p.Terms = append(p.Terms, t)
	p.UpdatedAt = bump(p.UpdatedAt)
	s.persistLocked()
	return t.Clone()
}

// UpdateTerm 浅合并补丁到用语，项目或用语不存在时静默 no-op
func (s *ProjectStore) UpdateTerm(projectID, termID string, patch entity.TermPatch) *entity.Term {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProject(projectID)
	if p == nil {
		return nil
	}
	var target *entity.Term
	for _, t := range p.Terms {
		if t.ID == termID {
			target = t
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
	return target.Clone()
}

// DeleteTerm 删除用语，不存在时静默 no-op
// 其他用语的 relatedTerms 是词面值引用，不做清理
func (s *ProjectStore) DeleteTerm(projectID, termID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProject(projectID)
	if p == nil {
		return
	}
	kept := p.Terms[:0]
	removed := false
	for _, t := range p.Terms {
		if t.ID == termID {
			removed = true
			continue
		}
		kept = append(kept, t)
	}
	if !removed {
		return
	}
	p.Terms = kept
	p.UpdatedAt = bump(p.UpdatedAt)
	s.persistLocked()
}
