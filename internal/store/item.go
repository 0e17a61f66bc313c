package store

import "novel-maker-api/internal/domain/entity"

// AddItem 向项目追加物品，项目不存在时静默 no-op
func (s *ProjectStore) AddItem(projectID string, draft entity.ItemDraft) *entity.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProject(projectID)
	if p == nil {
		return nil
	}
	it := entity.NewItem(draft)
	p.Items = append(p.Items, it)
	p.UpdatedAt = bump(p.UpdatedAt)
	s.persistLocked()
	clone := *it
	return &clone
}

// UpdateItem 浅合并补丁到物品，项目或物品不存在时静默 no-op
func (s *ProjectStore) UpdateItem(projectID, itemID string, patch entity.ItemPatch) *entity.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProject(projectID)
	if p == nil {
		return nil
	}
	var target *entity.Item
	for _, it := range p.Items {
		if it.ID == itemID {
			target = it
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

// DeleteItem 删除物品，不存在时静默 no-op
func (s *ProjectStore) DeleteItem(projectID, itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProject(projectID)
	if p == nil {
		return
	}
	kept := p.Items[:0]
	removed := false
	for _, it := range p.Items {
		if it.ID == itemID {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	if !removed {
		return
	}
	p.Items = kept
	p.UpdatedAt = bump(p.UpdatedAt)
	s.persistLocked()
}
