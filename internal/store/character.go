package store

import "novel-maker-api/internal/domain/entity"

// AddCharacter 向项目追加角色，项目不存在时静默 no-op
func (s *ProjectStore) AddCharacter(projectID string, draft entity.CharacterDraft) *entity.Character {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProject(projectID)
	if p == nil {
		return nil
	}
	c := entity.NewCharacter(draft)
	p.Characters = append(p.Characters, c)
	p.UpdatedAt = bump(p.UpdatedAt)
	s.persistLocked()
	clone := *c
	return &clone
}

// UpdateCharacter 浅合并补丁到角色，项目或角色不存在时静默 no-op
func (s *ProjectStore) UpdateCharacter(projectID, characterID string, patch entity.CharacterPatch) *entity.Character {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProject(projectID)
	if p == nil {
		return nil
	}
	c := p.CharacterByID(characterID)
	if c == nil {
		return nil
	}
	patch.Apply(c)
	c.UpdatedAt = bump(c.UpdatedAt)
	p.UpdatedAt = bump(p.UpdatedAt)
	s.persistLocked()
	clone := *c
	return &clone
}

// DeleteCharacter 删除角色，不存在时静默 no-op
// 回次出场表、事件关联、物品归属中的引用不做清理，读取侧按弱引用过滤
func (s *ProjectStore) DeleteCharacter(projectID, characterID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProject(projectID)
	if p == nil {
		return
	}
	kept := p.Characters[:0]
	removed := false
	for _, c := range p.Characters {
		if c.ID == characterID {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	if !removed {
		return
	}
	p.Characters = kept
	p.UpdatedAt = bump(p.UpdatedAt)
	s.persistLocked()
}
