package store

import "novel-maker-api/internal/domain/entity"

// AddWorldSetting 向项目追加世界观设定，项目不存在时静默 no-op
func (s *ProjectStore) AddWorldSetting(projectID string, draft entity.WorldSettingDraft) *entity.WorldSetting {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProject(projectID)
	if p == nil {
		return nil
	}
	ws := entity.NewWorldSetting(draft)
	p.WorldSettings = append(p.WorldSettings, ws)
	p.UpdatedAt = bump(p.UpdatedAt)
	s.persistLocked()
	clone := *ws
	return &clone
}

// UpdateWorldSetting 浅合并补丁到世界观设定，项目或设定不存在时静默 no-op
func (s *ProjectStore) UpdateWorldSetting(projectID, settingID string, patch entity.WorldSettingPatch) *entity.WorldSetting {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProject(projectID)
	if p == nil {
		return nil
	}
	var target *entity.WorldSetting
	for _, ws := range p.WorldSettings {
		if ws.ID == settingID {
			target = ws
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

// DeleteWorldSetting 删除世界观设定，不存在时静默 no-op
func (s *ProjectStore) DeleteWorldSetting(projectID, settingID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProject(projectID)
	if p == nil {
		return
	}
	kept := p.WorldSettings[:0]
	removed := false
	for _, ws := range p.WorldSettings {
		if ws.ID == settingID {
			removed = true
			continue
		}
		kept = append(kept, ws)
	}
	if !removed {
		return
	}
	p.WorldSettings = kept
	p.UpdatedAt = bump(p.UpdatedAt)
	s.persistLocked()
}
