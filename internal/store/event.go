package store

import "novel-maker-api/internal/domain/entity"

// AddEvent 向项目追加事件，项目不存在时静默 no-op
func (s *ProjectStore) AddEvent(projectID string, draft entity.EventDraft) *entity.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProject(projectID)
	if p == nil {
		return nil
	}
	ev := entity.NewEvent(draft)
	p.Events = append(p.Events, ev)
	p.UpdatedAt = bump(p.UpdatedAt)
	s.persistLocked()
	return ev.Clone()
}

// UpdateEvent 浅合并补丁到事件，项目或事件不存在时静默 no-op
func (s *ProjectStore) UpdateEvent(projectID, eventID string, patch entity.EventPatch) *entity.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProject(projectID)
	if p == nil {
		return nil
	}
	var target *entity.Event
	for _, ev := range p.Events {
		if ev.ID == eventID {
			target = ev
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

// DeleteEvent 删除事件，不存在时静默 no-op
func (s *ProjectStore) DeleteEvent(projectID, eventID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProject(projectID)
	if p == nil {
		return
	}
	kept := p.Events[:0]
	removed := false
	for _, ev := range p.Events {
		if ev.ID == eventID {
			removed = true
			continue
		}
		kept = append(kept, ev)
	}
	if !removed {
		return
	}
	p.Events = kept
	p.UpdatedAt = bump(p.UpdatedAt)
	s.persistLocked()
}
