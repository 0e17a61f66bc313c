package store

import "novel-maker-api/internal/domain/entity"

// AddEpisode 向项目追加回次，项目不存在时静默 no-op
func (s *ProjectStore) AddEpisode(projectID string, draft entity.EpisodeDraft) *entity.Episode {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProject(projectID)
	if p == nil {
		return nil
	}
	ep := entity.NewEpisode(draft)
	p.Episodes = append(p.Episodes, ep)
	p.UpdatedAt = bump(p.UpdatedAt)
	s.persistLocked()
	return ep.Clone()
}

// UpdateEpisode 浅合并补丁到回次，项目或回次不存在时静默 no-op
func (s *ProjectStore) UpdateEpisode(projectID, episodeID string, patch entity.EpisodePatch) *entity.Episode {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProject(projectID)
	if p == nil {
		return nil
	}
	ep := p.EpisodeByID(episodeID)
	if ep == nil {
		return nil
	}
	patch.Apply(ep)
	ep.UpdatedAt = bump(ep.UpdatedAt)
	p.UpdatedAt = bump(p.UpdatedAt)
	s.persistLocked()
	return ep.Clone()
}

// DeleteEpisode 删除回次，不存在时静默 no-op
// 事件中指向该回次的引用不做清理，读取侧按弱引用过滤
func (s *ProjectStore) DeleteEpisode(projectID, episodeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProject(projectID)
	if p == nil {
		return
	}
	kept := p.Episodes[:0]
	removed := false
	for _, ep := range p.Episodes {
		if ep.ID == episodeID {
			removed = true
			continue
		}
		kept = append(kept, ep)
	}
	if !removed {
		return
	}
	p.Episodes = kept
	p.UpdatedAt = bump(p.UpdatedAt)
	s.persistLocked()
}

// ReorderEpisodes 按给定 ID 顺序重排回次
// 列表中未知的 ID 被忽略，未出现在列表中的回次按原相对顺序排在末尾
func (s *ProjectStore) ReorderEpisodes(projectID string, orderedIDs []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProject(projectID)
	if p == nil {
		return
	}
	placed := make(map[string]struct{}, len(orderedIDs))
	reordered := make([]*entity.Episode, 0, len(p.Episodes))
	for _, id := range orderedIDs {
		ep := p.EpisodeByID(id)
		if ep == nil {
			continue
		}
		if _, ok := placed[id]; ok {
			continue
		}
		placed[id] = struct{}{}
		reordered = append(reordered, ep)
	}
	for _, ep := range p.Episodes {
		if _, ok := placed[ep.ID]; !ok {
			reordered = append(reordered, ep)
		}
	}
	p.Episodes = reordered
	p.UpdatedAt = bump(p.UpdatedAt)
	s.persistLocked()
}
