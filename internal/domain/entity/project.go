// Package entity 定义领域实体
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Project 作品项目聚合根
// JSON 字段沿用持久化快照的 camelCase 命名，保证导出文件可以原样再导入
type Project struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Synopsis      string          `json:"synopsis"`
	Genres        []string        `json:"genres"`
	WritingStyle  string          `json:"writingStyle,omitempty"`
	CoverImage    string          `json:"coverImage,omitempty"`
	Episodes      []*Episode      `json:"episodes"`
	Characters    []*Character    `json:"characters"`
	Memos         []*Memo         `json:"memos"`
	WorldSettings []*WorldSetting `json:"worldSettings"`
	Terms         []*Term         `json:"terms"`
	Events        []*Event        `json:"events"`
	Items         []*Item         `json:"items"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ProjectDraft 创建项目时调用方提供的字段
type ProjectDraft struct {
	Title        string
	Synopsis     string
	Genres       []string
	WritingStyle string
	CoverImage   string
}

// NewProject 创建新项目，所有子集合初始化为空
func NewProject(draft ProjectDraft) *Project {
	now := time.Now()
	genres := draft.Genres
	if genres == nil {
		genres = []string{}
	}
	return &Project{
		ID:            uuid.New().String(),
		Title:         draft.Title,
		Synopsis:      draft.Synopsis,
		Genres:        genres,
		WritingStyle:  draft.WritingStyle,
		CoverImage:    draft.CoverImage,
		Episodes:      []*Episode{},
		Characters:    []*Character{},
		Memos:         []*Memo{},
		WorldSettings: []*WorldSetting{},
		Terms:         []*Term{},
		Events:        []*Event{},
		Items:         []*Item{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// ProjectPatch 项目部分更新，nil 字段保持原值
type ProjectPatch struct {
	Title        *string
	Synopsis     *string
	Genres       *[]string
	WritingStyle *string
	CoverImage   *string
}

// Apply 将补丁合并到项目上
func (p *ProjectPatch) Apply(project *Project) {
	if p.Title != nil {
		project.Title = *p.Title
	}
	if p.Synopsis != nil {
		project.Synopsis = *p.Synopsis
	}
	if p.Genres != nil {
		project.Genres = *p.Genres
	}
	if p.WritingStyle != nil {
		project.WritingStyle = *p.WritingStyle
	}
	if p.CoverImage != nil {
		project.CoverImage = *p.CoverImage
	}
}

// Normalize 保证所有子集合非 nil
// 历史快照中可选集合可能缺失，读取侧必须拿到空列表而不是 nil
func (p *Project) Normalize() {
	if p.Genres == nil {
		p.Genres = []string{}
	}
	if p.Episodes == nil {
		p.Episodes = []*Episode{}
	}
	if p.Characters == nil {
		p.Characters = []*Character{}
	}
	if p.Memos == nil {
		p.Memos = []*Memo{}
	}
	if p.WorldSettings == nil {
		p.WorldSettings = []*WorldSetting{}
	}
	if p.Terms == nil {
		p.Terms = []*Term{}
	}
	if p.Events == nil {
		p.Events = []*Event{}
	}
	if p.Items == nil {
		p.Items = []*Item{}
	}
}

// EpisodeByID 按 ID 查找回次，未找到返回 nil
func (p *Project) EpisodeByID(id string) *Episode {
	for _, ep := range p.Episodes {
		if ep.ID == id {
			return ep
		}
	}
	return nil
}

// CharacterByID 按 ID 查找角色，未找到返回 nil
func (p *Project) CharacterByID(id string) *Character {
	for _, c := range p.Characters {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// ResolveCharacters 按 ID 列表解析角色引用
// 角色引用是弱引用：已删除角色的悬空 ID 在读取时被静默跳过
func (p *Project) ResolveCharacters(ids []string) []*Character {
	out := make([]*Character, 0, len(ids))
	for _, id := range ids {
		if c := p.CharacterByID(id); c != nil {
			out = append(out, c)
		}
	}
	return out
}

// FilterCharacterIDs 过滤掉指向已删除角色的悬空 ID
func (p *Project) FilterCharacterIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if p.CharacterByID(id) != nil {
			out = append(out, id)
		}
	}
	return out
}

// ItemsOwnedBy 返回属于给定角色集合的物品
// owner 同样是弱引用，悬空的 owner 在这里自然落空
func (p *Project) ItemsOwnedBy(characterIDs []string) []*Item {
	owners := make(map[string]struct{}, len(characterIDs))
	for _, id := range characterIDs {
		owners[id] = struct{}{}
	}
	out := make([]*Item, 0)
	for _, it := range p.Items {
		if it.Owner == "" {
			continue
		}
		if _, ok := owners[it.Owner]; ok {
			out = append(out, it)
		}
	}
	return out
}

// Clone 返回项目的深拷贝
func (p *Project) Clone() *Project {
	clone := *p
	clone.Genres = append([]string{}, p.Genres...)
	clone.Episodes = make([]*Episode, len(p.Episodes))
	for i, ep := range p.Episodes {
		clone.Episodes[i] = ep.Clone()
	}
	clone.Characters = make([]*Character, len(p.Characters))
	for i, c := range p.Characters {
		cc := *c
		clone.Characters[i] = &cc
	}
	clone.Memos = make([]*Memo, len(p.Memos))
	for i, m := range p.Memos {
		mm := *m
		clone.Memos[i] = &mm
	}
	clone.WorldSettings = make([]*WorldSetting, len(p.WorldSettings))
	for i, ws := range p.WorldSettings {
		w := *ws
		clone.WorldSettings[i] = &w
	}
	clone.Terms = make([]*Term, len(p.Terms))
	for i, t := range p.Terms {
		clone.Terms[i] = t.Clone()
	}
	clone.Events = make([]*Event, len(p.Events))
	for i, ev := range p.Events {
		clone.Events[i] = ev.Clone()
	}
	clone.Items = make([]*Item, len(p.Items))
	for i, it := range p.Items {
		ii := *it
		clone.Items[i] = &ii
	}
	return &clone
}
