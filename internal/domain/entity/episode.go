package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Episode 作品回次
// Number 只是 UI 建议的序号，不保证唯一或连续；
// 上一回次上下文收集按 Number 严格小于当前回次取，并按 Number 升序排序，
// 相同序号按插入顺序稳定排列
type Episode struct {
	ID                  string    `json:"id"`
	Number              int       `json:"number"`
	Title               string    `json:"title"`
	Summary             string    `json:"summary"`
	AppearingCharacters []string  `json:"appearingCharacters,omitempty"`
	NovelContent        string    `json:"novelContent,omitempty"`
	StoryboardContent   string    `json:"storyboardContent,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// EpisodeDraft 创建回次时调用方提供的字段
type EpisodeDraft struct {
	Number              int
	Title               string
	Summary             string
	AppearingCharacters []string
}

// NewEpisode 创建新回次
func NewEpisode(draft EpisodeDraft) *Episode {
	now := time.Now()
	return &Episode{
		ID:                  uuid.New().String(),
		Number:              draft.Number,
		Title:               draft.Title,
		Summary:             draft.Summary,
		AppearingCharacters: draft.AppearingCharacters,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

// HasNovelContent 是否已完成小说化，纯空白不算有内容
func (e *Episode) HasNovelContent() bool {
	return strings.TrimSpace(e.NovelContent) != ""
}

// Clone 返回回次的深拷贝
func (e *Episode) Clone() *Episode {
	clone := *e
	if e.AppearingCharacters != nil {
		clone.AppearingCharacters = append([]string{}, e.AppearingCharacters...)
	}
	return &clone
}

// EpisodePatch 回次部分更新，nil 字段保持原值
type EpisodePatch struct {
	Number              *int
	Title               *string
	Summary             *string
	AppearingCharacters *[]string
	NovelContent        *string
	StoryboardContent   *string
}

// Apply 将补丁合并到回次上
func (p *EpisodePatch) Apply(ep *Episode) {
	if p.Number != nil {
		ep.Number = *p.Number
	}
	if p.Title != nil {
		ep.Title = *p.Title
	}
	if p.Summary != nil {
		ep.Summary = *p.Summary
	}
	if p.AppearingCharacters != nil {
		ep.AppearingCharacters = *p.AppearingCharacters
	}
	if p.NovelContent != nil {
		ep.NovelContent = *p.NovelContent
	}
	if p.StoryboardContent != nil {
		ep.StoryboardContent = *p.StoryboardContent
	}
}
