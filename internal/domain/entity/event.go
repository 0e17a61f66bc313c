package entity

import (
	"time"

	"github.com/google/uuid"
)

// EventImportance 事件重要度
type EventImportance string

const (
	EventImportanceLow    EventImportance = "low"
	EventImportanceMedium EventImportance = "medium"
	EventImportanceHigh   EventImportance = "high"
)

// Event 作品内事件
// Date 是作品内的自由文本时间，不是真实日期，排序按字典序
type Event struct {
	ID                string          `json:"id"`
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	Date              string          `json:"date,omitempty"`
	Importance        EventImportance `json:"importance"`
	RelatedCharacters []string        `json:"relatedCharacters,omitempty"`
	RelatedEpisodes   []string        `json:"relatedEpisodes,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// Clone 返回事件的深拷贝
func (e *Event) Clone() *Event {
	clone := *e
	if e.RelatedCharacters != nil {
		clone.RelatedCharacters = append([]string{}, e.RelatedCharacters...)
	}
	if e.RelatedEpisodes != nil {
		clone.RelatedEpisodes = append([]string{}, e.RelatedEpisodes...)
	}
	return &clone
}

// EventDraft 创建事件时调用方提供的字段
type EventDraft struct {
	Title             string
	Description       string
	Date              string
	Importance        EventImportance
	RelatedCharacters []string
	RelatedEpisodes   []string
}

// NewEvent 创建新事件
func NewEvent(draft EventDraft) *Event {
	now := time.Now()
	return &Event{
		ID:                uuid.New().String(),
		Title:             draft.Title,
		Description:       draft.Description,
		Date:              draft.Date,
		Importance:        draft.Importance,
		RelatedCharacters: draft.RelatedCharacters,
		RelatedEpisodes:   draft.RelatedEpisodes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// EventPatch 事件部分更新，nil 字段保持原值
type EventPatch struct {
	Title             *string
	Description       *string
	Date              *string
	Importance        *EventImportance
	RelatedCharacters *[]string
	RelatedEpisodes   *[]string
}

// Apply 将补丁合并到事件上
func (p *EventPatch) Apply(e *Event) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Importance != nil {
		e.Importance = *p.Importance
	}
	if p.RelatedCharacters != nil {
		e.RelatedCharacters = *p.RelatedCharacters
	}
	if p.RelatedEpisodes != nil {
		e.RelatedEpisodes = *p.RelatedEpisodes
	}
}
