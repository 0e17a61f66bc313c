package entity

import (
	"time"

	"github.com/google/uuid"
)

// Memo 作者备忘，Content 为 Markdown 文本
type Memo struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MemoDraft 创建备忘时调用方提供的字段
type MemoDraft struct {
	Title   string
	Content string
}

// NewMemo 创建新备忘
func NewMemo(draft MemoDraft) *Memo {
	now := time.Now()
	return &Memo{
		ID:        uuid.New().String(),
		Title:     draft.Title,
		Content:   draft.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// MemoPatch 备忘部分更新，nil 字段保持原值
type MemoPatch struct {
	Title   *string
	Content *string
}

// Apply 将补丁合并到备忘上
func (p *MemoPatch) Apply(m *Memo) {
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.Content != nil {
		m.Content = *p.Content
	}
}
