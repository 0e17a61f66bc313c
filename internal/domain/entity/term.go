package entity

import (
	"time"

	"github.com/google/uuid"
)

// Term 用语辞典条目
// RelatedTerms 按词面值引用，不做解析
type Term struct {
	ID           string    `json:"id"`
	Term         string    `json:"term"`
	Definition   string    `json:"definition"`
	Category     string    `json:"category,omitempty"`
	RelatedTerms []string  `json:"relatedTerms,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TermDraft 创建用语时调用方提供的字段
type TermDraft struct {
	Term         string
	Definition   string
	Category     string
	RelatedTerms []string
}

// NewTerm 创建新用语
func NewTerm(draft TermDraft) *Term {
	now := time.Now()
	return &Term{
		ID:           uuid.New().String(),
		Term:         draft.Term,
		Definition:   draft.Definition,
		Category:     draft.Category,
		RelatedTerms: draft.RelatedTerms,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Clone 返回用语的深拷贝
func (t *Term) Clone() *Term {
	clone := *t
	if t.RelatedTerms != nil {
		clone.RelatedTerms = append([]string{}, t.RelatedTerms...)
	}
	return &clone
}

// TermPatch 用语部分更新，nil 字段保持原值
type TermPatch struct {
	Term         *string
	Definition   *string
	Category     *string
	RelatedTerms *[]string
}

// Apply 将补丁合并到用语上
func (p *TermPatch) Apply(t *Term) {
	if p.Term != nil {
		t.Term = *p.Term
	}
	if p.Definition != nil {
		t.Definition = *p.Definition
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.RelatedTerms != nil {
		t.RelatedTerms = *p.RelatedTerms
	}
}
