package dto

import (
	"novel-maker-api/internal/domain/entity"
)

// CreateTermRequest 创建用语请求
type CreateTermRequest struct {
	Term         string   `json:"term" binding:"required,max=255"`
	Definition   string   `json:"definition" binding:"required"`
	Category     string   `json:"category,omitempty" binding:"omitempty,max=100"`
	RelatedTerms []string `json:"relatedTerms,omitempty"`
}

// ToDraft 转换为用语草稿
func (r *CreateTermRequest) ToDraft() entity.TermDraft {
	return entity.TermDraft{
		Term:         r.Term,
		Definition:   r.Definition,
		Category:     r.Category,
		RelatedTerms: r.RelatedTerms,
	}
}

// UpdateTermRequest 更新用语请求，缺省字段保持原值
type UpdateTermRequest struct {
	Term         *string   `json:"term,omitempty" binding:"omitempty,max=255"`
	Definition   *string   `json:"definition,omitempty"`
	Category     *string   `json:"category,omitempty" binding:"omitempty,max=100"`
	RelatedTerms *[]string `json:"relatedTerms,omitempty"`
}

// ToPatch 转换为用语补丁
func (r *UpdateTermRequest) ToPatch() entity.TermPatch {
	return entity.TermPatch{
		Term:         r.Term,
		Definition:   r.Definition,
		Category:     r.Category,
		RelatedTerms: r.RelatedTerms,
	}
}
