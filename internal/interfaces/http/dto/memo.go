package dto

import (
	"novel-maker-api/internal/domain/entity"
)

// CreateMemoRequest 创建备忘请求
type CreateMemoRequest struct {
	Title   string `json:"title" binding:"max=255"`
	Content string `json:"content" binding:"required"`
}

// ToDraft 转换为备忘草稿
func (r *CreateMemoRequest) ToDraft() entity.MemoDraft {
	return entity.MemoDraft{
		Title:   r.Title,
		Content: r.Content,
	}
}

// UpdateMemoRequest 更新备忘请求，缺省字段保持原值
type UpdateMemoRequest struct {
	Title   *string `json:"title,omitempty" binding:"omitempty,max=255"`
	Content *string `json:"content,omitempty"`
}

// ToPatch 转换为备忘补丁
func (r *UpdateMemoRequest) ToPatch() entity.MemoPatch {
	return entity.MemoPatch{
		Title:   r.Title,
		Content: r.Content,
	}
}
