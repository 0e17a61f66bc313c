package dto

import (
	"novel-maker-api/internal/domain/entity"
)

// CreateWorldSettingRequest 创建世界观设定请求
type CreateWorldSettingRequest struct {
	Category string `json:"category" binding:"required,oneof=background era region culture politics economy other"`
	Title    string `json:"title" binding:"required,max=255"`
	Content  string `json:"content" binding:"required"`
}

// ToDraft 转换为世界观设定草稿
func (r *CreateWorldSettingRequest) ToDraft() entity.WorldSettingDraft {
	return entity.WorldSettingDraft{
		Category: entity.WorldSettingCategory(r.Category),
		Title:    r.Title,
		Content:  r.Content,
	}
}

// UpdateWorldSettingRequest 更新世界观设定请求，缺省字段保持原值
type UpdateWorldSettingRequest struct {
	Category *string `json:"category,omitempty" binding:"omitempty,oneof=background era region culture politics economy other"`
	Title    *string `json:"title,omitempty" binding:"omitempty,max=255"`
	Content  *string `json:"content,omitempty"`
}

// ToPatch 转换为世界观设定补丁
func (r *UpdateWorldSettingRequest) ToPatch() entity.WorldSettingPatch {
	patch := entity.WorldSettingPatch{
		Title:   r.Title,
		Content: r.Content,
	}
	if r.Category != nil {
		category := entity.WorldSettingCategory(*r.Category)
		patch.Category = &category
	}
	return patch
}
