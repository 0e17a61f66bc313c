package dto

import (
	"novel-maker-api/internal/domain/entity"
)

// CreateEventRequest 创建事件请求
type CreateEventRequest struct {
	Title             string   `json:"title" binding:"required,max=255"`
	Description       string   `json:"description" binding:"required"`
	Date              string   `json:"date,omitempty" binding:"omitempty,max=100"`
	Importance        string   `json:"importance" binding:"required,oneof=low medium high"`
	RelatedCharacters []string `json:"relatedCharacters,omitempty"`
	RelatedEpisodes   []string `json:"relatedEpisodes,omitempty"`
}

// ToDraft 转换为事件草稿
func (r *CreateEventRequest) ToDraft() entity.EventDraft {
	return entity.EventDraft{
		Title:             r.Title,
		Description:       r.Description,
		Date:              r.Date,
		Importance:        entity.EventImportance(r.Importance),
		RelatedCharacters: r.RelatedCharacters,
		RelatedEpisodes:   r.RelatedEpisodes,
	}
}

// UpdateEventRequest 更新事件请求，缺省字段保持原值
type UpdateEventRequest struct {
	Title             *string   `json:"title,omitempty" binding:"omitempty,max=255"`
	Description       *string   `json:"description,omitempty"`
	Date              *string   `json:"date,omitempty" binding:"omitempty,max=100"`
	Importance        *string   `json:"importance,omitempty" binding:"omitempty,oneof=low medium high"`
	RelatedCharacters *[]string `json:"relatedCharacters,omitempty"`
	RelatedEpisodes   *[]string `json:"relatedEpisodes,omitempty"`
}

// ToPatch 转换为事件补丁
func (r *UpdateEventRequest) ToPatch() entity.EventPatch {
	patch := entity.EventPatch{
		Title:             r.Title,
		Description:       r.Description,
		Date:              r.Date,
		RelatedCharacters: r.RelatedCharacters,
		RelatedEpisodes:   r.RelatedEpisodes,
	}
	if r.Importance != nil {
		importance := entity.EventImportance(*r.Importance)
		patch.Importance = &importance
	}
	return patch
}
