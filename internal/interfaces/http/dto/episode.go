package dto

import (
	"novel-maker-api/internal/domain/entity"
)

// CreateEpisodeRequest 创建回次请求
// Number 只是 UI 建议的序号，不要求唯一
type CreateEpisodeRequest struct {
	Number              int      `json:"number" binding:"gte=0"`
	Title               string   `json:"title" binding:"required,max=255"`
	Summary             string   `json:"summary" binding:"max=10000"`
	AppearingCharacters []string `json:"appearingCharacters,omitempty"`
}

// ToDraft 转换为回次草稿
func (r *CreateEpisodeRequest) ToDraft() entity.EpisodeDraft {
	return entity.EpisodeDraft{
		Number:              r.Number,
		Title:               r.Title,
		Summary:             r.Summary,
		AppearingCharacters: r.AppearingCharacters,
	}
}

// UpdateEpisodeRequest 更新回次请求，缺省字段保持原值
type UpdateEpisodeRequest struct {
	Number              *int      `json:"number,omitempty" binding:"omitempty,gte=0"`
	Title               *string   `json:"title,omitempty" binding:"omitempty,max=255"`
	Summary             *string   `json:"summary,omitempty" binding:"omitempty,max=10000"`
	AppearingCharacters *[]string `json:"appearingCharacters,omitempty"`
	NovelContent        *string   `json:"novelContent,omitempty"`
	StoryboardContent   *string   `json:"storyboardContent,omitempty"`
}

// ToPatch 转换为回次补丁
func (r *UpdateEpisodeRequest) ToPatch() entity.EpisodePatch {
	return entity.EpisodePatch{
		Number:              r.Number,
		Title:               r.Title,
		Summary:             r.Summary,
		AppearingCharacters: r.AppearingCharacters,
		NovelContent:        r.NovelContent,
		StoryboardContent:   r.StoryboardContent,
	}
}

// ReorderEpisodesRequest 重排回次请求
type ReorderEpisodesRequest struct {
	EpisodeIDs []string `json:"episodeIds" binding:"required,min=1"`
}
