package dto

import (
	"novel-maker-api/internal/domain/entity"
)

// CreateProjectRequest 创建项目请求
type CreateProjectRequest struct {
	Title        string   `json:"title" binding:"required,max=255"`
	Synopsis     string   `json:"synopsis" binding:"max=10000"`
	Genres       []string `json:"genres,omitempty"`
	WritingStyle string   `json:"writingStyle,omitempty" binding:"omitempty,max=50"`
	CoverImage   string   `json:"coverImage,omitempty"`
}

// ToDraft 转换为项目草稿
func (r *CreateProjectRequest) ToDraft() entity.ProjectDraft {
	return entity.ProjectDraft{
		Title:        r.Title,
		Synopsis:     r.Synopsis,
		Genres:       r.Genres,
		WritingStyle: r.WritingStyle,
		CoverImage:   r.CoverImage,
	}
}

// UpdateProjectRequest 更新项目请求，缺省字段保持原值
type UpdateProjectRequest struct {
	Title        *string   `json:"title,omitempty" binding:"omitempty,max=255"`
	Synopsis     *string   `json:"synopsis,omitempty" binding:"omitempty,max=10000"`
	Genres       *[]string `json:"genres,omitempty"`
	WritingStyle *string   `json:"writingStyle,omitempty" binding:"omitempty,max=50"`
	CoverImage   *string   `json:"coverImage,omitempty"`
}

// ToPatch 转换为项目补丁
func (r *UpdateProjectRequest) ToPatch() entity.ProjectPatch {
	return entity.ProjectPatch{
		Title:        r.Title,
		Synopsis:     r.Synopsis,
		Genres:       r.Genres,
		WritingStyle: r.WritingStyle,
		CoverImage:   r.CoverImage,
	}
}

// SelectProjectRequest 设置当前项目请求，projectId 为空表示清除选择
type SelectProjectRequest struct {
	ProjectID string `json:"projectId"`
}

// ProjectListResponse 项目列表响应
type ProjectListResponse struct {
	Projects []*entity.Project `json:"projects"`
	// CurrentProjectID 当前选中项目，未选中时为空
	CurrentProjectID string `json:"currentProjectId,omitempty"`
}

// CreatedResponse 创建成功响应，仅返回新 ID
type CreatedResponse struct {
	ID string `json:"id"`
}
