// Package handler 提供 HTTP 请求处理器
package handler

import (
	"github.com/gin-gonic/gin"

	"novel-maker-api/internal/interfaces/http/dto"
	"novel-maker-api/internal/store"
	"novel-maker-api/pkg/logger"
)

// ProjectHandler 项目处理器
type ProjectHandler struct {
	store *store.ProjectStore
}

// NewProjectHandler 创建项目处理器
func NewProjectHandler(st *store.ProjectStore) *ProjectHandler {
	return &ProjectHandler{store: st}
}

// ListProjects 获取项目列表
// @Summary 获取项目列表
// @Tags Projects
// @Produce json
// @Success 200 {object} dto.Response[dto.ProjectListResponse]
// @Router /v1/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	resp := dto.ProjectListResponse{
		Projects: h.store.Projects(),
	}
	if current := h.store.CurrentProject(); current != nil {
		resp.CurrentProjectID = current.ID
	}
	dto.Success(c, resp)
}

// CreateProject 创建项目
// @Summary 创建项目
// @Description 创建新项目并将其设为当前项目
// @Tags Projects
// @Accept json
// @Produce json
// @Param body body dto.CreateProjectRequest true "项目信息"
// @Success 201 {object} dto.Response[dto.CreatedResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Router /v1/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	id := h.store.CreateProject(req.ToDraft())
	logger.Info(c.Request.Context(), "project created", "project_id", id)
	dto.Created(c, dto.CreatedResponse{ID: id})
}

// GetProject 获取单个项目
// @Summary 获取单个项目
// @Tags Projects
// @Produce json
// @Param id path string true "项目 ID"
// @Success 200 {object} dto.Response[entity.Project]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project := h.store.GetProject(c.Param("projectId"))
	if project == nil {
		dto.NotFound(c, "project not found")
		return
	}
	dto.Success(c, project)
}

// UpdateProject 更新项目
// @Summary 更新项目
// @Description 部分更新，缺省字段保持原值
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path string true "项目 ID"
// @Param body body dto.UpdateProjectRequest true "项目补丁"
// @Success 200 {object} dto.Response[entity.Project]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	project := h.store.UpdateProject(c.Param("projectId"), req.ToPatch())
	if project == nil {
		dto.NotFound(c, "project not found")
		return
	}
	dto.Success(c, project)
}

// DeleteProject 删除项目
// @Summary 删除项目
// @Description 删除不存在的项目同样返回 204
// @Tags Projects
// @Param id path string true "项目 ID"
// @Success 204
// @Router /v1/projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	h.store.DeleteProject(c.Param("projectId"))
	dto.NoContent(c)
}

// SelectProject 设置当前项目
// @Summary 设置当前项目
// @Description projectId 为空表示清除当前选择，不校验项目是否存在
// @Tags Projects
// @Accept json
// @Success 204
// @Router /v1/projects/current [put]
func (h *ProjectHandler) SelectProject(c *gin.Context) {
	var req dto.SelectProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	h.store.SetCurrentProject(req.ProjectID)
	dto.NoContent(c)
}

// GetCurrentProject 获取当前项目
// @Summary 获取当前项目
// @Tags Projects
// @Produce json
// @Success 200 {object} dto.Response[entity.Project]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/projects/current [get]
func (h *ProjectHandler) GetCurrentProject(c *gin.Context) {
	project := h.store.CurrentProject()
	if project == nil {
		dto.NotFound(c, "no current project")
		return
	}
	dto.Success(c, project)
}
