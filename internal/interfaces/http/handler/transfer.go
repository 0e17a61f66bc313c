package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"novel-maker-api/internal/interfaces/http/dto"
	"novel-maker-api/internal/store"
	"novel-maker-api/pkg/logger"
)

// TransferHandler 项目导入导出处理器
type TransferHandler struct {
	store *store.ProjectStore
}

// NewTransferHandler 创建导入导出处理器
func NewTransferHandler(st *store.ProjectStore) *TransferHandler {
	return &TransferHandler{store: st}
}

// ExportProject 导出项目
// @Summary 导出项目
// @Description 以 JSON 附件形式下载单个项目的完整数据
// @Tags Transfer
// @Produce json
// @Param id path string true "项目 ID"
// @Success 200 {object} entity.Project
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/projects/{id}/export [get]
func (h *TransferHandler) ExportProject(c *gin.Context) {
	id := c.Param("projectId")
	data, ok := h.store.ExportProject(id)
	if !ok {
		dto.NotFound(c, "project not found")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "project-"+id+".json"))
	c.Data(http.StatusOK, "application/json", data)
}

// ImportProject 导入项目
// @Summary 导入项目
// @Description 从导出文件导入项目，新项目总是分配新 ID
// @Tags Transfer
// @Accept json
// @Produce json
// @Success 201 {object} dto.Response[dto.ImportProjectResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Router /v1/projects/import [post]
func (h *TransferHandler) ImportProject(c *gin.Context) {
	data, err := c.GetRawData()
	if err != nil {
		dto.BadRequest(c, "failed to read request body: "+err.Error())
		return
	}

	id, err := h.store.ImportProject(data)
	if err != nil {
		dto.FromAppError(c, err)
		return
	}

	logger.Info(c.Request.Context(), "project imported", "project_id", id)
	dto.Created(c, dto.ImportProjectResponse{ID: id})
}
