package handler

import (
	"github.com/gin-gonic/gin"

	"novel-maker-api/internal/interfaces/http/dto"
	"novel-maker-api/internal/store"
)

// WorldSettingHandler 世界观设定处理器
type WorldSettingHandler struct {
	store *store.ProjectStore
}

// NewWorldSettingHandler 创建世界观设定处理器
func NewWorldSettingHandler(st *store.ProjectStore) *WorldSettingHandler {
	return &WorldSettingHandler{store: st}
}

// AddWorldSetting 添加世界观设定
func (h *WorldSettingHandler) AddWorldSetting(c *gin.Context) {
	var req dto.CreateWorldSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	setting := h.store.AddWorldSetting(c.Param("projectId"), req.ToDraft())
	if setting == nil {
		dto.NotFound(c, "project not found")
		return
	}
	dto.Created(c, setting)
}

// UpdateWorldSetting 更新世界观设定
func (h *WorldSettingHandler) UpdateWorldSetting(c *gin.Context) {
	var req dto.UpdateWorldSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	setting := h.store.UpdateWorldSetting(c.Param("projectId"), c.Param("settingId"), req.ToPatch())
	if setting == nil {
		dto.NotFound(c, "world setting not found")
		return
	}
	dto.Success(c, setting)
}

// DeleteWorldSetting 删除世界观设定
func (h *WorldSettingHandler) DeleteWorldSetting(c *gin.Context) {
	h.store.DeleteWorldSetting(c.Param("projectId"), c.Param("settingId"))
	dto.NoContent(c)
}
