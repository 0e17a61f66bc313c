package handler

import (
	"github.com/gin-gonic/gin"

	"novel-maker-api/internal/interfaces/http/dto"
	"novel-maker-api/internal/store"
	"novel-maker-api/pkg/logger"
)

// SettingsHandler 设置处理器
type SettingsHandler struct {
	store *store.ProjectStore
}

// NewSettingsHandler 创建设置处理器
func NewSettingsHandler(st *store.ProjectStore) *SettingsHandler {
	return &SettingsHandler{store: st}
}

// SetAPIKey 保存 API 密钥
// @Summary 保存 API 密钥
// @Description 密钥只做透明存储，不做格式校验
// @Tags Settings
// @Accept json
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Router /v1/settings/api-key [put]
func (h *SettingsHandler) SetAPIKey(c *gin.Context) {
	var req dto.SetAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	h.store.SetGrokAPIKey(req.APIKey)
	logger.Info(c.Request.Context(), "api key updated")
	dto.NoContent(c)
}

// GetAPIKey 读取 API 密钥
// @Summary 读取 API 密钥
// @Tags Settings
// @Produce json
// @Success 200 {object} dto.Response[dto.APIKeyResponse]
// @Router /v1/settings/api-key [get]
func (h *SettingsHandler) GetAPIKey(c *gin.Context) {
	key := h.store.GrokAPIKey()
	dto.Success(c, dto.APIKeyResponse{
		APIKey:     key,
		Configured: key != "",
	})
}

// ClearAllData 清空全部数据
// @Summary 清空全部数据
// @Description 删除所有项目、当前项目指针和已存密钥
// @Tags Settings
// @Success 204
// @Router /v1/data [delete]
func (h *SettingsHandler) ClearAllData(c *gin.Context) {
	h.store.ClearAllData()
	logger.Warn(c.Request.Context(), "all data cleared")
	dto.NoContent(c)
}
