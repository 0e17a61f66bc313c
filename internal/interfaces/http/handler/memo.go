package handler

import (
	"github.com/gin-gonic/gin"

	"novel-maker-api/internal/interfaces/http/dto"
	"novel-maker-api/internal/store"
)

// MemoHandler 备忘处理器
type MemoHandler struct {
	store *store.ProjectStore
}

// NewMemoHandler 创建备忘处理器
func NewMemoHandler(st *store.ProjectStore) *MemoHandler {
	return &MemoHandler{store: st}
}

// AddMemo 添加备忘
func (h *MemoHandler) AddMemo(c *gin.Context) {
	var req dto.CreateMemoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	memo := h.store.AddMemo(c.Param("projectId"), req.ToDraft())
	if memo == nil {
		dto.NotFound(c, "project not found")
		return
	}
	dto.Created(c, memo)
}

// UpdateMemo 更新备忘
func (h *MemoHandler) UpdateMemo(c *gin.Context) {
	var req dto.UpdateMemoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	memo := h.store.UpdateMemo(c.Param("projectId"), c.Param("memoId"), req.ToPatch())
	if memo == nil {
		dto.NotFound(c, "memo not found")
		return
	}
	dto.Success(c, memo)
}

// DeleteMemo 删除备忘
func (h *MemoHandler) DeleteMemo(c *gin.Context) {
	h.store.DeleteMemo(c.Param("projectId"), c.Param("memoId"))
	dto.NoContent(c)
}
