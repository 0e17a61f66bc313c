package handler

import (
	"github.com/gin-gonic/gin"

	"novel-maker-api/internal/interfaces/http/dto"
	"novel-maker-api/internal/store"
)

// TermHandler 用语处理器
type TermHandler struct {
	store *store.ProjectStore
}

// NewTermHandler 创建用语处理器
func NewTermHandler(st *store.ProjectStore) *TermHandler {
	return &TermHandler{store: st}
}

// AddTerm 添加用语
func (h *TermHandler) AddTerm(c *gin.Context) {
	var req dto.CreateTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	term := h.store.AddTerm(c.Param("projectId"), req.ToDraft())
	if term == nil {
		dto.NotFound(c, "project not found")
		return
	}
	dto.Created(c, term)
}

// UpdateTerm 更新用语
func (h *TermHandler) UpdateTerm(c *gin.Context) {
	var req dto.UpdateTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	term := h.store.UpdateTerm(c.Param("projectId"), c.Param("termId"), req.ToPatch())
	if term == nil {
		dto.NotFound(c, "term not found")
		return
	}
	dto.Success(c, term)
}

// DeleteTerm 删除用语
func (h *TermHandler) DeleteTerm(c *gin.Context) {
	h.store.DeleteTerm(c.Param("projectId"), c.Param("termId"))
	dto.NoContent(c)
}
