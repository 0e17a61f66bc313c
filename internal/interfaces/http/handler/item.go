package handler

import (
	"github.com/gin-gonic/gin"

	"novel-maker-api/internal/interfaces/http/dto"
	"novel-maker-api/internal/store"
)

// ItemHandler 物品处理器
type ItemHandler struct {
	store *store.ProjectStore
}

// NewItemHandler 创建物品处理器
func NewItemHandler(st *store.ProjectStore) *ItemHandler {
	return &ItemHandler{store: st}
}

// AddItem 添加物品
func (h *ItemHandler) AddItem(c *gin.Context) {
	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	item := h.store.AddItem(c.Param("projectId"), req.ToDraft())
	if item == nil {
		dto.NotFound(c, "project not found")
		return
	}
	dto.Created(c, item)
}

// UpdateItem 更新物品
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	item := h.store.UpdateItem(c.Param("projectId"), c.Param("itemId"), req.ToPatch())
	if item == nil {
		dto.NotFound(c, "item not found")
		return
	}
	dto.Success(c, item)
}

// DeleteItem 删除物品
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	h.store.DeleteItem(c.Param("projectId"), c.Param("itemId"))
	dto.NoContent(c)
}
