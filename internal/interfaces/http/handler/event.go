package handler

import (
	"github.com/gin-gonic/gin"

	"novel-maker-api/internal/interfaces/http/dto"
	"novel-maker-api/internal/store"
)

// EventHandler 事件处理器
type EventHandler struct {
	store *store.ProjectStore
}

// NewEventHandler 创建事件处理器
func NewEventHandler(st *store.ProjectStore) *EventHandler {
	return &EventHandler{store: st}
}

// AddEvent 添加事件
func (h *EventHandler) AddEvent(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	event := h.store.AddEvent(c.Param("projectId"), req.ToDraft())
	if event == nil {
		dto.NotFound(c, "project not found")
		return
	}
	dto.Created(c, event)
}

// UpdateEvent 更新事件
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	event := h.store.UpdateEvent(c.Param("projectId"), c.Param("eventId"), req.ToPatch())
	if event == nil {
		dto.NotFound(c, "event not found")
		return
	}
	dto.Success(c, event)
}

// DeleteEvent 删除事件
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	h.store.DeleteEvent(c.Param("projectId"), c.Param("eventId"))
	dto.NoContent(c)
}
