package handler

import (
	"github.com/gin-gonic/gin"

	"novel-maker-api/internal/interfaces/http/dto"
	"novel-maker-api/internal/store"
)

// CharacterHandler 角色处理器
type CharacterHandler struct {
	store *store.ProjectStore
}

// NewCharacterHandler 创建角色处理器
func NewCharacterHandler(st *store.ProjectStore) *CharacterHandler {
	return &CharacterHandler{store: st}
}

// AddCharacter 添加角色
// @Summary 添加角色
// @Tags Characters
// @Accept json
// @Produce json
// @Param projectId path string true "项目 ID"
// @Param body body dto.CreateCharacterRequest true "角色信息"
// @Success 201 {object} dto.Response[entity.Character]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/projects/{projectId}/characters [post]
func (h *CharacterHandler) AddCharacter(c *gin.Context) {
	var req dto.CreateCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	character := h.store.AddCharacter(c.Param("projectId"), req.ToDraft())
	if character == nil {
		dto.NotFound(c, "project not found")
		return
	}
	dto.Created(c, character)
}

// UpdateCharacter 更新角色
// @Summary 更新角色
// @Tags Characters
// @Accept json
// @Produce json
// @Param projectId path string true "项目 ID"
// @Param characterId path string true "角色 ID"
// @Param body body dto.UpdateCharacterRequest true "角色补丁"
// @Success 200 {object} dto.Response[entity.Character]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/projects/{projectId}/characters/{characterId} [put]
func (h *CharacterHandler) UpdateCharacter(c *gin.Context) {
	var req dto.UpdateCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	character := h.store.UpdateCharacter(c.Param("projectId"), c.Param("characterId"), req.ToPatch())
	if character == nil {
		dto.NotFound(c, "character not found")
		return
	}
	dto.Success(c, character)
}

// DeleteCharacter 删除角色
// @Summary 删除角色
// @Description 回次出场表和物品归属中的引用不会级联清理
// @Tags Characters
// @Param projectId path string true "项目 ID"
// @Param characterId path string true "角色 ID"
// @Success 204
// @Router /v1/projects/{projectId}/characters/{characterId} [delete]
func (h *CharacterHandler) DeleteCharacter(c *gin.Context) {
	h.store.DeleteCharacter(c.Param("projectId"), c.Param("characterId"))
	dto.NoContent(c)
}
