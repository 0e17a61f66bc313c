package handler

import (
	"github.com/gin-gonic/gin"

	"novel-maker-api/internal/interfaces/http/dto"
	"novel-maker-api/internal/store"
)

// EpisodeHandler 回次处理器
type EpisodeHandler struct {
	store *store.ProjectStore
}

// NewEpisodeHandler 创建回次处理器
func NewEpisodeHandler(st *store.ProjectStore) *EpisodeHandler {
	return &EpisodeHandler{store: st}
}

// AddEpisode 添加回次
// @Summary 添加回次
// @Tags Episodes
// @Accept json
// @Produce json
// @Param projectId path string true "项目 ID"
// @Param body body dto.CreateEpisodeRequest true "回次信息"
// @Success 201 {object} dto.Response[entity.Episode]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/projects/{projectId}/episodes [post]
func (h *EpisodeHandler) AddEpisode(c *gin.Context) {
	var req dto.CreateEpisodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	episode := h.store.AddEpisode(c.Param("projectId"), req.ToDraft())
	if episode == nil {
		dto.NotFound(c, "project not found")
		return
	}
	dto.Created(c, episode)
}

// UpdateEpisode 更新回次
// @Summary 更新回次
// @Tags Episodes
// @Accept json
// @Produce json
// @Param projectId path string true "项目 ID"
// @Param episodeId path string true "回次 ID"
// @Param body body dto.UpdateEpisodeRequest true "回次补丁"
// @Success 200 {object} dto.Response[entity.Episode]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/projects/{projectId}/episodes/{episodeId} [put]
func (h *EpisodeHandler) UpdateEpisode(c *gin.Context) {
	var req dto.UpdateEpisodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	episode := h.store.UpdateEpisode(c.Param("projectId"), c.Param("episodeId"), req.ToPatch())
	if episode == nil {
		dto.NotFound(c, "episode not found")
		return
	}
	dto.Success(c, episode)
}

// DeleteEpisode 删除回次
// @Summary 删除回次
// @Tags Episodes
// @Param projectId path string true "项目 ID"
// @Param episodeId path string true "回次 ID"
// @Success 204
// @Router /v1/projects/{projectId}/episodes/{episodeId} [delete]
func (h *EpisodeHandler) DeleteEpisode(c *gin.Context) {
	h.store.DeleteEpisode(c.Param("projectId"), c.Param("episodeId"))
	dto.NoContent(c)
}

// ReorderEpisodes 重排回次
// @Summary 重排回次
// @Description 按给定 ID 顺序重排，未列出的回次排在末尾
// @Tags Episodes
// @Accept json
// @Param projectId path string true "项目 ID"
// @Param body body dto.ReorderEpisodesRequest true "回次 ID 顺序"
// @Success 204
// @Router /v1/projects/{projectId}/episodes/reorder [put]
func (h *EpisodeHandler) ReorderEpisodes(c *gin.Context) {
	var req dto.ReorderEpisodesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	h.store.ReorderEpisodes(c.Param("projectId"), req.EpisodeIDs)
	dto.NoContent(c)
}
