package handler

import (
	"github.com/gin-gonic/gin"

	"novel-maker-api/internal/application/story"
	"novel-maker-api/internal/interfaces/http/dto"
	"novel-maker-api/pkg/logger"
)

// GenerationHandler 生成处理器
type GenerationHandler struct {
	service *story.Service
}

// NewGenerationHandler 创建生成处理器
func NewGenerationHandler(service *story.Service) *GenerationHandler {
	return &GenerationHandler{service: service}
}

// GenerateNovel 生成小说正文
// @Summary 生成小说正文
// @Description 装配提示词并调用 LLM，生成结果写回回次的 novelContent
// @Tags Generation
// @Accept json
// @Produce json
// @Param projectId path string true "项目 ID"
// @Param episodeId path string true "回次 ID"
// @Param body body dto.GenerateNovelRequest false "生成选项"
// @Success 200 {object} dto.Response[dto.GenerationResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /v1/projects/{projectId}/episodes/{episodeId}/novel [post]
func (h *GenerationHandler) GenerateNovel(c *gin.Context) {
	var req dto.GenerateNovelRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	ctx := c.Request.Context()
	out, err := h.service.GenerateNovel(ctx, &story.NovelInput{
		ProjectID:    c.Param("projectId"),
		EpisodeID:    c.Param("episodeId"),
		WritingStyle: req.WritingStyle,
	})
	if err != nil {
		logger.Error(ctx, "novel generation failed", err,
			"project_id", c.Param("projectId"),
			"episode_id", c.Param("episodeId"),
		)
		dto.FromAppError(c, err)
		return
	}

	dto.Success(c, dto.GenerationResponse{
		Content: out.Content,
		Model:   out.Model,
		Episode: out.Episode,
	})
}

// GenerateStoryboard 生成分镜脚本
// @Summary 生成分镜脚本
// @Description 回次必须已有小说正文，生成结果写回回次的 storyboardContent
// @Tags Generation
// @Accept json
// @Produce json
// @Param projectId path string true "项目 ID"
// @Param episodeId path string true "回次 ID"
// @Param body body dto.GenerateStoryboardRequest true "生成选项"
// @Success 200 {object} dto.Response[dto.GenerationResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /v1/projects/{projectId}/episodes/{episodeId}/storyboard [post]
func (h *GenerationHandler) GenerateStoryboard(c *gin.Context) {
	var req dto.GenerateStoryboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	ctx := c.Request.Context()
	out, err := h.service.GenerateStoryboard(ctx, &story.StoryboardInput{
		ProjectID: c.Param("projectId"),
		EpisodeID: c.Param("episodeId"),
		CutCount:  req.CutCount,
	})
	if err != nil {
		logger.Error(ctx, "storyboard generation failed", err,
			"project_id", c.Param("projectId"),
			"episode_id", c.Param("episodeId"),
		)
		dto.FromAppError(c, err)
		return
	}

	dto.Success(c, dto.GenerationResponse{
		Content: out.Content,
		Model:   out.Model,
		Episode: out.Episode,
	})
}
