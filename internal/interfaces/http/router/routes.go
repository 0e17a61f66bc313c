// Package router 提供 HTTP 路由配置
package router

import (
	"github.com/gin-gonic/gin"

	"novel-maker-api/internal/interfaces/http/handler"
)

// RegisterV1Routes 注册 v1 版本路由
func RegisterV1Routes(
	v1 *gin.RouterGroup,
	projectHandler *handler.ProjectHandler,
	episodeHandler *handler.EpisodeHandler,
	characterHandler *handler.CharacterHandler,
	memoHandler *handler.MemoHandler,
	worldSettingHandler *handler.WorldSettingHandler,
	termHandler *handler.TermHandler,
	eventHandler *handler.EventHandler,
	itemHandler *handler.ItemHandler,
	generationHandler *handler.GenerationHandler,
	transferHandler *handler.TransferHandler,
	settingsHandler *handler.SettingsHandler,
) {
	// 项目管理
	projects := v1.Group("/projects")
	{
		projects.GET("", projectHandler.ListProjects)
		projects.POST("", projectHandler.CreateProject)
		projects.POST("/import", transferHandler.ImportProject)
		projects.GET("/current", projectHandler.GetCurrentProject)
		projects.PUT("/current", projectHandler.SelectProject)
		projects.GET("/:projectId", projectHandler.GetProject)
		projects.PUT("/:projectId", projectHandler.UpdateProject)
		projects.DELETE("/:projectId", projectHandler.DeleteProject)
		projects.GET("/:projectId/export", transferHandler.ExportProject)

		// 项目下的回次
		projects.POST("/:projectId/episodes", episodeHandler.AddEpisode)
		projects.PUT("/:projectId/episodes/reorder", episodeHandler.ReorderEpisodes)
		projects.PUT("/:projectId/episodes/:episodeId", episodeHandler.UpdateEpisode)
		projects.DELETE("/:projectId/episodes/:episodeId", episodeHandler.DeleteEpisode)

		// 回次内容生成
		projects.POST("/:projectId/episodes/:episodeId/novel", generationHandler.GenerateNovel)
		projects.POST("/:projectId/episodes/:episodeId/storyboard", generationHandler.GenerateStoryboard)

		// 项目下的角色
		projects.POST("/:projectId/characters", characterHandler.AddCharacter)
		projects.PUT("/:projectId/characters/:characterId", characterHandler.UpdateCharacter)
		projects.DELETE("/:projectId/characters/:characterId", characterHandler.DeleteCharacter)

		// 项目下的备忘
		projects.POST("/:projectId/memos", memoHandler.AddMemo)
		projects.PUT("/:projectId/memos/:memoId", memoHandler.UpdateMemo)
		projects.DELETE("/:projectId/memos/:memoId", memoHandler.DeleteMemo)

		// 项目下的世界观设定
		projects.POST("/:projectId/world-settings", worldSettingHandler.AddWorldSetting)
		projects.PUT("/:projectId/world-settings/:settingId", worldSettingHandler.UpdateWorldSetting)
		projects.DELETE("/:projectId/world-settings/:settingId", worldSettingHandler.DeleteWorldSetting)

		// 项目下的用语
		projects.POST("/:projectId/terms", termHandler.AddTerm)
		projects.PUT("/:projectId/terms/:termId", termHandler.UpdateTerm)
		projects.DELETE("/:projectId/terms/:termId", termHandler.DeleteTerm)

		// 项目下的事件
		projects.POST("/:projectId/events", eventHandler.AddEvent)
		projects.PUT("/:projectId/events/:eventId", eventHandler.UpdateEvent)
		projects.DELETE("/:projectId/events/:eventId", eventHandler.DeleteEvent)

		// 项目下的物品
		projects.POST("/:projectId/items", itemHandler.AddItem)
		projects.PUT("/:projectId/items/:itemId", itemHandler.UpdateItem)
		projects.DELETE("/:projectId/items/:itemId", itemHandler.DeleteItem)
	}

	// 设置管理
	settings := v1.Group("/settings")
	{
		settings.GET("/api-key", settingsHandler.GetAPIKey)
		settings.PUT("/api-key", settingsHandler.SetAPIKey)
	}

	// 全量数据清空
	v1.DELETE("/data", settingsHandler.ClearAllData)
}
