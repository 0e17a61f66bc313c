package dto

import (
	"novel-maker-api/internal/domain/entity"
)

// GenerateNovelRequest 小说生成请求
type GenerateNovelRequest struct {
	// WritingStyle 非空时覆盖项目级文体设置
	WritingStyle string `json:"writingStyle,omitempty" binding:"omitempty,oneof=modern classical casual dramatic poetic humorous serious fantasy"`
}

// GenerateStoryboardRequest 分镜生成请求
type GenerateStoryboardRequest struct {
	// CutCount 目标分镜数量
	CutCount int `json:"cutCount" binding:"required,gte=1"`
}

// GenerationResponse 生成结果响应
type GenerationResponse struct {
	Content string `json:"content"`
	// Model 实际产出内容的候选模型
	Model   string          `json:"model"`
	Episode *entity.Episode `json:"episode"`
}
