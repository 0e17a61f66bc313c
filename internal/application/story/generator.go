package story

import (
	"context"
	"time"

	"novel-maker-api/internal/domain/entity"
	"novel-maker-api/internal/infrastructure/llm"
	"novel-maker-api/internal/store"
	"novel-maker-api/pkg/errors"
	"novel-maker-api/pkg/logger"
	"novel-maker-api/pkg/metrics"
)

// TextGenerator 文本生成端口
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (*llm.Result, error)
}

// NovelInput 小说生成入参
type NovelInput struct {
	ProjectID string
	EpisodeID string
	// WritingStyle 非空时覆盖项目级文体
	WritingStyle string
}

// StoryboardInput 分镜生成入参
type StoryboardInput struct {
	ProjectID string
	EpisodeID string
	// CutCount 目标分镜数量
	CutCount int
}

// Output 生成结果
type Output struct {
	// Content 生成的文本，已写回对应回次
	Content string
	// Model 实际产出内容的候选模型
	Model string
	// Episode 写回后的回次
	Episode *entity.Episode
}

// Service 小说与分镜生成用例
type Service struct {
	store *store.ProjectStore
	gen   TextGenerator
}

// NewService 创建生成服务
func NewService(st *store.ProjectStore, gen TextGenerator) *Service {
	return &Service{
		store: st,
		gen:   gen,
	}
}

// GenerateNovel 为回次生成小说正文并写回
// 失败时不写入任何内容，回次保持原状
func (s *Service) GenerateNovel(ctx context.Context, in *NovelInput) (*Output, error) {
	project, episode, err := s.lookup(in.ProjectID, in.EpisodeID)
	if err != nil {
		return nil, err
	}

	prompt, err := BuildNovelPrompt(project, episode, in.WritingStyle)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		metrics.GenerationTotal.WithLabelValues("novel", "error").Inc()
		return nil, err
	}
	metrics.GenerationTotal.WithLabelValues("novel", "ok").Inc()
	metrics.GenerationDuration.WithLabelValues("novel").Observe(time.Since(start).Seconds())
	metrics.GenerationContentLength.WithLabelValues("novel").Observe(float64(len(result.Content)))

	updated := s.store.UpdateEpisode(in.ProjectID, in.EpisodeID, entity.EpisodePatch{
		NovelContent: &result.Content,
	})
	if updated == nil {
		// 生成期间回次被删除
		return nil, errors.ErrEpisodeNotFound
	}

	logger.Info(ctx, "novel content generated",
		"project_id", in.ProjectID,
		"episode_id", in.EpisodeID,
		"model", result.Model,
		"content_length", len(result.Content),
	)
	return &Output{
		Content: result.Content,
		Model:   result.Model,
		Episode: updated,
	}, nil
}

// GenerateStoryboard 为回次生成分镜脚本并写回
// 回次必须已有小说正文，否则在调用网关前就返回前置条件错误
func (s *Service) GenerateStoryboard(ctx context.Context, in *StoryboardInput) (*Output, error) {
	project, episode, err := s.lookup(in.ProjectID, in.EpisodeID)
	if err != nil {
		return nil, err
	}

	prompt, err := BuildStoryboardPrompt(project, episode, in.CutCount)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		metrics.GenerationTotal.WithLabelValues("storyboard", "error").Inc()
		return nil, err
	}
	metrics.GenerationTotal.WithLabelValues("storyboard", "ok").Inc()
	metrics.GenerationDuration.WithLabelValues("storyboard").Observe(time.Since(start).Seconds())
	metrics.GenerationContentLength.WithLabelValues("storyboard").Observe(float64(len(result.Content)))

	updated := s.store.UpdateEpisode(in.ProjectID, in.EpisodeID, entity.EpisodePatch{
		StoryboardContent: &result.Content,
	})
	if updated == nil {
		// 生成期间回次被删除
		return nil, errors.ErrEpisodeNotFound
	}

	logger.Info(ctx, "storyboard content generated",
		"project_id", in.ProjectID,
		"episode_id", in.EpisodeID,
		"model", result.Model,
		"cut_count", in.CutCount,
		"content_length", len(result.Content),
	)
	return &Output{
		Content: result.Content,
		Model:   result.Model,
		Episode: updated,
	}, nil
}

// lookup 解析项目与回次，未找到时返回对应的 NotFound 错误
func (s *Service) lookup(projectID, episodeID string) (*entity.Project, *entity.Episode, error) {
	project := s.store.GetProject(projectID)
	if project == nil {
		return nil, nil, errors.ErrProjectNotFound
	}
	episode := project.EpisodeByID(episodeID)
	if episode == nil {
		return nil, nil, errors.ErrEpisodeNotFound
	}
	return project, episode, nil
}
