package llm

import (
	"context"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"novel-maker-api/internal/config"
	"novel-maker-api/pkg/errors"
	"novel-maker-api/pkg/logger"
	"novel-maker-api/pkg/metrics"
)

// systemPrompt 生成调用的系统提示词，小说和分镜共用
const systemPrompt = `당신은 전문 웹소설 작가이자 S급 웹툰 콘티 작가입니다. 요청에 따라 다음 중 하나를 수행합니다:

【웹소설 작성 시】
1. 한국어 웹소설 스타일로 작성
2. 5000자 이상의 분량으로 작성 (매우 중요!)
3. 대화와 서술이 적절히 조화된 형태
4. 독자의 몰입감을 높이는 생생한 묘사
5. 등장인물의 성격과 특징을 정확히 반영
6. 시놉시스의 세계관과 설정을 충실히 반영
7. 회차의 줄거리를 자세히 풀어서 작성

【콘티 작성 시】
1. S급 일본 만화작가 + 한국 웹툰작가 스타일 융합
2. 드라마틱 연출 (로우앵글, 하이앵글, 버드아이뷰)
3. 감정적 몰입 극대화 (표정, 여백, 침묵 활용)
4. 요청된 컷 수를 정확히 완성 (절대 중단 금지)
5. 향상된 콘티 형식 준수:
   - 컷 번호: 크기/앵글 - 연출 의도
   - 배경: 상세 묘사 + 분위기/색감/조명
   - 인물: 동작/표정/자세 + 감정 상태
   - 대사/생각/효과음/나레이션 완벽 기입
   - 연출 포인트 명시

【공통 준수 사항】
- 절대 중간에 끊지 말고 완료까지 진행
- 요청된 분량/컷 수를 정확히 맞춤
- 고퀄리티 창작물 수준의 완성도 유지`

// KeySource 提供运行时 API 密钥，通常由项目存储实现
type KeySource interface {
	GrokAPIKey() string
}

// Result 单次生成结果
type Result struct {
	// Content 生成的文本
	Content string
	// Model 实际产出内容的候选模型
	Model string
}

// Gateway 文本生成网关
// 按配置顺序逐个尝试候选模型，接受第一个产出非空内容的模型
type Gateway struct {
	config   *config.LLMConfig
	provider ModelProvider
	keys     KeySource
}

// NewGateway 创建生成网关
func NewGateway(cfg *config.Config, provider ModelProvider, keys KeySource) *Gateway {
	return &Gateway{
		config:   &cfg.LLM,
		provider: provider,
		keys:     keys,
	}
}

// apiKey 取调用时点的密钥：优先用户保存的密钥，否则回退到配置
func (g *Gateway) apiKey() string {
	if key := g.keys.GrokAPIKey(); key != "" {
		return key
	}
	return g.config.APIKey
}

// Generate 执行一次文本生成
// 所有候选模型都失败时返回聚合了各候选错误的 LLM 调用错误
func (g *Gateway) Generate(ctx context.Context, prompt string) (*Result, error) {
	apiKey := g.apiKey()
	if apiKey == "" {
		return nil, errors.ErrLLMCallFailed.WithDetail("no API key configured")
	}

	chatModel, err := g.provider.ChatModel(ctx, apiKey)
	if err != nil {
		return nil, errors.ErrLLMCallFailed.WithError(err)
	}

	msgs := []*schema.Message{
		schema.SystemMessage(systemPrompt),
		schema.UserMessage(prompt),
	}

	var attempts []string
	for _, candidate := range g.config.Models {
		start := time.Now()
		outMsg, err := chatModel.Generate(ctx, msgs, model.WithModel(candidate))
		metrics.LLMCallDuration.WithLabelValues(candidate).Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.LLMCallTotal.WithLabelValues(candidate, "error").Inc()
			logger.Warn(ctx, "model candidate failed", "model", candidate, "error", err.Error())
			attempts = append(attempts, candidate+": "+err.Error())
			continue
		}
		content := strings.TrimSpace(outMsg.Content)
		if content == "" {
			metrics.LLMCallTotal.WithLabelValues(candidate, "empty").Inc()
			logger.Warn(ctx, "model candidate returned empty content", "model", candidate)
			attempts = append(attempts, candidate+": empty content")
			continue
		}
		metrics.LLMCallTotal.WithLabelValues(candidate, "ok").Inc()
		logger.Info(ctx, "generation succeeded", "model", candidate, "content_length", len(content))
		return &Result{Content: content, Model: candidate}, nil
	}

	return nil, errors.ErrLLMCallFailed.WithDetail("all model candidates failed: " + strings.Join(attempts, "; "))
}
