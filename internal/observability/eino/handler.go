// Package eino 提供 Eino 模型调用的全局观测回调
package eino

import (
	"context"
	"time"

	einocb "github.com/cloudwego/eino/callbacks"
	"github.com/cloudwego/eino/components/model"
	cbtemplate "github.com/cloudwego/eino/utils/callbacks"

	"novel-maker-api/pkg/logger"
	"novel-maker-api/pkg/metrics"
)

// startTimeKey 在 Context 中存储调用开始时间，供 OnEnd/OnError 计算耗时
type startTimeKey struct{}

// newChatModelCallbackHandler 创建模型调用回调处理器
// 网关层的指标按候选模型维度统计成功与否，这里补充只有
// 回调能看到的 Token 消耗数据
func newChatModelCallbackHandler() *cbtemplate.ModelCallbackHandler {
	return &cbtemplate.ModelCallbackHandler{
		OnStart: func(ctx context.Context, _ *einocb.RunInfo, _ *model.CallbackInput) context.Context {
			return context.WithValue(ctx, startTimeKey{}, time.Now())
		},

		OnEnd: func(ctx context.Context, _ *einocb.RunInfo, output *model.CallbackOutput) context.Context {
			modelName := modelNameFromOutput(output)

			if output != nil && output.TokenUsage != nil {
				metrics.LLMTokensTotal.WithLabelValues(modelName, "prompt").
					Add(float64(output.TokenUsage.PromptTokens))
				metrics.LLMTokensTotal.WithLabelValues(modelName, "completion").
					Add(float64(output.TokenUsage.CompletionTokens))

				logger.Debug(ctx, "llm call completed",
					"model", modelName,
					"prompt_tokens", output.TokenUsage.PromptTokens,
					"completion_tokens", output.TokenUsage.CompletionTokens,
					"duration_seconds", elapsedSeconds(ctx),
				)
			}
			return ctx
		},

		OnError: func(ctx context.Context, _ *einocb.RunInfo, err error) context.Context {
			logger.Debug(ctx, "llm call errored",
				"error", err.Error(),
				"duration_seconds", elapsedSeconds(ctx),
			)
			return ctx
		},
	}
}

// elapsedSeconds 计算距 OnStart 的耗时，缺少开始时间时返回 0
func elapsedSeconds(ctx context.Context) float64 {
	start, ok := ctx.Value(startTimeKey{}).(time.Time)
	if !ok || start.IsZero() {
		return 0
	}
	return time.Since(start).Seconds()
}

// modelNameFromOutput 从输出配置中提取模型名称
func modelNameFromOutput(out *model.CallbackOutput) string {
	if out == nil || out.Config == nil {
		return ""
	}
	return out.Config.Model
}
