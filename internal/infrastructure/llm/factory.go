// Package llm 提供基于 Eino 的文本生成网关
package llm

import (
	"context"
	"fmt"
	"sync"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"

	"novel-maker-api/internal/config"
)

// ModelProvider 按 API 密钥提供 ChatModel 实例
type ModelProvider interface {
	ChatModel(ctx context.Context, apiKey string) (model.BaseChatModel, error)
}

// EinoFactory 管理 Eino ChatModel 客户端实例
// 密钥可能在运行时被用户更换，因此按密钥缓存客户端
type EinoFactory struct {
	config *config.LLMConfig
	models map[string]model.BaseChatModel
	mu     sync.RWMutex
}

// NewEinoFactory 创建 Eino LLM 工厂
func NewEinoFactory(cfg *config.Config) *EinoFactory {
	return &EinoFactory{
		config: &cfg.LLM,
		models: make(map[string]model.BaseChatModel),
	}
}

// ChatModel 返回绑定给定密钥的 ChatModel，按密钥惰性创建
func (f *EinoFactory) ChatModel(ctx context.Context, apiKey string) (model.BaseChatModel, error) {
	f.mu.RLock()
	m, ok := f.models[apiKey]
	f.mu.RUnlock()
	if ok {
		return m, nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	// 再次检查防止竞态
	if m, ok = f.models[apiKey]; ok {
		return m, nil
	}

	maxTokens := f.config.MaxTokens
	temperature := float32(f.config.Temperature)

	// 使用 Eino 的 OpenAI 适配器，具体模型在每次调用时通过选项指定
	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:      apiKey,
		BaseURL:     f.config.BaseURL,
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
		Timeout:     f.config.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create eino chat model: %w", err)
	}

	f.models[apiKey] = chatModel
	return chatModel, nil
}
