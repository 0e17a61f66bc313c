package llm

import (
	"context"
	"fmt"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"novel-maker-api/internal/config"
	"novel-maker-api/pkg/errors"
)

// fakeChatModel 按模型名返回预设结果的 ChatModel 桩
type fakeChatModel struct {
	// responses 模型名到返回内容的映射，缺失的模型返回错误
	responses map[string]string
	tried     []string
}

func (f *fakeChatModel) Generate(_ context.Context, _ []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	name := ""
	if o := model.GetCommonOptions(&model.Options{}, opts...); o.Model != nil {
		name = *o.Model
	}
	f.tried = append(f.tried, name)

	content, ok := f.responses[name]
	if !ok {
		return nil, fmt.Errorf("model %s unavailable", name)
	}
	return schema.AssistantMessage(content, nil), nil
}

func (f *fakeChatModel) Stream(_ context.Context, _ []*schema.Message, _ ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, fmt.Errorf("stream not supported")
}

// fakeProvider 固定返回同一个 ChatModel
type fakeProvider struct {
	chat     *fakeChatModel
	err      error
	lastKey  string
	requests int
}

func (f *fakeProvider) ChatModel(_ context.Context, apiKey string) (model.BaseChatModel, error) {
	f.requests++
	f.lastKey = apiKey
	if f.err != nil {
		return nil, f.err
	}
	return f.chat, nil
}

// fakeKeySource 固定密钥源
type fakeKeySource struct {
	key string
}

func (f *fakeKeySource) GrokAPIKey() string { return f.key }

func newTestGateway(chat *fakeChatModel, storedKey string) (*Gateway, *fakeProvider) {
	cfg := &config.Config{}
	cfg.LLM = config.LLMConfig{
		APIKey: "config-fallback-key",
		Models: []string{"grok-3", "grok-3-beta", "grok-beta", "grok"},
	}
	provider := &fakeProvider{chat: chat}
	return NewGateway(cfg, provider, &fakeKeySource{key: storedKey}), provider
}

func TestGenerateFirstCandidateWins(t *testing.T) {
	chat := &fakeChatModel{responses: map[string]string{
		"grok-3": "생성된 본문",
	}}
	gw, _ := newTestGateway(chat, "user-key")

	result, err := gw.Generate(context.Background(), "프롬프트")

	require.NoError(t, err)
	assert.Equal(t, "생성된 본문", result.Content)
	assert.Equal(t, "grok-3", result.Model)
	assert.Equal(t, []string{"grok-3"}, chat.tried)
}

func TestGenerateFallsThroughFailingCandidates(t *testing.T) {
	chat := &fakeChatModel{responses: map[string]string{
		"grok-beta": "셋째 후보의 본문",
	}}
	gw, _ := newTestGateway(chat, "user-key")

	result, err := gw.Generate(context.Background(), "프롬프트")

	require.NoError(t, err)
	assert.Equal(t, "grok-beta", result.Model)
	assert.Equal(t, []string{"grok-3", "grok-3-beta", "grok-beta"}, chat.tried)
}

func TestGenerateSkipsEmptyContent(t *testing.T) {
	chat := &fakeChatModel{responses: map[string]string{
		"grok-3":      "   \n\t  ",
		"grok-3-beta": "실제 본문",
	}}
	gw, _ := newTestGateway(chat, "user-key")

	result, err := gw.Generate(context.Background(), "프롬프트")

	require.NoError(t, err)
	assert.Equal(t, "grok-3-beta", result.Model)
	assert.Equal(t, "실제 본문", result.Content)
}

func TestGenerateTrimsContent(t *testing.T) {
	chat := &fakeChatModel{responses: map[string]string{
		"grok-3": "\n  본문  \n",
	}}
	gw, _ := newTestGateway(chat, "user-key")

	result, err := gw.Generate(context.Background(), "프롬프트")

	require.NoError(t, err)
	assert.Equal(t, "본문", result.Content)
}

func TestGenerateAllCandidatesFail(t *testing.T) {
	chat := &fakeChatModel{responses: map[string]string{}}
	gw, _ := newTestGateway(chat, "user-key")

	_, err := gw.Generate(context.Background(), "프롬프트")

	require.Error(t, err)
	appErr := errors.AsAppError(err)
	assert.Equal(t, errors.ErrLLMCallFailed.Code, appErr.Code)
	assert.Contains(t, appErr.Detail, "all model candidates failed")
	assert.Contains(t, appErr.Detail, "grok-3:")
	assert.Len(t, chat.tried, 4)
}

func TestGenerateNoAPIKey(t *testing.T) {
	chat := &fakeChatModel{responses: map[string]string{"grok-3": "본문"}}
	cfg := &config.Config{}
	cfg.LLM = config.LLMConfig{Models: []string{"grok-3"}}
	provider := &fakeProvider{chat: chat}
	gw := NewGateway(cfg, provider, &fakeKeySource{})

	_, err := gw.Generate(context.Background(), "프롬프트")

	require.Error(t, err)
	assert.Equal(t, errors.ErrLLMCallFailed.Code, errors.AsAppError(err).Code)
	assert.Zero(t, provider.requests)
	assert.Empty(t, chat.tried)
}

func TestGenerateStoredKeyPreferred(t *testing.T) {
	chat := &fakeChatModel{responses: map[string]string{"grok-3": "본문"}}
	gw, provider := newTestGateway(chat, "user-key")

	_, err := gw.Generate(context.Background(), "프롬프트")

	require.NoError(t, err)
	assert.Equal(t, "user-key", provider.lastKey)
}

func TestGenerateConfigKeyFallback(t *testing.T) {
	chat := &fakeChatModel{responses: map[string]string{"grok-3": "본문"}}
	gw, provider := newTestGateway(chat, "")

	_, err := gw.Generate(context.Background(), "프롬프트")

	require.NoError(t, err)
	assert.Equal(t, "config-fallback-key", provider.lastKey)
}
