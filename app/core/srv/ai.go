package srv

import (
	"context"
	"fmt"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/ChungNYCU/jtcg-assignment/pkg/ai"
	"github.com/ChungNYCU/jtcg-assignment/pkg/ai/openai"
)

type AIConfig struct {
	Driver string       `toml:"driver"`
	OpenAI OpenAIConfig `toml:"openai"`
}

type OpenAIConfig struct {
	Token          string `toml:"token"`
	Endpoint       string `toml:"endpoint"`
	ChatModel      string `toml:"chat_model"`
	EmbeddingModel string `toml:"embedding_model"`
}

// AI 向上層遮蔽具體供應商，embedding 與 chat 皆委派給底層 driver。
type AI struct {
	driver ai.Driver
}

func SetupAI(cfg AIConfig) (*AI, error) {
	switch cfg.Driver {
	case "", openai.NAME:
		return &AI{
			driver: openai.New(cfg.OpenAI.Token, cfg.OpenAI.Endpoint, ai.ModelName{
				ChatModel:      cfg.OpenAI.ChatModel,
				EmbeddingModel: cfg.OpenAI.EmbeddingModel,
			}),
		}, nil
	default:
		return nil, fmt.Errorf("unsupported ai driver %q", cfg.Driver)
	}
}

func (s *AI) EmbeddingForQuery(ctx context.Context, content []string) (ai.EmbeddingResult, error) {
	return s.driver.EmbeddingForQuery(ctx, content)
}

func (s *AI) EmbeddingForDocument(ctx context.Context, title string, content []string) (ai.EmbeddingResult, error) {
	return s.driver.EmbeddingForDocument(ctx, title, content)
}

func (s *AI) Chat(ctx context.Context, req goopenai.ChatCompletionRequest) (goopenai.ChatCompletionResponse, error) {
	return s.driver.Chat(ctx, req)
}

func (s *AI) ChatModel() string {
	return s.driver.ChatModel()
}
