package ai

import (
	"context"
	"log/slog"

	"github.com/pkoukk/tiktoken-go"
	"github.com/sashabaranov/go-openai"
)

type ModelName struct {
	ChatModel      string `toml:"chat_model"`
	EmbeddingModel string `toml:"embedding_model"`
}

type EmbeddingResult struct {
	Model string
	Data  [][]float32
	Usage *openai.Usage
}

// Embedding 向量化驅動，document 與 query 兩種場景分開給
// 支援非對稱 embedding 的供應商留口。
type Embedding interface {
	EmbeddingForQuery(ctx context.Context, content []string) (EmbeddingResult, error)
	EmbeddingForDocument(ctx context.Context, title string, content []string) (EmbeddingResult, error)
}

type Chat interface {
	Chat(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
	ChatModel() string
}

type Driver interface {
	Embedding
	Chat
}

const maxContextTokens = 8000

// MsgIsOverLimit 以 cl100k_base 粗估對話 token 數，超限時由呼叫端裁剪歷史。
func MsgIsOverLimit(msgs []openai.ChatCompletionMessage) bool {
	tkm, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		slog.Error("failed to get tiktoken encoding", slog.String("error", err.Error()))
		return false
	}

	total := 0
	for _, msg := range msgs {
		total += len(tkm.Encode(msg.Content, nil, nil))
	}
	return total > maxContextTokens
}
