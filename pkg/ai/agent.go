package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/sashabaranov/go-openai"
)

// ToolFunc 執行單個工具呼叫，入參為模型產生的 JSON arguments，
// 回傳值會被序列化後回餵給模型。
type ToolFunc func(ctx context.Context, args json.RawMessage) (any, error)

type Tool struct {
	Definition openai.Tool
	Execute    ToolFunc
}

// Agent 以 chat completion 的 function calling 驅動工具呼叫循環。
// 每輪請求皆為阻塞呼叫，逾時控制交由呼叫端的 context。
type Agent struct {
	driver Chat
	prompt string
	tools  map[string]Tool
	defs   []openai.Tool
}

func NewAgent(driver Chat, prompt string, tools []Tool) *Agent {
	a := &Agent{
		driver: driver,
		prompt: prompt,
		tools:  make(map[string]Tool, len(tools)),
	}
	for _, tool := range tools {
		a.tools[tool.Definition.Function.Name] = tool
		a.defs = append(a.defs, tool.Definition)
	}
	return a
}

// 防止模型在工具間無限打轉
const maxToolRounds = 8

func (a *Agent) Run(ctx context.Context, history []openai.ChatCompletionMessage) (string, error) {
	messages := append([]openai.ChatCompletionMessage{{
		Role:    openai.ChatMessageRoleSystem,
		Content: a.prompt,
	}}, history...)

	for MsgIsOverLimit(messages) && len(messages) > 2 {
		// 保留 system prompt，裁掉最舊的對話
		messages = append(messages[:1], messages[2:]...)
	}

	for round := 0; round < maxToolRounds; round++ {
		resp, err := a.driver.Chat(ctx, openai.ChatCompletionRequest{
			Model:    a.driver.ChatModel(),
			Messages: messages,
			Tools:    a.defs,
		})
		if err != nil {
			return "", fmt.Errorf("agent chat round %d: %w", round, err)
		}
		if len(resp.Choices) == 0 {
			return "", fmt.Errorf("agent chat round %d: empty choices", round)
		}

		choice := resp.Choices[0].Message
		if len(choice.ToolCalls) == 0 {
			return choice.Content, nil
		}

		messages = append(messages, choice)
		for _, call := range choice.ToolCalls {
			messages = append(messages, a.executeToolCall(ctx, call))
		}
	}

	return "", fmt.Errorf("agent exceeded %d tool rounds", maxToolRounds)
}

func (a *Agent) executeToolCall(ctx context.Context, call openai.ToolCall) openai.ChatCompletionMessage {
	reply := openai.ChatCompletionMessage{
		Role:       openai.ChatMessageRoleTool,
		ToolCallID: call.ID,
	}

	tool, ok := a.tools[call.Function.Name]
	if !ok {
		reply.Content = fmt.Sprintf(`{"error":"unknown tool %s"}`, call.Function.Name)
		return reply
	}

	result, err := tool.Execute(ctx, json.RawMessage(call.Function.Arguments))
	if err != nil {
		slog.Error("tool execution failed", slog.String("tool", call.Function.Name), slog.String("error", err.Error()))
		reply.Content = fmt.Sprintf(`{"error":%q}`, err.Error())
		return reply
	}

	raw, err := json.Marshal(result)
	if err != nil {
		reply.Content = fmt.Sprintf(`{"error":%q}`, err.Error())
		return reply
	}
	reply.Content = string(raw)
	return reply
}
