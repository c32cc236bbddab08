package v1

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/ChungNYCU/jtcg-assignment/app/core"
	"github.com/ChungNYCU/jtcg-assignment/pkg/ai"
	"github.com/ChungNYCU/jtcg-assignment/pkg/i18n"
	"github.com/ChungNYCU/jtcg-assignment/pkg/utils"
)

// defaultSystemPrompt 客服 agent 的預設人設與行為守則，
// 可由設定檔的 prompt.system 覆蓋。
const defaultSystemPrompt = `你是 JTCG Shop 的客服人員。JTCG Shop 專注於工作空間體驗與周邊配件的選品與設計，包含螢幕臂、壁掛支架、走線收納與安裝配件等。

品牌主張：Better Desk, Better Focus.
核心特色：相容性清楚、安裝不踩雷、售後好溝通。

重要：絕對不要使用以下 AI 機器人用語：
禁止使用：「簡短回答」「補充說明」「詳細說明」「總結」
禁止使用：「讓我為您...」「我將為您...」等助理語言
禁止回答超出職責範圍的內容，比如: 政治問題、數學問題、程式問題、情感問題

你的回應風格：
- 自然對話，直接回答，像真正的客服人員
- 不使用任何 AI 助理的用語格式
- 先直答、再補充，避免冗長
- 語系跟隨使用者最新訊息（繁體/簡體中文一致）
- 有來源就明確附上連結

核心功能範圍：
A. FAQ 智能回覆 - 使用 search_knowledge_base 工具
B. 產品探索與建議 - 使用 search_products 工具
C. 訂單服務查詢 - 使用 lookup_user_orders 和 lookup_order_details 工具
D. 真人客服轉接 - 使用 handover_to_human 工具

互動原則：
- 理解使用者最新意圖，必要時簡短澄清
- 先解決當前問題，再適度補充
- 必要資訊就近索取（user_id、Email等）
- 提供可立即執行的下一步引導

記住：以自然、專業、貼心的方式回應，就像真正的 JTCG Shop 客服人員。`

// ChatLogic 客服對話編排，把五個能力包成 function calling 工具
// 交給模型自行決定呼叫。
type ChatLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewChatLogic(ctx context.Context, core *core.Core) *ChatLogic {
	return &ChatLogic{
		ctx:  ctx,
		core: core,
	}
}

func (l *ChatLogic) systemPrompt() string {
	if prompt := l.core.Cfg().Prompt.System; prompt != "" {
		return prompt
	}
	return defaultSystemPrompt
}

// Chat 處理一則用戶訊息。history 為既有多輪上下文，可為空。
// agent 出錯時回傳在地化的道歉文案而非錯誤，對話不中斷。
func (l *ChatLogic) Chat(message string, history []openai.ChatCompletionMessage) string {
	lang := utils.DetectReplyLang(message)
	intent := DetectIntent(message)

	// 意圖標註只加在單輪訊息上，多輪對話交由模型自行理解上下文
	content := message
	if len(history) == 0 {
		content = fmt.Sprintf("[用戶意圖: %s] %s", intent, message)
	}

	messages := append(history, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: content,
	})

	agent := ai.NewAgent(l.core.Srv().AI(), l.systemPrompt(), l.tools(lang))
	reply, err := agent.Run(l.ctx, messages)
	if err != nil {
		l.core.Metrics().CapabilityErrorInc("chat", "agent")
		slog.Error("chat agent failed", slog.String("intent", intent.String()), slog.String("error", err.Error()))
		return locales.Get(lang, i18n.MESSAGE_CHAT_FAILED)
	}
	return reply
}

type knowledgeSearchArgs struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

type productSearchArgs struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

type userOrdersArgs struct {
	UserID string `json:"user_id"`
}

type orderDetailArgs struct {
	OrderID string `json:"order_id"`
}

type handoverArgs struct {
	Email               string `json:"email"`
	ConversationSummary string `json:"conversation_summary"`
	ConversationID      string `json:"conversation_id"`
}

func (l *ChatLogic) tools(lang string) []ai.Tool {
	return []ai.Tool{
		{
			Definition: toolDefinition("search_knowledge_base",
				"Search the JTCG knowledge base for FAQ, policies, and support information",
				map[string]jsonschema.Definition{
					"query":       {Type: jsonschema.String, Description: "User's question or search terms"},
					"max_results": {Type: jsonschema.Integer, Description: "Maximum number of results to return"},
				}, []string{"query"}),
			Execute: func(ctx context.Context, raw json.RawMessage) (any, error) {
				var args knowledgeSearchArgs
				if err := json.Unmarshal(raw, &args); err != nil {
					return nil, err
				}
				l.core.Metrics().AgentToolCallInc("search_knowledge_base")
				return NewKnowledgeLogic(ctx, l.core, lang).SearchKnowledgeBase(args.Query, args.MaxResults), nil
			},
		},
		{
			Definition: toolDefinition("search_products",
				"Search for JTCG products and provide recommendations based on user requirements",
				map[string]jsonschema.Definition{
					"query":       {Type: jsonschema.String, Description: "User's product search query"},
					"max_results": {Type: jsonschema.Integer, Description: "Maximum number of products to return"},
				}, []string{"query"}),
			Execute: func(ctx context.Context, raw json.RawMessage) (any, error) {
				var args productSearchArgs
				if err := json.Unmarshal(raw, &args); err != nil {
					return nil, err
				}
				l.core.Metrics().AgentToolCallInc("search_products")
				return NewProductLogic(ctx, l.core, lang).SearchProducts(args.Query, nil, args.MaxResults), nil
			},
		},
		{
			Definition: toolDefinition("lookup_user_orders",
				"Look up all orders for a specific user ID (e.g., u_123456)",
				map[string]jsonschema.Definition{
					"user_id": {Type: jsonschema.String, Description: "User identifier"},
				}, []string{"user_id"}),
			Execute: func(ctx context.Context, raw json.RawMessage) (any, error) {
				var args userOrdersArgs
				if err := json.Unmarshal(raw, &args); err != nil {
					return nil, err
				}
				l.core.Metrics().AgentToolCallInc("lookup_user_orders")
				return NewOrderLogic(ctx, l.core, lang).LookupUserOrders(args.UserID), nil
			},
		},
		{
			Definition: toolDefinition("lookup_order_details",
				"Look up detailed information for a specific order ID (e.g., JTCG-202508-10001)",
				map[string]jsonschema.Definition{
					"order_id": {Type: jsonschema.String, Description: "Order identifier"},
				}, []string{"order_id"}),
			Execute: func(ctx context.Context, raw json.RawMessage) (any, error) {
				var args orderDetailArgs
				if err := json.Unmarshal(raw, &args); err != nil {
					return nil, err
				}
				l.core.Metrics().AgentToolCallInc("lookup_order_details")
				return NewOrderLogic(ctx, l.core, lang).LookupOrderDetails(args.OrderID), nil
			},
		},
		{
			Definition: toolDefinition("handover_to_human",
				"Transfer conversation to human customer service",
				map[string]jsonschema.Definition{
					"email":                {Type: jsonschema.String, Description: "User's email address"},
					"conversation_summary": {Type: jsonschema.String, Description: "Summary of the conversation so far"},
					"conversation_id":      {Type: jsonschema.String, Description: "Optional conversation identifier"},
				}, []string{"email", "conversation_summary"}),
			Execute: func(ctx context.Context, raw json.RawMessage) (any, error) {
				var args handoverArgs
				if err := json.Unmarshal(raw, &args); err != nil {
					return nil, err
				}
				l.core.Metrics().AgentToolCallInc("handover_to_human")
				return NewHandoverLogic(ctx, l.core, lang).HandoverToHuman(args.Email, args.ConversationSummary, args.ConversationID), nil
			},
		},
	}
}

func toolDefinition(name, description string, properties map[string]jsonschema.Definition, required []string) openai.Tool {
	return openai.Tool{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        name,
			Description: description,
			Parameters: jsonschema.Definition{
				Type:       jsonschema.Object,
				Properties: properties,
				Required:   required,
			},
		},
	}
}
