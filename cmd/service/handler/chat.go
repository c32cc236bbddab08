package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/sashabaranov/go-openai"

	v1 "github.com/ChungNYCU/jtcg-assignment/app/logic/v1"
	"github.com/ChungNYCU/jtcg-assignment/app/response"
	"github.com/ChungNYCU/jtcg-assignment/pkg/utils"
)

type ChatHistoryMessage struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type ChatRequest struct {
	Message string               `json:"message" binding:"required"`
	History []ChatHistoryMessage `json:"history"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

func (s *HttpSrv) Chat(c *gin.Context) {
	var req ChatRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	history := lo.Map(req.History, func(msg ChatHistoryMessage, _ int) openai.ChatCompletionMessage {
		return openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}
	})

	reply := v1.NewChatLogic(c, s.Core).Chat(req.Message, history)
	response.APISuccess(c, ChatResponse{Reply: reply})
}
