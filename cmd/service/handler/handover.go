package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/ChungNYCU/jtcg-assignment/app/logic/v1"
	"github.com/ChungNYCU/jtcg-assignment/app/response"
	"github.com/ChungNYCU/jtcg-assignment/pkg/utils"
)

type HandoverToHumanRequest struct {
	Email               string `json:"email" binding:"required"`
	ConversationSummary string `json:"conversation_summary"`
	ConversationID      string `json:"conversation_id"`
}

func (s *HttpSrv) HandoverToHuman(c *gin.Context) {
	var req HandoverToHumanRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	lang := response.GetLangFromRequestOrDefault(c)
	result := v1.NewHandoverLogic(c, s.Core, lang).HandoverToHuman(req.Email, req.ConversationSummary, req.ConversationID)
	response.APISuccess(c, result)
}
