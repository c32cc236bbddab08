package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/ChungNYCU/jtcg-assignment/app/logic/v1"
	"github.com/ChungNYCU/jtcg-assignment/app/response"
	"github.com/ChungNYCU/jtcg-assignment/pkg/utils"
)

type SearchKnowledgeBaseRequest struct {
	Query      string `json:"query" binding:"required"`
	MaxResults int    `json:"max_results"`
}

func (s *HttpSrv) SearchKnowledgeBase(c *gin.Context) {
	var req SearchKnowledgeBaseRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	lang := response.GetLangFromRequestOrDefault(c)
	result := v1.NewKnowledgeLogic(c, s.Core, lang).SearchKnowledgeBase(req.Query, req.MaxResults)
	response.APISuccess(c, result)
}
