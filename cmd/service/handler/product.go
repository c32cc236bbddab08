package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/ChungNYCU/jtcg-assignment/app/logic/v1"
	"github.com/ChungNYCU/jtcg-assignment/app/response"
	"github.com/ChungNYCU/jtcg-assignment/pkg/utils"
)

type SearchProductsRequest struct {
	Query          string            `json:"query" binding:"required"`
	Specifications map[string]string `json:"specifications"`
	MaxResults     int               `json:"max_results"`
}

func (s *HttpSrv) SearchProducts(c *gin.Context) {
	var req SearchProductsRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	lang := response.GetLangFromRequestOrDefault(c)
	result := v1.NewProductLogic(c, s.Core, lang).SearchProducts(req.Query, req.Specifications, req.MaxResults)
	response.APISuccess(c, result)
}
