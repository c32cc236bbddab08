package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/ChungNYCU/jtcg-assignment/app/logic/v1"
	"github.com/ChungNYCU/jtcg-assignment/app/response"
)

func (s *HttpSrv) LookupUserOrders(c *gin.Context) {
	userID, _ := c.Params.Get("userid")

	lang := response.GetLangFromRequestOrDefault(c)
	result := v1.NewOrderLogic(c, s.Core, lang).LookupUserOrders(userID)
	response.APISuccess(c, result)
}

func (s *HttpSrv) LookupOrderDetails(c *gin.Context) {
	orderID, _ := c.Params.Get("orderid")

	lang := response.GetLangFromRequestOrDefault(c)
	result := v1.NewOrderLogic(c, s.Core, lang).LookupOrderDetails(orderID)
	response.APISuccess(c, result)
}
