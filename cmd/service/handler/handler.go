package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ChungNYCU/jtcg-assignment/app/core"
)

// HttpSrv HTTP服務結構
type HttpSrv struct {
	Core   *core.Core
	Engine *gin.Engine
}
