package core

import (
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/ChungNYCU/jtcg-assignment/app/core/srv"
	"github.com/ChungNYCU/jtcg-assignment/app/store/sqlstore"
	"github.com/ChungNYCU/jtcg-assignment/pkg/dataset"
)

var (
	testMetricsOnce sync.Once
	testMetrics     *Metrics
)

// MustSetupTestCore 單元測試用的輕量組裝，外部依賴全部由呼叫端注入。
// metrics 為行程內單例，避免重複註冊 collector。
func MustSetupTestCore(ds *dataset.Dataset, stores *sqlstore.Provider, services *srv.Srv) *Core {
	testMetricsOnce.Do(func() {
		testMetrics = NewMetrics("jtcg", "test")
	})
	gin.SetMode(gin.TestMode)

	return &Core{
		srv:        services,
		stores:     func() *sqlstore.Provider { return stores },
		dataset:    ds,
		httpEngine: gin.New(),
		metrics:    testMetrics,
	}
}
