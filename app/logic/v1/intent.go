package v1

import (
	"strings"

	"github.com/ChungNYCU/jtcg-assignment/pkg/types"
)

type intentRule struct {
	intent   types.Intent
	keywords []string
}

// 規則順序即優先級，order 永遠先於 product 判定
var intentRules = []intentRule{
	{types.INTENT_ORDER, []string{"訂單", "物流", "追蹤", "配送", "出貨", "到貨", "order", "tracking", "shipping", "delivery"}},
	{types.INTENT_PRODUCT, []string{"產品", "臂架", "支架", "螢幕", "推薦", "規格", "尺寸", "vesa", "arm", "monitor", "product"}},
	{types.INTENT_HANDOVER, []string{"真人", "客服", "人工", "轉接", "協助", "human", "help", "support", "agent"}},
	{types.INTENT_FAQ, []string{"政策", "退換貨", "保固", "發票", "運費", "付款", "policy", "return", "warranty", "payment"}},
}

// DetectIntent 以關鍵字做子字串比對分類訊息意圖，
// 全部未命中時回退 general。
func DetectIntent(message string) types.Intent {
	lowered := strings.ToLower(message)
	for _, rule := range intentRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				return rule.intent
			}
		}
	}
	return types.INTENT_GENERAL
}
