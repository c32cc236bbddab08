package v1

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChungNYCU/jtcg-assignment/pkg/dataset"
	"github.com/ChungNYCU/jtcg-assignment/pkg/types"
)

func orderFixtures() map[string][]types.Order {
	return map[string][]types.Order{
		"u_123456": {
			{
				OrderID:         "JTCG-202508-10001",
				PlacedAt:        "2025-08-01T10:00:00Z",
				Status:          types.ORDER_STATUS_SHIPPED,
				Carrier:         "黑貓宅急便",
				Tracking:        "TW1234567890",
				ETA:             "2025-08-05",
				Items:           []types.OrderItem{{"name": "雙螢幕氣壓臂 Pro", "qty": 1}},
				ShippingAddress: "台北市信義區",
				ContactPhone:    "0912345678",
				OrderURL:        "https://example.com/orders/10001",
			},
			{
				OrderID:         "JTCG-202508-10002",
				PlacedAt:        "2025-08-10T12:00:00Z",
				Status:          types.OrderStatus("refunding"),
				Items:           []types.OrderItem{{"name": "理線收納盒", "qty": 2}, {"name": "桌夾底座", "qty": 1}},
				ShippingAddress: "台北市信義區",
				ContactPhone:    "0912345678",
			},
		},
	}
}

func setupOrderLogic(t *testing.T) *OrderLogic {
	env := newTestEnv(t, dataset.New(nil, nil, orderFixtures()))
	return NewOrderLogic(context.Background(), env.core, "zh-TW")
}

func Test_LookupUserOrders(t *testing.T) {
	logic := setupOrderLogic(t)

	res := logic.LookupUserOrders("u_123456")
	require.True(t, res.Success)
	assert.Equal(t, "u_123456", res.UserID)
	assert.Equal(t, 2, res.TotalOrders)
	require.Len(t, res.Orders, 2)

	// 維持載入順序
	assert.Equal(t, "JTCG-202508-10001", res.Orders[0].OrderID)
	assert.Equal(t, "JTCG-202508-10002", res.Orders[1].OrderID)

	assert.Contains(t, res.Message, "找到用戶 u_123456 的 2 筆訂單：")
	assert.Contains(t, res.Message, "1. 訂單 JTCG-202508-10001")
	assert.Contains(t, res.Message, "狀態: 已出貨")
	assert.Contains(t, res.Message, "物流: 黑貓宅急便 (TW1234567890)")
	assert.Contains(t, res.Message, "預計到貨: 2025-08-05")
	assert.Contains(t, res.Message, "商品: 雙螢幕氣壓臂 Pro")
	assert.Contains(t, res.Message, "[查看訂單詳情](https://example.com/orders/10001)")
	assert.Contains(t, res.Message, "商品: 理線收納盒, 桌夾底座")
	assert.Contains(t, res.Message, "如需查詢特定訂單的詳細資訊，請提供訂單編號。")

	// 未知狀態原樣呈現
	assert.Contains(t, res.Message, "狀態: refunding")
	// 缺物流資訊的訂單不渲染物流行
	assert.Equal(t, 1, strings.Count(res.Message, "物流:"))
}

func Test_LookupUserOrdersUnknownUser(t *testing.T) {
	logic := setupOrderLogic(t)

	res := logic.LookupUserOrders("u_404")
	assert.False(t, res.Success)
	assert.Empty(t, res.Orders)
	assert.Contains(t, res.Message, "查無用戶 u_404 的訂單記錄。")
}

func Test_LookupOrderDetails(t *testing.T) {
	logic := setupOrderLogic(t)

	res := logic.LookupOrderDetails("JTCG-202508-10001")
	require.True(t, res.Success)
	require.NotNil(t, res.Order)
	assert.Equal(t, types.ORDER_STATUS_SHIPPED, res.Order.Status)

	assert.Contains(t, res.Message, "訂單 JTCG-202508-10001 詳細資訊：")
	assert.Contains(t, res.Message, "狀態: 已出貨")
	assert.Contains(t, res.Message, "下單時間: 2025-08-01T10:00:00Z")
	assert.Contains(t, res.Message, "物流商: 黑貓宅急便")
	assert.Contains(t, res.Message, "追蹤號碼: TW1234567890")
	assert.Contains(t, res.Message, "購買商品:")
	assert.Contains(t, res.Message, "- 雙螢幕氣壓臂 Pro x1")
	assert.Contains(t, res.Message, "配送地址: 台北市信義區")
	assert.Contains(t, res.Message, "聯絡電話: 0912345678")
	assert.Contains(t, res.Message, "[查看完整訂單](https://example.com/orders/10001)")
}

func Test_LookupOrderDetailsOptionalFields(t *testing.T) {
	logic := setupOrderLogic(t)

	res := logic.LookupOrderDetails("JTCG-202508-10002")
	require.True(t, res.Success)

	// 缺省欄位整行跳過
	assert.NotContains(t, res.Message, "物流商")
	assert.NotContains(t, res.Message, "追蹤號碼")
	assert.NotContains(t, res.Message, "預計到貨")
	assert.NotContains(t, res.Message, "查看完整訂單")
	assert.Contains(t, res.Message, "- 理線收納盒 x2")
	assert.Contains(t, res.Message, "- 桌夾底座 x1")
}

func Test_LookupOrderDetailsNotFound(t *testing.T) {
	logic := setupOrderLogic(t)

	res := logic.LookupOrderDetails("JTCG-404")
	assert.False(t, res.Success)
	assert.Nil(t, res.Order)
	assert.Contains(t, res.Message, "查無訂單 JTCG-404。")
}
