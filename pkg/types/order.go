package types

import "encoding/json"

type OrderStatus string

const (
	ORDER_STATUS_PROCESSING OrderStatus = "processing"
	ORDER_STATUS_SHIPPED    OrderStatus = "shipped"
	ORDER_STATUS_IN_TRANSIT OrderStatus = "in_transit"
	ORDER_STATUS_DELIVERED  OrderStatus = "delivered"
)

func (s OrderStatus) String() string {
	return string(s)
}

// OrderItem 訂單內單件商品。來源資料只保證 name 與 qty 存在，
// 其餘欄位原樣保留，不做額外校驗。
type OrderItem map[string]any

func (i OrderItem) Name() string {
	name, _ := i["name"].(string)
	return name
}

func (i OrderItem) Qty() int {
	switch v := i["qty"].(type) {
	case float64: // encoding/json 數值預設型別
		return int(v)
	case json.Number:
		n, _ := v.Int64()
		return int(n)
	case int:
		return v
	}
	return 0
}

// Order 單筆訂單記錄，歸屬於唯一 user_id，載入後唯讀。
type Order struct {
	OrderID         string      `json:"order_id"`
	PlacedAt        string      `json:"placed_at"`
	Status          OrderStatus `json:"status"`
	Carrier         string      `json:"carrier"`
	Tracking        string      `json:"tracking"`
	ETA             string      `json:"eta"`
	Items           []OrderItem `json:"items"`
	ShippingAddress string      `json:"shipping_address"`
	ContactPhone    string      `json:"contact_phone"`
	OrderURL        string      `json:"order_url"`
}

type UserOrdersResult struct {
	Success     bool    `json:"success"`
	Message     string  `json:"message"`
	Orders      []Order `json:"orders"`
	UserID      string  `json:"user_id,omitempty"`
	TotalOrders int     `json:"total_orders,omitempty"`
	Error       string  `json:"error,omitempty"`
}

type OrderDetailResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Order   *Order `json:"order"`
	Error   string `json:"error,omitempty"`
}
