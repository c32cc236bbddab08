package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/ChungNYCU/jtcg-assignment/pkg/types"
)

type rawOrders struct {
	Orders []map[string]any `json:"orders"`
}

// ParseOrders 解析訂單 JSON。來源允許兩種頂層結構：
// {"orders_db": {user_id: {"orders": [...]}}} 或省略外層的 orders_db。
// 必要欄位缺失時整批載入失敗。
func ParseOrders(r io.Reader) (map[string][]types.Order, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("parse orders: %w", err)
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return nil, fmt.Errorf("parse orders: %w", err)
	}
	if inner, ok := top["orders_db"]; ok {
		top = nil
		if err := json.Unmarshal(inner, &top); err != nil {
			return nil, fmt.Errorf("parse orders: unwrap orders_db: %w", err)
		}
	}

	parsed := make(map[string][]types.Order, len(top))
	for userID, rawUser := range top {
		var user rawOrders
		if err := json.Unmarshal(rawUser, &user); err != nil {
			return nil, fmt.Errorf("parse orders: user %s: %w", userID, err)
		}
		if user.Orders == nil {
			return nil, fmt.Errorf("parse orders: user %s missing orders list", userID)
		}

		orders := make([]types.Order, 0, len(user.Orders))
		for i, data := range user.Orders {
			order, err := normalizeOrder(data)
			if err != nil {
				return nil, fmt.Errorf("parse orders: user %s order %d: %w", userID, i, err)
			}
			orders = append(orders, order)
		}
		parsed[userID] = orders
	}

	return parsed, nil
}

var orderRequiredKeys = []string{"order_id", "placed_at", "status", "items", "shipping_address", "contact_phone", "order_url"}

func normalizeOrder(data map[string]any) (types.Order, error) {
	for _, key := range orderRequiredKeys {
		if _, ok := data[key]; !ok {
			return types.Order{}, fmt.Errorf("missing required key %s", key)
		}
	}

	rawItems, ok := data["items"].([]any)
	if !ok {
		return types.Order{}, fmt.Errorf("items must be a list")
	}
	items := make([]types.OrderItem, 0, len(rawItems))
	for _, rawItem := range rawItems {
		item, ok := rawItem.(map[string]any)
		if !ok {
			return types.Order{}, fmt.Errorf("order item must be a mapping")
		}
		items = append(items, types.OrderItem(item))
	}

	return types.Order{
		OrderID:         stringField(data, "order_id"),
		PlacedAt:        stringField(data, "placed_at"),
		Status:          types.OrderStatus(stringField(data, "status")),
		Carrier:         stringField(data, "carrier"),
		Tracking:        stringField(data, "tracking"),
		ETA:             stringField(data, "eta"),
		Items:           items,
		ShippingAddress: stringField(data, "shipping_address"),
		ContactPhone:    stringField(data, "contact_phone"),
		OrderURL:        stringField(data, "order_url"),
	}, nil
}

// stringField 缺值與 null 一律回傳空字串。
func stringField(data map[string]any, key string) string {
	v, _ := data[key].(string)
	return v
}

func LoadOrders(path string) (map[string][]types.Order, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load orders %s: %w", path, err)
	}
	defer f.Close()

	return ParseOrders(f)
}

// SortedUserIDs 穩定的用戶掃描順序，訂單編號查找用。
func SortedUserIDs(orders map[string][]types.Order) []string {
	ids := make([]string, 0, len(orders))
	for id := range orders {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
