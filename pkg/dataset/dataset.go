package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ChungNYCU/jtcg-assignment/pkg/types"
)

// Conversation 多輪測試對話，每輪為原樣保留的訊息映射。
type Conversation []map[string]any

// UserMessages 依序取出對話中的用戶發言。content 允許純字串或
// {text} 區塊列表，列表時取第一個區塊的文字。
func (c Conversation) UserMessages() []string {
	var messages []string
	for _, turn := range c {
		if role, _ := turn["role"].(string); role != "user" {
			continue
		}
		switch content := turn["content"].(type) {
		case string:
			if content != "" {
				messages = append(messages, content)
			}
		case []any:
			if len(content) == 0 {
				continue
			}
			if block, ok := content[0].(map[string]any); ok {
				if text, _ := block["text"].(string); text != "" {
					messages = append(messages, text)
				}
			}
		}
	}
	return messages
}

// Dataset 進程生命週期內唯讀的參考資料表，啟動時載入一次，
// 由建構方顯式注入各邏輯層，不做全域狀態。
type Dataset struct {
	knowledge     []types.KnowledgeItem
	products      []types.Product
	orders        map[string][]types.Order
	orderUserIDs  []string
	conversations []Conversation
}

type Paths struct {
	KnowledgeCSV      string `toml:"knowledge_csv"`
	ProductsCSV       string `toml:"products_csv"`
	OrdersJSON        string `toml:"orders_json"`
	ConversationsJSON string `toml:"conversations_json"`
}

// MustLoad 載入全部資料來源，任何來源格式錯誤都視為致命設定問題。
func MustLoad(paths Paths) *Dataset {
	ds, err := Load(paths)
	if err != nil {
		panic(err)
	}
	return ds
}

func Load(paths Paths) (*Dataset, error) {
	knowledge, err := LoadKnowledge(paths.KnowledgeCSV)
	if err != nil {
		return nil, err
	}
	products, err := LoadProducts(paths.ProductsCSV)
	if err != nil {
		return nil, err
	}
	orders, err := LoadOrders(paths.OrdersJSON)
	if err != nil {
		return nil, err
	}

	ds := New(knowledge, products, orders)

	// 對話樣本只供互動測試，不設定時跳過
	if paths.ConversationsJSON != "" {
		if ds.conversations, err = LoadConversations(paths.ConversationsJSON); err != nil {
			return nil, err
		}
	}

	return ds, nil
}

// New 以現成資料組裝 Dataset，測試可直接用 fixture 建構。
func New(knowledge []types.KnowledgeItem, products []types.Product, orders map[string][]types.Order) *Dataset {
	if orders == nil {
		orders = map[string][]types.Order{}
	}
	return &Dataset{
		knowledge:    knowledge,
		products:     products,
		orders:       orders,
		orderUserIDs: SortedUserIDs(orders),
	}
}

func (d *Dataset) Knowledge() []types.KnowledgeItem {
	return d.knowledge
}

func (d *Dataset) Products() []types.Product {
	return d.products
}

func (d *Dataset) Conversations() []Conversation {
	return d.conversations
}

func (d *Dataset) KnowledgeByID(id string) (*types.KnowledgeItem, bool) {
	for i := range d.knowledge {
		if d.knowledge[i].ID == id {
			return &d.knowledge[i], true
		}
	}
	return nil, false
}

func (d *Dataset) ProductBySKU(sku string) (*types.Product, bool) {
	for i := range d.products {
		if d.products[i].SKU == sku {
			return &d.products[i], true
		}
	}
	return nil, false
}

// OrdersByUser 回傳該用戶全部訂單，維持來源插入順序。
func (d *Dataset) OrdersByUser(userID string) []types.Order {
	return d.orders[userID]
}

// OrderByID 全表掃描訂單編號。資料規模固定且小，不建次級索引。
func (d *Dataset) OrderByID(orderID string) (*types.Order, bool) {
	for _, userID := range d.orderUserIDs {
		orders := d.orders[userID]
		for i := range orders {
			if orders[i].OrderID == orderID {
				return &orders[i], true
			}
		}
	}
	return nil, false
}

func LoadConversations(path string) ([]Conversation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load conversations %s: %w", path, err)
	}

	var conversations []Conversation
	if err := json.Unmarshal(raw, &conversations); err != nil {
		return nil, fmt.Errorf("load conversations %s: %w", path, err)
	}
	return conversations, nil
}
