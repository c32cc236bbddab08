package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChungNYCU/jtcg-assignment/pkg/types"
)

const knowledgeCSV = `id,title,content,tags/0,tags/1,tags/2,urls/0/label,urls/0/href,images/0
faq-001,退換貨政策,我們提供 7 天鑑賞期。,退換貨,政策,,退換貨條款,https://example.com/returns,https://example.com/returns.png
faq-002,保固說明,一般臂架產品享有 1 年保固。,保固,,,保固條款,https://example.com/warranty,
faq-003,無標籤條目,內容本身。,,,,,,`

const productsCSV = `sku,name,specs/arm_type,specs/size_max_inch,specs/vesa/0,specs/vesa/1,specs/weight_per_arm_kg,specs/desk_thickness_mm,specs/usb_hub,compatibility_notes,url,images/0,specs/includes/0,specs/includes/1
JTCG-ARM-01,雙螢幕氣壓臂 Pro,gas-spring,32,75x75,100x100,2-9,10-85,true,曲面螢幕請確認重心,https://example.com/arm-01,https://example.com/arm-01.png,桌夾底座,理線夾
JTCG-ARM-02,單臂入門款,mechanical,27,75x75,,2-6.5,10-60,,,https://example.com/arm-02,,,`

func Test_ParseKnowledge(t *testing.T) {
	items, err := ParseKnowledge(strings.NewReader(knowledgeCSV))
	require.NoError(t, err)
	require.Len(t, items, 3)

	first := items[0]
	assert.Equal(t, "faq-001", first.ID)
	assert.Equal(t, "退換貨政策", first.Title)
	assert.Equal(t, "我們提供 7 天鑑賞期。", first.Content)
	assert.Equal(t, "退換貨條款", first.URLLabel)
	assert.Equal(t, "https://example.com/returns", first.URLHref)
	assert.Equal(t, "https://example.com/returns.png", first.ImageURL)
	// tags/2 為空，依欄位序收斂後跳過
	assert.Equal(t, []string{"退換貨", "政策"}, first.Tags)

	// 選填欄位缺值一律空字串，無 unset 狀態
	third := items[2]
	assert.Equal(t, "", third.URLHref)
	assert.Equal(t, "", third.ImageURL)
	assert.Equal(t, []string{}, third.Tags)
}

func Test_ParseKnowledgeMissingID(t *testing.T) {
	csv := "id,title\nfaq-001,ok\n,missing"
	_, err := ParseKnowledge(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2 missing required column id")
}

func Test_ParseProducts(t *testing.T) {
	products, err := ParseProducts(strings.NewReader(productsCSV))
	require.NoError(t, err)
	require.Len(t, products, 2)

	pro := products[0]
	assert.Equal(t, "JTCG-ARM-01", pro.SKU)
	assert.Equal(t, "gas-spring", pro.ArmType)
	assert.Equal(t, []string{"75x75", "100x100"}, pro.VesaOptions)
	assert.Equal(t, []string{"桌夾底座", "理線夾"}, pro.Includes)
	assert.True(t, pro.USBHub)

	entry := products[1]
	assert.Equal(t, []string{"75x75"}, entry.VesaOptions)
	assert.Equal(t, []string{}, entry.Includes)
	assert.False(t, entry.USBHub)
	assert.Equal(t, "", entry.CompatibilityNotes)
}

func Test_ParseProductsMissingSKU(t *testing.T) {
	csv := "sku,name\n,nameless"
	_, err := ParseProducts(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required column sku")
}

func Test_ParseLooseBool(t *testing.T) {
	for _, falsy := range []string{"", "false", "False", "0", "no", "N"} {
		assert.False(t, parseLooseBool(falsy), "value: %q", falsy)
	}
	for _, truthy := range []string{"true", "TRUE", "1", "yes", "有"} {
		assert.True(t, parseLooseBool(truthy), "value: %q", truthy)
	}
}

const wrappedOrdersJSON = `{
  "orders_db": {
    "u_123456": {
      "orders": [
        {
          "order_id": "JTCG-202508-10001",
          "placed_at": "2025-08-01T10:00:00Z",
          "status": "shipped",
          "carrier": "黑貓宅急便",
          "tracking": "TW1234567890",
          "eta": "2025-08-05",
          "items": [{"name": "雙螢幕氣壓臂 Pro", "qty": 1}],
          "shipping_address": "台北市信義區",
          "contact_phone": "0912345678",
          "order_url": "https://example.com/orders/10001"
        },
        {
          "order_id": "JTCG-202508-10002",
          "placed_at": "2025-08-10T12:00:00Z",
          "status": "processing",
          "items": [{"name": "理線收納盒", "qty": 2}],
          "shipping_address": "台北市信義區",
          "contact_phone": "0912345678",
          "order_url": ""
        }
      ]
    }
  }
}`

func Test_ParseOrdersWrapped(t *testing.T) {
	orders, err := ParseOrders(strings.NewReader(wrappedOrdersJSON))
	require.NoError(t, err)
	require.Len(t, orders["u_123456"], 2)

	first := orders["u_123456"][0]
	assert.Equal(t, "JTCG-202508-10001", first.OrderID)
	assert.Equal(t, types.ORDER_STATUS_SHIPPED, first.Status)
	assert.Equal(t, "黑貓宅急便", first.Carrier)
	require.Len(t, first.Items, 1)
	assert.Equal(t, "雙螢幕氣壓臂 Pro", first.Items[0].Name())
	assert.Equal(t, 1, first.Items[0].Qty())

	// 選填欄位缺省為空字串
	second := orders["u_123456"][1]
	assert.Equal(t, "", second.Carrier)
	assert.Equal(t, "", second.ETA)
}

func Test_ParseOrdersUnwrapped(t *testing.T) {
	plain := `{"u_9": {"orders": [{
      "order_id": "JTCG-1", "placed_at": "2025-08-01", "status": "delivered",
      "items": [], "shipping_address": "a", "contact_phone": "b", "order_url": "c"}]}}`

	orders, err := ParseOrders(strings.NewReader(plain))
	require.NoError(t, err)
	require.Len(t, orders["u_9"], 1)
	assert.Equal(t, types.ORDER_STATUS_DELIVERED, orders["u_9"][0].Status)
}

func Test_ParseOrdersMissingRequiredKey(t *testing.T) {
	missing := `{"u_9": {"orders": [{"order_id": "JTCG-1"}]}}`
	_, err := ParseOrders(strings.NewReader(missing))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required key")
}

func Test_ParseOrdersItemsMustBeList(t *testing.T) {
	bad := `{"u_9": {"orders": [{
      "order_id": "JTCG-1", "placed_at": "2025-08-01", "status": "processing",
      "items": "not-a-list", "shipping_address": "a", "contact_phone": "b", "order_url": "c"}]}}`
	_, err := ParseOrders(strings.NewReader(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "items must be a list")
}

func Test_DatasetLookups(t *testing.T) {
	items, err := ParseKnowledge(strings.NewReader(knowledgeCSV))
	require.NoError(t, err)
	products, err := ParseProducts(strings.NewReader(productsCSV))
	require.NoError(t, err)
	orders, err := ParseOrders(strings.NewReader(wrappedOrdersJSON))
	require.NoError(t, err)

	ds := New(items, products, orders)

	item, ok := ds.KnowledgeByID("faq-002")
	require.True(t, ok)
	assert.Equal(t, "保固說明", item.Title)

	_, ok = ds.KnowledgeByID("faq-404")
	assert.False(t, ok)

	product, ok := ds.ProductBySKU("JTCG-ARM-02")
	require.True(t, ok)
	assert.Equal(t, "單臂入門款", product.Name)

	// 維持來源插入順序
	userOrders := ds.OrdersByUser("u_123456")
	require.Len(t, userOrders, 2)
	assert.Equal(t, "JTCG-202508-10001", userOrders[0].OrderID)
	assert.Equal(t, "JTCG-202508-10002", userOrders[1].OrderID)

	assert.Empty(t, ds.OrdersByUser("u_404"))

	order, ok := ds.OrderByID("JTCG-202508-10002")
	require.True(t, ok)
	assert.Equal(t, types.ORDER_STATUS_PROCESSING, order.Status)

	_, ok = ds.OrderByID("JTCG-404")
	assert.False(t, ok)
}

func Test_ConversationUserMessages(t *testing.T) {
	conversation := Conversation{
		{"role": "user", "content": "請問有推薦的雙螢幕臂嗎"},
		{"role": "assistant", "content": "有的，為您介紹"},
		{"role": "user", "content": []any{
			map[string]any{"text": "預算三千以內"},
			map[string]any{"text": "第二個區塊不取"},
		}},
		{"role": "system", "content": "不屬於用戶發言"},
		{"role": "user", "content": []any{}},
	}

	assert.Equal(t, []string{"請問有推薦的雙螢幕臂嗎", "預算三千以內"}, conversation.UserMessages())
}
