package types

// Intent 意圖分類結果，僅作為訊息的附加標註，
// 實際呼叫哪個能力由外部 agent 決定。
type Intent string

const (
	INTENT_ORDER    Intent = "order"
	INTENT_PRODUCT  Intent = "product"
	INTENT_HANDOVER Intent = "handover"
	INTENT_FAQ      Intent = "faq"
	INTENT_GENERAL  Intent = "general"
)

func (i Intent) String() string {
	return string(i)
}
