package i18n

var ALLOW_LANG = map[string]bool{
	"en":    true,
	"zh-TW": true,
}

const DEFAULT_LANG = "zh-TW"

const (
	ERROR_INTERNAL        = "error.internal"
	ERROR_INVALIDARGUMENT = "error.invalidargument"

	MESSAGE_KNOWLEDGE_EMPTY     = "knowledge.search.empty"
	MESSAGE_KNOWLEDGE_FAILED    = "knowledge.search.failed"
	MESSAGE_KNOWLEDGE_REFERENCE = "knowledge.answer.reference"
	MESSAGE_KNOWLEDGE_REF_LABEL = "knowledge.answer.reference.label"
	MESSAGE_KNOWLEDGE_IMAGE     = "knowledge.answer.image"

	MESSAGE_PRODUCT_EMPTY         = "product.search.empty"
	MESSAGE_PRODUCT_FAILED        = "product.search.failed"
	MESSAGE_PRODUCT_HEADER        = "product.recommend.header"
	MESSAGE_PRODUCT_FOOTER        = "product.recommend.footer"
	MESSAGE_PRODUCT_SPEC_SIZE     = "product.spec.max_size"
	MESSAGE_PRODUCT_SPEC_VESA     = "product.spec.vesa"
	MESSAGE_PRODUCT_SPEC_WEIGHT   = "product.spec.weight"
	MESSAGE_PRODUCT_SPEC_NOTES    = "product.spec.notes"
	MESSAGE_PRODUCT_SPEC_LINK_TAG = "product.spec.link"

	MESSAGE_USER_ORDERS_EMPTY  = "order.user.empty"
	MESSAGE_USER_ORDERS_HEADER = "order.user.header"
	MESSAGE_USER_ORDERS_FOOTER = "order.user.footer"
	MESSAGE_USER_ORDERS_LINE   = "order.user.line"

	MESSAGE_ORDER_DETAIL_EMPTY  = "order.detail.empty"
	MESSAGE_ORDER_DETAIL_HEADER = "order.detail.header"

	LABEL_ORDER_STATUS       = "order.label.status"
	LABEL_ORDER_PLACED_AT    = "order.label.placed_at"
	LABEL_ORDER_LOGISTICS    = "order.label.logistics"
	LABEL_ORDER_CARRIER      = "order.label.carrier"
	LABEL_ORDER_TRACKING     = "order.label.tracking"
	LABEL_ORDER_ETA          = "order.label.eta"
	LABEL_ORDER_ITEMS        = "order.label.items"
	LABEL_ORDER_ITEMS_DETAIL = "order.label.items_detail"
	LABEL_ORDER_ADDRESS      = "order.label.address"
	LABEL_ORDER_PHONE        = "order.label.phone"
	LABEL_ORDER_LINK         = "order.label.link"
	LABEL_ORDER_DETAIL_LINK  = "order.label.detail_link"
	ORDER_STATUS_PROCESSING  = "order.status.processing"
	ORDER_STATUS_SHIPPED     = "order.status.shipped"
	ORDER_STATUS_IN_TRANSIT  = "order.status.in_transit"
	ORDER_STATUS_DELIVERED   = "order.status.delivered"

	MESSAGE_HANDOVER_EMAIL_INVALID = "handover.email.invalid"
	MESSAGE_HANDOVER_SUCCESS       = "handover.success"
	MESSAGE_HANDOVER_FAILED        = "handover.failed"
	MESSAGE_HANDOVER_ERROR         = "handover.error"

	MESSAGE_CHAT_FAILED = "chat.failed"
)
