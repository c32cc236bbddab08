package v1

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/ChungNYCU/jtcg-assignment/app/core"
	"github.com/ChungNYCU/jtcg-assignment/pkg/i18n"
	"github.com/ChungNYCU/jtcg-assignment/pkg/types"
)

type OrderLogic struct {
	ctx  context.Context
	core *core.Core
	lang string
}

func NewOrderLogic(ctx context.Context, core *core.Core, lang string) *OrderLogic {
	if !i18n.ALLOW_LANG[lang] {
		lang = i18n.DEFAULT_LANG
	}
	return &OrderLogic{
		ctx:  ctx,
		core: core,
		lang: lang,
	}
}

var orderStatusKeys = map[types.OrderStatus]string{
	types.ORDER_STATUS_PROCESSING: i18n.ORDER_STATUS_PROCESSING,
	types.ORDER_STATUS_SHIPPED:    i18n.ORDER_STATUS_SHIPPED,
	types.ORDER_STATUS_IN_TRANSIT: i18n.ORDER_STATUS_IN_TRANSIT,
	types.ORDER_STATUS_DELIVERED:  i18n.ORDER_STATUS_DELIVERED,
}

// statusLabel 已知狀態給在地化標籤，未知狀態原樣呈現。
func (l *OrderLogic) statusLabel(status types.OrderStatus) string {
	if key, ok := orderStatusKeys[status]; ok {
		return locales.Get(l.lang, key)
	}
	return status.String()
}

// LookupUserOrders 列出指定用戶的全部訂單，維持資料載入時的順序。
func (l *OrderLogic) LookupUserOrders(userID string) types.UserOrdersResult {
	orders := l.core.Dataset().OrdersByUser(userID)
	if len(orders) == 0 {
		return types.UserOrdersResult{
			Success: false,
			Message: locales.GetWithData(l.lang, i18n.MESSAGE_USER_ORDERS_EMPTY, map[string]interface{}{
				"UserID": userID,
			}),
			Orders: []types.Order{},
		}
	}

	parts := []string{locales.GetWithData(l.lang, i18n.MESSAGE_USER_ORDERS_HEADER, map[string]interface{}{
		"UserID": userID,
		"Count":  len(orders),
	})}

	for i, order := range orders {
		parts = append(parts, fmt.Sprintf("\n%d. %s", i+1, locales.GetWithData(l.lang, i18n.MESSAGE_USER_ORDERS_LINE, map[string]interface{}{
			"OrderID": order.OrderID,
		})))
		parts = append(parts, fmt.Sprintf(" - %s: %s", locales.Get(l.lang, i18n.LABEL_ORDER_STATUS), l.statusLabel(order.Status)))

		if order.Carrier != "" && order.Tracking != "" {
			parts = append(parts, fmt.Sprintf(" - %s: %s (%s)", locales.Get(l.lang, i18n.LABEL_ORDER_LOGISTICS), order.Carrier, order.Tracking))
		}
		if order.ETA != "" {
			parts = append(parts, fmt.Sprintf(" - %s: %s", locales.Get(l.lang, i18n.LABEL_ORDER_ETA), order.ETA))
		}

		names := lo.Map(order.Items, func(item types.OrderItem, _ int) string {
			return item.Name()
		})
		parts = append(parts, fmt.Sprintf(" - %s: %s", locales.Get(l.lang, i18n.LABEL_ORDER_ITEMS), strings.Join(names, ", ")))

		if order.OrderURL != "" {
			parts = append(parts, fmt.Sprintf(" - [%s](%s)", locales.Get(l.lang, i18n.LABEL_ORDER_DETAIL_LINK), order.OrderURL))
		}
		parts = append(parts, "\n")
	}

	parts = append(parts, locales.Get(l.lang, i18n.MESSAGE_USER_ORDERS_FOOTER))

	return types.UserOrdersResult{
		Success:     true,
		Message:     strings.Join(parts, ""),
		Orders:      orders,
		UserID:      userID,
		TotalOrders: len(orders),
	}
}

// LookupOrderDetails 查詢單筆訂單的完整資訊。
func (l *OrderLogic) LookupOrderDetails(orderID string) types.OrderDetailResult {
	order, ok := l.core.Dataset().OrderByID(orderID)
	if !ok {
		return types.OrderDetailResult{
			Success: false,
			Message: locales.GetWithData(l.lang, i18n.MESSAGE_ORDER_DETAIL_EMPTY, map[string]interface{}{
				"OrderID": orderID,
			}),
		}
	}

	parts := []string{locales.GetWithData(l.lang, i18n.MESSAGE_ORDER_DETAIL_HEADER, map[string]interface{}{
		"OrderID": order.OrderID,
	})}
	parts = append(parts, fmt.Sprintf("%s: %s", locales.Get(l.lang, i18n.LABEL_ORDER_STATUS), l.statusLabel(order.Status)))
	parts = append(parts, fmt.Sprintf("%s: %s", locales.Get(l.lang, i18n.LABEL_ORDER_PLACED_AT), order.PlacedAt))

	if order.Carrier != "" {
		parts = append(parts, fmt.Sprintf("%s: %s", locales.Get(l.lang, i18n.LABEL_ORDER_CARRIER), order.Carrier))
	}
	if order.Tracking != "" {
		parts = append(parts, fmt.Sprintf("%s: %s", locales.Get(l.lang, i18n.LABEL_ORDER_TRACKING), order.Tracking))
	}
	if order.ETA != "" {
		parts = append(parts, fmt.Sprintf("%s: %s", locales.Get(l.lang, i18n.LABEL_ORDER_ETA), order.ETA))
	}

	parts = append(parts, fmt.Sprintf("\n%s:", locales.Get(l.lang, i18n.LABEL_ORDER_ITEMS_DETAIL)))
	for _, item := range order.Items {
		parts = append(parts, fmt.Sprintf("- %s x%d", item.Name(), item.Qty()))
	}

	parts = append(parts, fmt.Sprintf("\n%s: %s", locales.Get(l.lang, i18n.LABEL_ORDER_ADDRESS), order.ShippingAddress))
	parts = append(parts, fmt.Sprintf("%s: %s", locales.Get(l.lang, i18n.LABEL_ORDER_PHONE), order.ContactPhone))

	if order.OrderURL != "" {
		parts = append(parts, fmt.Sprintf("\n[%s](%s)", locales.Get(l.lang, i18n.LABEL_ORDER_LINK), order.OrderURL))
	}

	return types.OrderDetailResult{
		Success: true,
		Message: strings.Join(parts, "\n"),
		Order:   order,
	}
}
