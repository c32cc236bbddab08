package v1

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/ChungNYCU/jtcg-assignment/app/core"
	"github.com/ChungNYCU/jtcg-assignment/pkg/i18n"
	"github.com/ChungNYCU/jtcg-assignment/pkg/types"
)

// 推薦文案最多展開前三名，其餘只出現在結構化結果裡
const productRecommendLimit = 3

type ProductLogic struct {
	ctx  context.Context
	core *core.Core
	lang string
}

func NewProductLogic(ctx context.Context, core *core.Core, lang string) *ProductLogic {
	if !i18n.ALLOW_LANG[lang] {
		lang = i18n.DEFAULT_LANG
	}
	return &ProductLogic{
		ctx:  ctx,
		core: core,
		lang: lang,
	}
}

// SearchProducts 產品檢索與推薦。specifications 的鍵值會以
// "key: value" 形式併入查詢文字，鍵做排序保持查詢可重現。
func (l *ProductLogic) SearchProducts(query string, specifications map[string]string, maxResults int) types.ProductSearchResult {
	if maxResults <= 0 {
		maxResults = defaultProductResults
	}

	enhanced := query
	if len(specifications) > 0 {
		keys := lo.Keys(specifications)
		sort.Strings(keys)
		var specParts []string
		for _, key := range keys {
			if specifications[key] != "" {
				specParts = append(specParts, fmt.Sprintf("%s: %s", key, specifications[key]))
			}
		}
		if len(specParts) > 0 {
			enhanced += " " + strings.Join(specParts, " ")
		}
	}

	results, err := NewRetrievalLogic(l.ctx, l.core).Search(types.DOCUMENT_KIND_PRODUCT, enhanced, uint64(maxResults))
	if err != nil {
		l.core.Metrics().CapabilityErrorInc("search_products", "search")
		slog.Error("product search failed", slog.String("query", query), slog.String("error", err.Error()))
		return types.ProductSearchResult{
			Success:  false,
			Message:  locales.Get(l.lang, i18n.MESSAGE_PRODUCT_FAILED),
			Products: []types.ProductMatch{},
			Error:    err.Error(),
		}
	}

	if len(results) == 0 {
		return types.ProductSearchResult{
			Success:  false,
			Message:  locales.Get(l.lang, i18n.MESSAGE_PRODUCT_EMPTY),
			Products: []types.ProductMatch{},
		}
	}

	matches := lo.Map(results, func(r types.SearchResult, _ int) types.ProductMatch {
		return types.ProductMatchFromResult(r)
	})

	return types.ProductSearchResult{
		Success:    true,
		Message:    l.renderRecommendation(matches),
		Products:   matches,
		TotalFound: len(results),
	}
}

func (l *ProductLogic) renderRecommendation(matches []types.ProductMatch) string {
	parts := []string{locales.Get(l.lang, i18n.MESSAGE_PRODUCT_HEADER)}

	for i, product := range lo.Slice(matches, 0, productRecommendLimit) {
		parts = append(parts, fmt.Sprintf("\n%d. **%s** (%s)", i+1, product.Name, product.SKU))

		var specs []string
		if product.MaxSize != "" {
			specs = append(specs, locales.GetWithData(l.lang, i18n.MESSAGE_PRODUCT_SPEC_SIZE, map[string]interface{}{
				"Size": product.MaxSize,
			}))
		}
		if len(product.VesaOptions) > 0 {
			specs = append(specs, locales.GetWithData(l.lang, i18n.MESSAGE_PRODUCT_SPEC_VESA, map[string]interface{}{
				"Options": strings.Join(product.VesaOptions, ", "),
			}))
		}
		if product.WeightCapacity != "" {
			specs = append(specs, locales.GetWithData(l.lang, i18n.MESSAGE_PRODUCT_SPEC_WEIGHT, map[string]interface{}{
				"Weight": product.WeightCapacity,
			}))
		}
		if len(specs) > 0 {
			parts = append(parts, fmt.Sprintf(" - %s", strings.Join(specs, ", ")))
		}

		if product.CompatibilityNotes != "" {
			parts = append(parts, fmt.Sprintf("\n   %s", locales.GetWithData(l.lang, i18n.MESSAGE_PRODUCT_SPEC_NOTES, map[string]interface{}{
				"Notes": product.CompatibilityNotes,
			})))
		}
		if product.URL != "" {
			parts = append(parts, fmt.Sprintf("\n   [%s](%s)", locales.Get(l.lang, i18n.MESSAGE_PRODUCT_SPEC_LINK_TAG), product.URL))
		}
		parts = append(parts, "\n")
	}

	parts = append(parts, locales.Get(l.lang, i18n.MESSAGE_PRODUCT_FOOTER))
	return strings.Join(parts, "")
}
