package v1

import (
	"context"
	"log/slog"
	"strings"

	"github.com/samber/lo"

	"github.com/ChungNYCU/jtcg-assignment/app/core"
	"github.com/ChungNYCU/jtcg-assignment/pkg/i18n"
	"github.com/ChungNYCU/jtcg-assignment/pkg/types"
)

// KnowledgeLogic FAQ 知識庫檢索能力。檢索失敗不向上拋錯，
// 回傳帶 success=false 的結果讓對話得以繼續。
type KnowledgeLogic struct {
	ctx  context.Context
	core *core.Core
	lang string
}

func NewKnowledgeLogic(ctx context.Context, core *core.Core, lang string) *KnowledgeLogic {
	if !i18n.ALLOW_LANG[lang] {
		lang = i18n.DEFAULT_LANG
	}
	return &KnowledgeLogic{
		ctx:  ctx,
		core: core,
		lang: lang,
	}
}

// SearchKnowledgeBase 檢索 FAQ。回應文案以最佳命中的完整內容為主體，
// 有參考連結與圖片時附在其後。
func (l *KnowledgeLogic) SearchKnowledgeBase(query string, maxResults int) types.KnowledgeSearchResult {
	if maxResults <= 0 {
		maxResults = defaultKnowledgeResults
	}

	results, err := NewRetrievalLogic(l.ctx, l.core).Search(types.DOCUMENT_KIND_KNOWLEDGE, query, uint64(maxResults))
	if err != nil {
		l.core.Metrics().CapabilityErrorInc("search_knowledge_base", "search")
		slog.Error("knowledge search failed", slog.String("query", query), slog.String("error", err.Error()))
		return types.KnowledgeSearchResult{
			Success: false,
			Message: locales.Get(l.lang, i18n.MESSAGE_KNOWLEDGE_FAILED),
			Results: []types.KnowledgeMatch{},
			Error:   err.Error(),
		}
	}

	if len(results) == 0 {
		return types.KnowledgeSearchResult{
			Success: false,
			Message: locales.Get(l.lang, i18n.MESSAGE_KNOWLEDGE_EMPTY),
			Results: []types.KnowledgeMatch{},
		}
	}

	matches := lo.Map(results, func(r types.SearchResult, _ int) types.KnowledgeMatch {
		return types.KnowledgeMatchFromResult(r)
	})

	best := results[0]
	var parts []string
	if item, ok := l.core.Dataset().KnowledgeByID(best.Meta[types.META_KEY_ID]); ok {
		parts = append(parts, item.Content)
		if item.URLHref != "" {
			label := item.URLLabel
			if label == "" {
				label = locales.Get(l.lang, i18n.MESSAGE_KNOWLEDGE_REF_LABEL)
			}
			parts = append(parts, locales.GetWithData(l.lang, i18n.MESSAGE_KNOWLEDGE_REFERENCE, map[string]interface{}{
				"Label": label,
				"Href":  item.URLHref,
			}))
		}
		if item.ImageURL != "" {
			parts = append(parts, locales.GetWithData(l.lang, i18n.MESSAGE_KNOWLEDGE_IMAGE, map[string]interface{}{
				"URL": item.ImageURL,
			}))
		}
	}

	return types.KnowledgeSearchResult{
		Success: true,
		Message: strings.Join(parts, ""),
		Results: matches,
		PrimarySource: &types.PrimarySource{
			Title:    best.Meta[types.META_KEY_TITLE],
			URL:      best.Meta[types.META_KEY_URL_HREF],
			URLLabel: best.Meta[types.META_KEY_URL_LABEL],
		},
	}
}
