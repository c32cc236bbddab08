package v1

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/pgvector/pgvector-go"
	"github.com/samber/lo"

	"github.com/ChungNYCU/jtcg-assignment/app/core"
	"github.com/ChungNYCU/jtcg-assignment/pkg/errors"
	"github.com/ChungNYCU/jtcg-assignment/pkg/i18n"
	"github.com/ChungNYCU/jtcg-assignment/pkg/types"
)

// locales 能力函式的回應文案需要在 logic 層就地渲染，
// 與 HTTP 層共用同一份語系資源。
var locales = i18n.NewLocalizer(lo.Keys(i18n.ALLOW_LANG)...)

const (
	defaultKnowledgeResults = 3
	defaultProductResults   = 5
)

// RetrievalLogic 檢索集合的灌入與查詢。knowledge 與 products 的文件文本
// 必須能由來源記錄決定性地重建，重複執行 Populate 才具冪等性。
type RetrievalLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewRetrievalLogic(ctx context.Context, core *core.Core) *RetrievalLogic {
	return &RetrievalLogic{
		ctx:  ctx,
		core: core,
	}
}

// buildKnowledgeDocument 組合知識條目的檢索文本，空欄位直接略過。
func buildKnowledgeDocument(item types.KnowledgeItem) string {
	parts := []string{
		fmt.Sprintf("Title: %s", item.Title),
		fmt.Sprintf("Content: %s", item.Content),
	}
	if len(item.Tags) > 0 {
		parts = append(parts, fmt.Sprintf("Tags: %s", strings.Join(item.Tags, ", ")))
	}
	return strings.Join(parts, " ")
}

// buildProductDocument 組合產品的檢索文本，選填規格缺值時略過。
func buildProductDocument(product types.Product) string {
	parts := []string{
		fmt.Sprintf("Name: %s", product.Name),
		fmt.Sprintf("SKU: %s", product.SKU),
		fmt.Sprintf("Type: %s", product.ArmType),
	}
	if product.SizeMaxInch != "" {
		parts = append(parts, fmt.Sprintf("Size: %s inch", product.SizeMaxInch))
	}
	if len(product.VesaOptions) > 0 {
		parts = append(parts, fmt.Sprintf("VESA: %s", strings.Join(product.VesaOptions, ", ")))
	}
	if product.WeightPerArmKg != "" {
		parts = append(parts, fmt.Sprintf("Weight: %s kg", product.WeightPerArmKg))
	}
	if product.DeskThicknessMm != "" {
		parts = append(parts, fmt.Sprintf("Desk: %s mm", product.DeskThicknessMm))
	}
	if product.CompatibilityNotes != "" {
		parts = append(parts, fmt.Sprintf("Notes: %s", product.CompatibilityNotes))
	}
	if len(product.Includes) > 0 {
		parts = append(parts, fmt.Sprintf("Includes: %s", strings.Join(product.Includes, ", ")))
	}
	return strings.Join(parts, " ")
}

// Populate 把資料集灌入兩個檢索集合。集合已有資料時跳過，
// 重置請先呼叫 Reset。
func (l *RetrievalLogic) Populate() error {
	if err := l.populateKnowledge(); err != nil {
		return err
	}
	return l.populateProducts()
}

func (l *RetrievalLogic) populateKnowledge() error {
	items := l.core.Dataset().Knowledge()
	docs := make([]types.Document, 0, len(items))
	for _, item := range items {
		docs = append(docs, types.Document{
			ID:         item.ID,
			Collection: types.DOCUMENT_KIND_KNOWLEDGE,
			Content:    buildKnowledgeDocument(item),
			Meta:       types.KnowledgeMeta(item),
		})
	}
	return l.populateCollection(types.DOCUMENT_KIND_KNOWLEDGE, docs)
}

func (l *RetrievalLogic) populateProducts() error {
	products := l.core.Dataset().Products()
	docs := make([]types.Document, 0, len(products))
	for _, product := range products {
		docs = append(docs, types.Document{
			ID:         product.SKU,
			Collection: types.DOCUMENT_KIND_PRODUCT,
			Content:    buildProductDocument(product),
			Meta:       types.ProductMeta(product),
		})
	}
	return l.populateCollection(types.DOCUMENT_KIND_PRODUCT, docs)
}

func (l *RetrievalLogic) populateCollection(kind types.DocumentKind, docs []types.Document) error {
	store := l.core.Store().DocumentStore()

	existing, err := store.Count(l.ctx, kind)
	if err != nil {
		return errors.New("RetrievalLogic.populateCollection.Count", i18n.ERROR_INTERNAL, err).Code(http.StatusInternalServerError)
	}
	if existing > 0 {
		slog.Info("collection already populated, skipping",
			slog.String("collection", kind.String()), slog.Int64("count", existing))
		return nil
	}
	if len(docs) == 0 {
		return nil
	}

	timer := l.core.Metrics().EmbeddingTimer("document")
	result, err := l.core.Srv().AI().EmbeddingForDocument(l.ctx, kind.String(), lo.Map(docs, func(doc types.Document, _ int) string {
		return doc.Content
	}))
	timer.ObserveDuration()
	if err != nil {
		return errors.New("RetrievalLogic.populateCollection.Embedding", i18n.ERROR_INTERNAL, err).Code(http.StatusInternalServerError)
	}
	if len(result.Data) != len(docs) {
		return errors.New("RetrievalLogic.populateCollection.Embedding", i18n.ERROR_INTERNAL,
			fmt.Errorf("embedding count %d mismatch documents %d", len(result.Data), len(docs))).Code(http.StatusInternalServerError)
	}

	now := time.Now().Unix()
	for i := range docs {
		docs[i].Embedding = pgvector.NewVector(result.Data[i])
		docs[i].CreatedAt = now
	}

	if err = store.BatchCreate(l.ctx, docs); err != nil {
		return errors.New("RetrievalLogic.populateCollection.BatchCreate", i18n.ERROR_INTERNAL, err).Code(http.StatusInternalServerError)
	}

	slog.Info("collection populated",
		slog.String("collection", kind.String()), slog.Int("count", len(docs)))
	return nil
}

// Reset 清空兩個檢索集合。
func (l *RetrievalLogic) Reset() error {
	store := l.core.Store().DocumentStore()
	for _, kind := range []types.DocumentKind{types.DOCUMENT_KIND_KNOWLEDGE, types.DOCUMENT_KIND_PRODUCT} {
		if err := store.DeleteAll(l.ctx, kind); err != nil {
			return errors.New("RetrievalLogic.Reset", i18n.ERROR_INTERNAL, err).Code(http.StatusInternalServerError)
		}
	}
	return nil
}

// Search 以 query 的 embedding 在指定集合取最近的 limit 筆，由近到遠。
func (l *RetrievalLogic) Search(kind types.DocumentKind, query string, limit uint64) ([]types.SearchResult, error) {
	timer := l.core.Metrics().SearchTimer(kind.String())
	defer timer.ObserveDuration()

	embeddingTimer := l.core.Metrics().EmbeddingTimer("query")
	result, err := l.core.Srv().AI().EmbeddingForQuery(l.ctx, []string{query})
	embeddingTimer.ObserveDuration()
	if err != nil {
		return nil, errors.New("RetrievalLogic.Search.Embedding", i18n.ERROR_INTERNAL, err).Code(http.StatusInternalServerError)
	}
	if len(result.Data) == 0 {
		return nil, errors.New("RetrievalLogic.Search.Embedding", i18n.ERROR_INTERNAL,
			fmt.Errorf("empty embedding result for query")).Code(http.StatusInternalServerError)
	}

	results, err := l.core.Store().DocumentStore().Query(l.ctx, kind, pgvector.NewVector(result.Data[0]), limit)
	if err != nil {
		return nil, errors.New("RetrievalLogic.Search.Query", i18n.ERROR_INTERNAL, err).Code(http.StatusInternalServerError)
	}
	return results, nil
}
