package v1

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChungNYCU/jtcg-assignment/pkg/dataset"
	"github.com/ChungNYCU/jtcg-assignment/pkg/types"
)

var documentQueryPattern = regexp.QuoteMeta("SELECT id, collection, content, meta, embedding <=> $1 as distance FROM jtcg_documents WHERE collection = $2")

func knowledgeFixtures() []types.KnowledgeItem {
	return []types.KnowledgeItem{
		{
			ID:       "faq-001",
			Title:    "退換貨政策",
			Content:  "我們提供 7 天鑑賞期（含例假日），商品需保持全新、完整包裝與配件。",
			URLLabel: "退換貨條款",
			URLHref:  "https://example.com/returns",
			ImageURL: "https://example.com/returns.png",
			Tags:     []string{"退換貨", "政策"},
		},
		{
			ID:      "faq-002",
			Title:   "保固說明",
			Content: "一般臂架產品享有 1 年保固。",
		},
	}
}

func knowledgeResultRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "collection", "content", "meta", "distance"}).
		AddRow("faq-001", "knowledge", "Title: 退換貨政策",
			[]byte(`{"id":"faq-001","title":"退換貨政策","url_label":"退換貨條款","url_href":"https://example.com/returns","image_url":"https://example.com/returns.png","tags":"[\"退換貨\",\"政策\"]","type":"knowledge"}`), 0.12).
		AddRow("faq-002", "knowledge", "Title: 保固說明",
			[]byte(`{"id":"faq-002","title":"保固說明","url_label":"","url_href":"","image_url":"","tags":"[]","type":"knowledge"}`), 0.45)
}

func Test_SearchKnowledgeBase(t *testing.T) {
	env := newTestEnv(t, dataset.New(knowledgeFixtures(), nil, nil))
	env.mock.ExpectQuery(documentQueryPattern).
		WithArgs(sqlmock.AnyArg(), "knowledge").
		WillReturnRows(knowledgeResultRows())

	logic := NewKnowledgeLogic(context.Background(), env.core, "zh-TW")
	res := logic.SearchKnowledgeBase("退換貨政策是什麼", 0)

	require.True(t, res.Success)
	require.Len(t, res.Results, 2)

	best := res.Results[0]
	assert.Equal(t, "faq-001", best.ID)
	assert.InDelta(t, 0.88, best.RelevanceScore, 1e-9)
	assert.Equal(t, []string{"退換貨", "政策"}, best.Tags)

	// 回應主體為最佳命中的完整內容加連結與圖片
	assert.Equal(t,
		"我們提供 7 天鑑賞期（含例假日），商品需保持全新、完整包裝與配件。"+
			"\n\n詳細資訊請參考：[退換貨條款](https://example.com/returns)"+
			"\n\n相關圖片：https://example.com/returns.png",
		res.Message)

	require.NotNil(t, res.PrimarySource)
	assert.Equal(t, "退換貨政策", res.PrimarySource.Title)
	assert.Equal(t, "https://example.com/returns", res.PrimarySource.URL)
	assert.Equal(t, "退換貨條款", res.PrimarySource.URLLabel)

	assert.NoError(t, env.mock.ExpectationsWereMet())
}

func Test_SearchKnowledgeBaseEmpty(t *testing.T) {
	env := newTestEnv(t, dataset.New(knowledgeFixtures(), nil, nil))
	env.mock.ExpectQuery(documentQueryPattern).
		WillReturnRows(sqlmock.NewRows([]string{"id", "collection", "content", "meta", "distance"}))

	logic := NewKnowledgeLogic(context.Background(), env.core, "zh-TW")
	res := logic.SearchKnowledgeBase("毫不相干的問題", 0)

	assert.False(t, res.Success)
	assert.Empty(t, res.Results)
	assert.Equal(t, "很抱歉，目前無法找到相關的資訊。建議您聯繫我們的客服團隊以獲得進一步協助。", res.Message)
}

func Test_SearchKnowledgeBaseStoreError(t *testing.T) {
	env := newTestEnv(t, dataset.New(knowledgeFixtures(), nil, nil))
	env.mock.ExpectQuery(documentQueryPattern).
		WillReturnError(errors.New("connection refused"))

	logic := NewKnowledgeLogic(context.Background(), env.core, "zh-TW")
	res := logic.SearchKnowledgeBase("退換貨", 0)

	assert.False(t, res.Success)
	assert.Equal(t, "搜尋時發生錯誤，請稍後再試或聯繫客服團隊。", res.Message)
	assert.NotEmpty(t, res.Error)
}
