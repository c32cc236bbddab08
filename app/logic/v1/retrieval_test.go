package v1

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChungNYCU/jtcg-assignment/pkg/dataset"
	"github.com/ChungNYCU/jtcg-assignment/pkg/types"
)

func Test_BuildKnowledgeDocument(t *testing.T) {
	item := types.KnowledgeItem{
		ID:      "faq-001",
		Title:   "退換貨政策",
		Content: "我們提供 7 天鑑賞期。",
		Tags:    []string{"退換貨", "政策"},
	}
	assert.Equal(t,
		"Title: 退換貨政策 Content: 我們提供 7 天鑑賞期。 Tags: 退換貨, 政策",
		buildKnowledgeDocument(item))

	// 無標籤時不得出現空的 Tags 段
	item.Tags = nil
	assert.Equal(t,
		"Title: 退換貨政策 Content: 我們提供 7 天鑑賞期。",
		buildKnowledgeDocument(item))
}

func Test_BuildKnowledgeDocumentDeterministic(t *testing.T) {
	item := types.KnowledgeItem{ID: "faq-001", Title: "a", Content: "b", Tags: []string{"c"}}
	assert.Equal(t, buildKnowledgeDocument(item), buildKnowledgeDocument(item))
}

func Test_BuildProductDocument(t *testing.T) {
	product := types.Product{
		SKU:                "JTCG-ARM-01",
		Name:               "雙螢幕氣壓臂 Pro",
		ArmType:            "gas-spring",
		SizeMaxInch:        "32",
		VesaOptions:        []string{"75x75", "100x100"},
		WeightPerArmKg:     "2-9",
		DeskThicknessMm:    "10-85",
		CompatibilityNotes: "曲面螢幕請確認重心",
		Includes:           []string{"桌夾底座", "理線夾"},
	}
	assert.Equal(t,
		"Name: 雙螢幕氣壓臂 Pro SKU: JTCG-ARM-01 Type: gas-spring Size: 32 inch VESA: 75x75, 100x100 Weight: 2-9 kg Desk: 10-85 mm Notes: 曲面螢幕請確認重心 Includes: 桌夾底座, 理線夾",
		buildProductDocument(product))
}

func Test_PopulateIdempotent(t *testing.T) {
	ds := dataset.New(
		[]types.KnowledgeItem{{ID: "faq-001", Title: "退換貨政策", Content: "我們提供 7 天鑑賞期。"}},
		[]types.Product{{SKU: "JTCG-ARM-01", Name: "雙螢幕氣壓臂 Pro", ArmType: "gas-spring"}},
		nil,
	)
	env := newTestEnv(t, ds)
	logic := NewRetrievalLogic(context.Background(), env.core)

	countPattern := regexp.QuoteMeta("SELECT COUNT(*) FROM jtcg_documents WHERE collection = $1")
	insertPattern := regexp.QuoteMeta("INSERT INTO jtcg_documents")

	// 第一次灌入：兩個集合皆為空，各寫入一批
	env.mock.ExpectQuery(countPattern).WithArgs("knowledge").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	env.mock.ExpectExec(insertPattern).WillReturnResult(sqlmock.NewResult(0, 1))
	env.mock.ExpectQuery(countPattern).WithArgs("products").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	env.mock.ExpectExec(insertPattern).WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, logic.Populate())
	require.NoError(t, env.mock.ExpectationsWereMet())

	// 第二次灌入：集合已有資料，只允許 COUNT，不得再寫入
	env.mock.ExpectQuery(countPattern).WithArgs("knowledge").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	env.mock.ExpectQuery(countPattern).WithArgs("products").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	require.NoError(t, logic.Populate())
	assert.NoError(t, env.mock.ExpectationsWereMet())
}

func Test_BuildProductDocumentSkipsEmptySpecs(t *testing.T) {
	product := types.Product{
		SKU:     "JTCG-ARM-02",
		Name:    "單臂入門款",
		ArmType: "mechanical",
	}
	assert.Equal(t,
		"Name: 單臂入門款 SKU: JTCG-ARM-02 Type: mechanical",
		buildProductDocument(product))
}
